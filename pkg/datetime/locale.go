package datetime

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// symbols holds the locale-specific text used by text pattern fields and the
// full localized style.
type symbols struct {
	tag         language.Tag
	months      [12]string
	shortMonths [12]string
	days        [7]string // indexed by time.Weekday
	shortDays   [7]string
	amPm        [2]string
	full        string // pattern for FormatFullLocalized
}

// newSymbols takes month and weekday names from monday's tables for loc.
// Day-period markers and the full pattern are given per locale.
func newSymbols(tag language.Tag, loc monday.Locale, amPm [2]string, full string) *symbols {
	s := &symbols{tag: tag, amPm: amPm, full: full}
	for m := time.January; m <= time.December; m++ {
		t := time.Date(2001, m, 1, 0, 0, 0, 0, time.UTC)
		s.months[m-1] = monday.Format(t, "January", loc)
		s.shortMonths[m-1] = monday.Format(t, "Jan", loc)
	}
	// 2001-01-07 is a Sunday.
	for d := time.Sunday; d <= time.Saturday; d++ {
		t := time.Date(2001, time.January, 7+int(d), 0, 0, 0, 0, time.UTC)
		s.days[d] = monday.Format(t, "Monday", loc)
		s.shortDays[d] = monday.Format(t, "Mon", loc)
	}
	return s
}

var (
	english        = newSymbols(language.English, monday.LocaleEnUS, [2]string{"AM", "PM"}, "EEEE, MMMM d, y 'at' h:mm:ss a")
	britishEnglish = newSymbols(language.BritishEnglish, monday.LocaleEnGB, [2]string{"AM", "PM"}, "EEEE d MMMM y 'at' HH:mm:ss")
	german         = newSymbols(language.German, monday.LocaleDeDE, [2]string{"AM", "PM"}, "EEEE, d. MMMM y 'um' HH:mm:ss")
	french         = newSymbols(language.French, monday.LocaleFrFR, [2]string{"AM", "PM"}, "EEEE d MMMM y 'à' HH:mm:ss")
	spanish        = newSymbols(language.Spanish, monday.LocaleEsES, [2]string{"a. m.", "p. m."}, "EEEE, d 'de' MMMM 'de' y, H:mm:ss")
	japanese       = newSymbols(language.Japanese, monday.LocaleJaJP, [2]string{"午前", "午後"}, "y年M月d日EEEE H時mm分ss秒")
)

// The first entry is the fallback for tags the matcher cannot place.
var supportedSymbols = []*symbols{english, britishEnglish, german, french, spanish, japanese}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(supportedSymbols))
	for i, s := range supportedSymbols {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

func symbolsFor(tag language.Tag) *symbols {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return english
	}
	return supportedSymbols[idx]
}

// SupportedLocales lists the locales with their own names and full style.
func SupportedLocales() []language.Tag {
	tags := make([]language.Tag, len(supportedSymbols))
	for i, s := range supportedSymbols {
		tags[i] = s.tag
	}
	return tags
}

func (s *symbols) monthName(m time.Month, width int) string {
	switch {
	case width >= 5:
		return firstRune(s.months[m-1])
	case width == 4:
		return s.months[m-1]
	default:
		return s.shortMonths[m-1]
	}
}

func (s *symbols) dayName(d time.Weekday, width int) string {
	switch {
	case width >= 5:
		return firstRune(s.days[d])
	case width == 4:
		return s.days[d]
	default:
		return s.shortDays[d]
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
