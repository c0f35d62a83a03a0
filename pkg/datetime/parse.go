package datetime

import (
	"strings"
	"time"
)

// fields collects the raw values read from the input, keyed by field.
type fields map[field]int

func (f fields) set(k field, v int) error {
	if old, ok := f[k]; ok && old != v {
		return parseError("conflicting values %d and %d for the same field", old, v)
	}
	f[k] = v
	return nil
}

// parse matches s against the whole pattern and returns the raw fields.
func (p *pattern) parse(s string, sym *symbols) (fields, error) {
	out := fields{}
	pos := 0
	for i, e := range p.elements {
		switch {
		case e.field == fieldLiteral:
			if !strings.HasPrefix(s[pos:], e.literal) {
				return nil, parseError("expected %q at offset %d", e.literal, pos)
			}
			pos += len(e.literal)
		case e.numeric():
			neg := false
			if e.field == fieldYear && e.width != 2 && pos < len(s) && s[pos] == '-' {
				neg = true
				pos++
			}
			v, n, err := readNumber(s, pos, e, p.reservedAfter(i))
			if err != nil {
				return nil, err
			}
			if neg {
				v = -v
			}
			if e.field == fieldFraction {
				for d := n; d < 9; d++ {
					v *= 10
				}
			}
			if err := out.set(e.field, v); err != nil {
				return nil, err
			}
			pos += n
		default:
			if e.width >= 5 {
				return nil, patternError("narrow text fields cannot be parsed unambiguously")
			}
			v, n, ok := readText(s[pos:], e, sym)
			if !ok {
				return nil, parseError("unrecognised text at offset %d", pos)
			}
			if err := out.set(e.field, v); err != nil {
				return nil, err
			}
			pos += n
		}
	}
	if pos != len(s) {
		return nil, parseError("unparsed text %q at offset %d", s[pos:], pos)
	}
	return out, nil
}

// reservedAfter returns how many digits the fixed-width numeric fields that
// directly follow element i need, so that "yyyyMMdd" splits correctly.
func (p *pattern) reservedAfter(i int) int {
	n := 0
	for _, e := range p.elements[i+1:] {
		if !e.numeric() || e.minDigits() != e.maxDigits() {
			break
		}
		n += e.minDigits()
	}
	return n
}

func readNumber(s string, pos int, e element, reserved int) (value, consumed int, err error) {
	run := 0
	for pos+run < len(s) && s[pos+run] >= '0' && s[pos+run] <= '9' {
		run++
	}
	lo, hi := e.minDigits(), e.maxDigits()
	if lo > hi {
		return 0, 0, patternError("field of %d digits exceeds the %d-digit limit", lo, hi)
	}
	take := min(hi, run)
	if lo != hi && run-reserved >= lo {
		take = min(take, run-reserved)
	}
	if take < lo {
		return 0, 0, parseError("expected at least %d digits at offset %d", lo, pos)
	}
	for _, c := range s[pos : pos+take] {
		value = value*10 + int(c-'0')
	}
	return value, take, nil
}

func readText(s string, e element, sym *symbols) (value, consumed int, ok bool) {
	var names []string
	switch e.field {
	case fieldMonth:
		for m := time.January; m <= time.December; m++ {
			names = append(names, sym.monthName(m, e.width))
		}
	case fieldWeekday:
		for d := time.Sunday; d <= time.Saturday; d++ {
			names = append(names, sym.dayName(d, e.width))
		}
	case fieldAmPm:
		names = sym.amPm[:]
	}
	best := -1
	for i, name := range names {
		if strings.HasPrefix(s, name) && (best < 0 || len(name) > len(names[best])) {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	if e.field == fieldMonth {
		return best + 1, len(names[best]), true
	}
	return best, len(names[best]), true
}

var fieldRanges = map[field][2]int{
	fieldMonth:     {1, 12},
	fieldDay:       {1, 31},
	fieldYearDay:   {1, 366},
	fieldHour:      {0, 23},
	fieldClockHour: {1, 24},
	fieldHalfHour:  {0, 11},
	fieldHalfClock: {1, 12},
	fieldMinute:    {0, 59},
	fieldSecond:    {0, 59},
}

func (f fields) checkRanges() error {
	for k, r := range fieldRanges {
		if v, ok := f[k]; ok && (v < r[0] || v > r[1]) {
			return parseError("value %d out of range %d-%d", v, r[0], r[1])
		}
	}
	return nil
}

// resolveDate combines year with month and day, or with day-of-year.
func (f fields) resolveDate(twoDigitYear bool) (LocalDate, bool, error) {
	y, ok := f[fieldYear]
	if !ok {
		return LocalDate{}, false, nil
	}
	if twoDigitYear {
		y += 2000
	}
	if y < MinYear || y > MaxYear {
		return LocalDate{}, false, parseError("year %d outside %d to %d", y, MinYear, MaxYear)
	}
	var d LocalDate
	month, hasMonth := f[fieldMonth]
	day, hasDay := f[fieldDay]
	yday, hasYearDay := f[fieldYearDay]
	switch {
	case hasMonth && hasDay:
		d = LocalDate{Year: y, Month: time.Month(month), Day: day}
		if !d.IsValid() {
			return LocalDate{}, false, parseError("invalid date %s", d)
		}
		if hasYearDay && d.YearDay() != yday {
			return LocalDate{}, false, parseError("day-of-year %d does not match %s", yday, d)
		}
	case hasYearDay:
		if yday == 366 && !isLeap(y) {
			return LocalDate{}, false, parseError("day-of-year 366 in non-leap year %d", y)
		}
		t := time.Date(y, time.January, yday, 0, 0, 0, 0, time.UTC)
		d = LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
		if hasMonth && int(d.Month) != month {
			return LocalDate{}, false, parseError("day-of-year %d does not fall in month %d", yday, month)
		}
	default:
		return LocalDate{}, false, nil
	}
	if wd, ok := f[fieldWeekday]; ok && time.Weekday(wd) != d.Weekday() {
		return LocalDate{}, false, parseError("%s is a %s, not a %s", d, d.Weekday(), time.Weekday(wd))
	}
	return d, true, nil
}

// resolveHour derives the hour-of-day from whichever hour fields were read.
// Half-day hours only count when an AM/PM marker is present.
func (f fields) resolveHour() (int, bool, error) {
	var candidates []int
	if h, ok := f[fieldHour]; ok {
		candidates = append(candidates, h)
	}
	if k, ok := f[fieldClockHour]; ok {
		candidates = append(candidates, k%24)
	}
	if ap, ok := f[fieldAmPm]; ok {
		if h, ok := f[fieldHalfClock]; ok {
			candidates = append(candidates, h%12+12*ap)
		}
		if h, ok := f[fieldHalfHour]; ok {
			candidates = append(candidates, h+12*ap)
		}
	}
	if len(candidates) == 0 {
		return 0, false, nil
	}
	for _, c := range candidates[1:] {
		if c != candidates[0] {
			return 0, false, parseError("conflicting hour fields")
		}
	}
	if ap, ok := f[fieldAmPm]; ok && candidates[0]/12 != ap {
		return 0, false, parseError("hour %d does not match the AM/PM marker", candidates[0])
	}
	return candidates[0], true, nil
}

func (p *pattern) twoDigitYear() bool {
	for _, e := range p.elements {
		if e.field == fieldYear && e.width == 2 {
			return true
		}
	}
	return false
}
