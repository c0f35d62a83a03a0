// Package datetime formats, parses and measures zone-less calendar values.
//
// Patterns are built from repeated letters:
//
//	y, u   year (yy is two-digit, base 2000)
//	M, L   month (M, MM numeric; MMM short name; MMMM full name; MMMMM narrow)
//	d      day of month
//	D      day of year
//	E      day of week (E..EEE short; EEEE full; EEEEE narrow)
//	a      AM/PM marker
//	H, k   hour of day, 0-23 and 1-24
//	K, h   hour of AM/PM, 0-11 and 1-12
//	m, s   minute and second
//	S      fraction of second, one letter per digit
//
// Text between single quotes is literal and '' is a single quote. Other
// ASCII letters are reserved. Every failure is reported as an error that
// matches ErrInvalidArgument.
//
// A Helper holds no mutable state and may be shared between goroutines.
package datetime

import "golang.org/x/text/language"

const (
	opFormat          = "FormatWithPattern"
	opFormatLocalized = "FormatFullLocalized"
	opParseDate       = "ParseDate"
	opParseDateTime   = "ParseDateTime"
	opMinutesBetween  = "MinutesBetween"
)

// Helper exposes the date/time operations for one locale.
type Helper struct {
	sym *symbols
}

type Option func(*Helper)

// WithLocale selects the names used by text fields and by the full localized
// style. Tags without a close match fall back to English.
func WithLocale(tag language.Tag) Option {
	return func(h *Helper) {
		h.sym = symbolsFor(tag)
	}
}

func New(opts ...Option) *Helper {
	h := &Helper{sym: english}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Locale returns the tag of the locale the helper resolved to.
func (h *Helper) Locale() language.Tag {
	return h.sym.tag
}

// ResolveLocale returns the tag of the locale FormatFullLocalizedIn uses for tag.
func (h *Helper) ResolveLocale(tag language.Tag) language.Tag {
	return symbolsFor(tag).tag
}

// FormatWithPattern renders dt using pattern.
func (h *Helper) FormatWithPattern(dt LocalDateTime, pattern string) (string, error) {
	if err := checkDateTime(opFormat, "dateTime", dt); err != nil {
		return "", err
	}
	p, err := compile(pattern)
	if err != nil {
		return "", withOp(opFormat, err)
	}
	return p.format(dt, h.sym), nil
}

// FormatFullLocalized renders dt in the helper locale's full style, such as
// "Monday, January 15, 2024 at 1:45:00 PM" for English.
func (h *Helper) FormatFullLocalized(dt LocalDateTime) (string, error) {
	return formatFull(dt, h.sym)
}

// FormatFullLocalizedIn is FormatFullLocalized with a per-call locale.
func (h *Helper) FormatFullLocalizedIn(dt LocalDateTime, locale language.Tag) (string, error) {
	return formatFull(dt, symbolsFor(locale))
}

func formatFull(dt LocalDateTime, sym *symbols) (string, error) {
	if err := checkDateTime(opFormatLocalized, "dateTime", dt); err != nil {
		return "", err
	}
	p, err := compile(sym.full)
	if err != nil {
		return "", withOp(opFormatLocalized, err)
	}
	return p.format(dt, sym), nil
}

// ParseDate reads a calendar date from value. The pattern must supply a
// year together with month and day, or with day-of-year; time fields are
// checked but discarded.
func (h *Helper) ParseDate(value, pattern string) (LocalDate, error) {
	f, p, err := h.parse(opParseDate, value, pattern)
	if err != nil {
		return LocalDate{}, err
	}
	d, ok, err := f.resolveDate(p.twoDigitYear())
	if err != nil {
		return LocalDate{}, withOp(opParseDate, err)
	}
	if !ok {
		return LocalDate{}, invalidArg(opParseDate, "pattern", "does not describe a complete date")
	}
	if _, _, err := f.resolveHour(); err != nil {
		return LocalDate{}, withOp(opParseDate, err)
	}
	return d, nil
}

// ParseDateTime reads a date-time from value. In addition to the date
// fields ParseDate needs, the pattern must yield an hour of day; missing
// minutes, seconds and fraction default to zero.
func (h *Helper) ParseDateTime(value, pattern string) (LocalDateTime, error) {
	f, p, err := h.parse(opParseDateTime, value, pattern)
	if err != nil {
		return LocalDateTime{}, err
	}
	d, ok, err := f.resolveDate(p.twoDigitYear())
	if err != nil {
		return LocalDateTime{}, withOp(opParseDateTime, err)
	}
	if !ok {
		return LocalDateTime{}, invalidArg(opParseDateTime, "pattern", "does not describe a complete date")
	}
	hour, ok, err := f.resolveHour()
	if err != nil {
		return LocalDateTime{}, withOp(opParseDateTime, err)
	}
	if !ok {
		return LocalDateTime{}, invalidArg(opParseDateTime, "pattern", "does not describe a time of day")
	}
	dt := d.AtStartOfDay()
	dt.Hour = hour
	dt.Minute = f[fieldMinute]
	dt.Second = f[fieldSecond]
	dt.Nanosecond = f[fieldFraction]
	return dt, nil
}

func (h *Helper) parse(op, value, src string) (fields, *pattern, error) {
	if value == "" {
		return nil, nil, invalidArg(op, "value", "must not be empty")
	}
	if src == "" {
		return nil, nil, invalidArg(op, "pattern", "must not be empty")
	}
	p, err := compile(src)
	if err != nil {
		return nil, nil, withOp(op, err)
	}
	f, err := p.parse(value, h.sym)
	if err != nil {
		return nil, nil, withOp(op, err)
	}
	if err := f.checkRanges(); err != nil {
		return nil, nil, withOp(op, err)
	}
	return f, p, nil
}

// MinutesBetween returns the whole minutes from start to end, negative when
// end is before start. Partial minutes are truncated toward zero, so
// MinutesBetween(a, b) == -MinutesBetween(b, a).
func (h *Helper) MinutesBetween(start, end LocalDateTime) (int64, error) {
	if err := checkDateTime(opMinutesBetween, "start", start); err != nil {
		return 0, err
	}
	if err := checkDateTime(opMinutesBetween, "end", end); err != nil {
		return 0, err
	}
	s, e := start.Time(), end.Time()
	// Seconds and nanoseconds are kept apart: a time.Duration overflows
	// after roughly 292 years.
	secs := e.Unix() - s.Unix()
	nanos := int64(e.Nanosecond() - s.Nanosecond())
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return secs / 60, nil
}

func checkDateTime(op, arg string, dt LocalDateTime) error {
	if dt.IsZero() {
		return invalidArg(op, arg, "must not be absent")
	}
	if !dt.IsValid() {
		return invalidArg(op, arg, "is not a valid date-time: "+dt.String())
	}
	return nil
}
