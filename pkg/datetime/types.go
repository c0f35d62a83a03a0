package datetime

import (
	"fmt"
	"strings"
	"time"
)

const (
	isoDateLayout         = "2006-01-02"
	isoDateTimeLayout     = "2006-01-02T15:04:05"
	isoDateTimeLayoutNoSS = "2006-01-02T15:04"
)

// Supported year range. Whole-minute differences across it fit in an int64.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// LocalDate is a calendar date without a time-of-day or zone.
// The zero value is treated as absent.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewLocalDate returns the date y-m-d without validating it.
func NewLocalDate(y int, m time.Month, d int) LocalDate {
	return LocalDate{Year: y, Month: m, Day: d}
}

func (d LocalDate) IsZero() bool {
	return d == LocalDate{}
}

// IsValid reports whether d names a real day of the proleptic Gregorian
// calendar between MinYear and MaxYear.
func (d LocalDate) IsValid() bool {
	if d.Year < MinYear || d.Year > MaxYear {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= daysIn(d.Year, d.Month)
}

// AtStartOfDay returns midnight at the start of d.
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{Year: d.Year, Month: d.Month, Day: d.Day}
}

// Weekday is only meaningful for valid dates.
func (d LocalDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// YearDay returns the day of the year, 1 through 366.
func (d LocalDate) YearDay() int {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).YearDay()
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d LocalDate) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts yyyy-MM-dd; empty text leaves the absent value.
func (d *LocalDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = LocalDate{}
		return nil
	}
	t, err := time.Parse(isoDateLayout, string(text))
	if err != nil {
		return fmt.Errorf("%w: local date %q", ErrInvalidArgument, text)
	}
	*d = LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	return nil
}

// LocalDateTime is a calendar date plus a time-of-day without a zone or
// offset. The zero value is treated as absent.
type LocalDateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewLocalDateTime returns the given date-time without validating it.
func NewLocalDateTime(y int, m time.Month, d, hh, mm, ss, ns int) LocalDateTime {
	return LocalDateTime{Year: y, Month: m, Day: d, Hour: hh, Minute: mm, Second: ss, Nanosecond: ns}
}

// FromTime drops the location of t and keeps its wall clock reading.
func FromTime(t time.Time) LocalDateTime {
	return LocalDateTime{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

func (dt LocalDateTime) IsZero() bool {
	return dt == LocalDateTime{}
}

func (dt LocalDateTime) IsValid() bool {
	if !dt.Date().IsValid() {
		return false
	}
	return dt.Hour >= 0 && dt.Hour < 24 &&
		dt.Minute >= 0 && dt.Minute < 60 &&
		dt.Second >= 0 && dt.Second < 60 &&
		dt.Nanosecond >= 0 && dt.Nanosecond < int(time.Second)
}

func (dt LocalDateTime) Date() LocalDate {
	return LocalDate{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// Time pins dt to UTC. The result is for arithmetic and must not be read as
// an instant.
func (dt LocalDateTime) Time() time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, time.UTC)
}

// String renders the ISO-8601 local form, omitting a zero fraction.
func (dt LocalDateTime) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sT%02d:%02d:%02d", dt.Date(), dt.Hour, dt.Minute, dt.Second)
	if dt.Nanosecond != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", dt.Nanosecond), "0")
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func (dt LocalDateTime) MarshalText() ([]byte, error) {
	if dt.IsZero() {
		return []byte{}, nil
	}
	return []byte(dt.String()), nil
}

// UnmarshalText accepts yyyy-MM-ddTHH:mm[:ss[.fraction]]; empty text leaves
// the absent value.
func (dt *LocalDateTime) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*dt = LocalDateTime{}
		return nil
	}
	s := string(text)
	t, err := time.Parse(isoDateTimeLayout, s)
	if err != nil {
		t, err = time.Parse(isoDateTimeLayoutNoSS, s)
	}
	if err != nil {
		return fmt.Errorf("%w: local date-time %q", ErrInvalidArgument, s)
	}
	*dt = FromTime(t)
	return nil
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func daysIn(y int, m time.Month) int {
	switch m {
	case time.February:
		if isLeap(y) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
