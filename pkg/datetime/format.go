package datetime

import (
	"strconv"
	"strings"
)

// format renders dt with the compiled pattern. dt must be valid.
func (p *pattern) format(dt LocalDateTime, sym *symbols) string {
	var b strings.Builder
	for _, e := range p.elements {
		switch e.field {
		case fieldLiteral:
			b.WriteString(e.literal)
		case fieldYear:
			if e.width == 2 {
				writePadded(&b, mod(dt.Year, 100), 2)
			} else {
				writePadded(&b, dt.Year, e.width)
			}
		case fieldMonth:
			if e.width <= 2 {
				writePadded(&b, int(dt.Month), e.width)
			} else {
				b.WriteString(sym.monthName(dt.Month, e.width))
			}
		case fieldDay:
			writePadded(&b, dt.Day, e.width)
		case fieldYearDay:
			writePadded(&b, dt.Date().YearDay(), e.width)
		case fieldWeekday:
			b.WriteString(sym.dayName(dt.Date().Weekday(), e.width))
		case fieldAmPm:
			b.WriteString(sym.amPm[dt.Hour/12])
		case fieldHour:
			writePadded(&b, dt.Hour, e.width)
		case fieldClockHour:
			h := dt.Hour
			if h == 0 {
				h = 24
			}
			writePadded(&b, h, e.width)
		case fieldHalfHour:
			writePadded(&b, dt.Hour%12, e.width)
		case fieldHalfClock:
			h := dt.Hour % 12
			if h == 0 {
				h = 12
			}
			writePadded(&b, h, e.width)
		case fieldMinute:
			writePadded(&b, dt.Minute, e.width)
		case fieldSecond:
			writePadded(&b, dt.Second, e.width)
		case fieldFraction:
			b.WriteString(fraction(dt.Nanosecond, e.width))
		}
	}
	return b.String()
}

func writePadded(b *strings.Builder, v, width int) {
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// fraction truncates ns to the requested number of digits.
func fraction(ns, digits int) string {
	s := strconv.Itoa(ns + 1_000_000_000)[1:]
	return s[:digits]
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
