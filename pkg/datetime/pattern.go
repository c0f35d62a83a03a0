package datetime

import (
	"strings"
	"unicode/utf8"
)

type field int

const (
	fieldLiteral field = iota
	fieldYear
	fieldMonth
	fieldDay
	fieldYearDay
	fieldWeekday
	fieldAmPm
	fieldHour      // H, 0-23
	fieldClockHour // k, 1-24
	fieldHalfHour  // K, 0-11
	fieldHalfClock // h, 1-12
	fieldMinute
	fieldSecond
	fieldFraction
)

// element is one compiled unit of a pattern: either a literal run or a
// field with the number of times its letter was repeated.
type element struct {
	field   field
	width   int
	literal string
}

func (e element) numeric() bool {
	switch e.field {
	case fieldLiteral, fieldWeekday, fieldAmPm:
		return false
	case fieldMonth:
		return e.width <= 2
	}
	return true
}

// minDigits and maxDigits bound a numeric field when parsing.
func (e element) minDigits() int {
	if e.field == fieldYear && e.width == 2 {
		return 2
	}
	return e.width
}

func (e element) maxDigits() int {
	switch e.field {
	case fieldYear:
		if e.width == 2 {
			return 2
		}
		return maxYearDigits
	case fieldYearDay:
		return 3
	case fieldFraction:
		return e.width
	}
	return 2
}

// maxYearDigits is the number of digits in MaxYear.
const maxYearDigits = 9

type letterRule struct {
	field    field
	maxWidth int
}

var letterRules = map[byte]letterRule{
	'y': {fieldYear, 19},
	'u': {fieldYear, 19},
	'M': {fieldMonth, 5},
	'L': {fieldMonth, 5},
	'd': {fieldDay, 2},
	'D': {fieldYearDay, 3},
	'E': {fieldWeekday, 5},
	'a': {fieldAmPm, 1},
	'H': {fieldHour, 2},
	'k': {fieldClockHour, 2},
	'K': {fieldHalfHour, 2},
	'h': {fieldHalfClock, 2},
	'm': {fieldMinute, 2},
	's': {fieldSecond, 2},
	'S': {fieldFraction, 9},
}

// Letters that name zone or offset fields. LocalDate and LocalDateTime carry
// neither, so patterns using them can never be satisfied.
const zoneLetters = "zZxXOVv"

// pattern is a compiled format pattern.
type pattern struct {
	source   string
	elements []element
}

// compile turns a pattern such as "yyyy-MM-dd HH:mm:ss" into elements.
func compile(src string) (*pattern, error) {
	if src == "" {
		return nil, patternError("empty pattern")
	}
	p := &pattern{source: src}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			p.elements = append(p.elements, element{field: fieldLiteral, literal: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\'':
			end, text, err := quoted(src, i)
			if err != nil {
				return nil, err
			}
			lit.WriteString(text)
			i = end
		case isASCIILetter(c):
			n := 1
			for i+n < len(src) && src[i+n] == c {
				n++
			}
			if strings.IndexByte(zoneLetters, c) >= 0 {
				return nil, patternError("%q: zone and offset fields are not supported for local values", c)
			}
			rule, ok := letterRules[c]
			if !ok {
				return nil, patternError("unknown pattern letter %q", c)
			}
			if n > rule.maxWidth {
				return nil, patternError("too many pattern letters: %s", src[i:i+n])
			}
			flush()
			p.elements = append(p.elements, element{field: rule.field, width: n})
			i += n
		case strings.IndexByte("[]{}#", c) >= 0:
			return nil, patternError("reserved character %q", c)
		default:
			_, size := utf8.DecodeRuneInString(src[i:])
			lit.WriteString(src[i : i+size])
			i += size
		}
	}
	flush()
	return p, nil
}

// quoted reads a quoted literal starting at src[start] == '\''. It returns the
// index after the closing quote and the unescaped text.
func quoted(src string, start int) (int, string, error) {
	if start+1 < len(src) && src[start+1] == '\'' {
		return start + 2, "'", nil
	}
	var b strings.Builder
	for i := start + 1; i < len(src); i++ {
		if src[i] != '\'' {
			b.WriteByte(src[i])
			continue
		}
		if i+1 < len(src) && src[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return i + 1, b.String(), nil
	}
	return 0, "", patternError("unterminated quote at offset %d", start)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
