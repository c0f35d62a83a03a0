package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCompile(t *testing.T) {
	p, err := compile("yyyy-MM-dd'T'HH:mm 'at' h a")
	require.NoError(t, err)
	assert.Equal(t, []element{
		{field: fieldYear, width: 4},
		{field: fieldLiteral, literal: "-"},
		{field: fieldMonth, width: 2},
		{field: fieldLiteral, literal: "-"},
		{field: fieldDay, width: 2},
		{field: fieldLiteral, literal: "T"},
		{field: fieldHour, width: 2},
		{field: fieldLiteral, literal: ":"},
		{field: fieldMinute, width: 2},
		{field: fieldLiteral, literal: " at "},
		{field: fieldHalfClock, width: 1},
		{field: fieldLiteral, literal: " "},
		{field: fieldAmPm, width: 1},
	}, p.elements)

	p, err = compile("'it''s' MMM")
	require.NoError(t, err)
	assert.Equal(t, []element{
		{field: fieldLiteral, literal: "it's "},
		{field: fieldMonth, width: 3},
	}, p.elements)
	assert.False(t, p.elements[1].numeric())
}

func TestReservedAfter(t *testing.T) {
	p, err := compile("yyyyMMddHHmm")
	require.NoError(t, err)
	assert.Equal(t, 8, p.reservedAfter(0))
	assert.Equal(t, 6, p.reservedAfter(1))

	p, err = compile("d MMM")
	require.NoError(t, err)
	assert.Equal(t, 0, p.reservedAfter(0))
}

func TestReadNumber(t *testing.T) {
	v, n, err := readNumber("20240115", 0, element{field: fieldYear, width: 4}, 4)
	require.NoError(t, err)
	assert.Equal(t, 2024, v)
	assert.Equal(t, 4, n)

	v, n, err = readNumber("7th", 0, element{field: fieldDay, width: 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, n)

	_, _, err = readNumber("7", 0, element{field: fieldDay, width: 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	v, n, err = readNumber("9999999999", 0, element{field: fieldYear, width: 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 999999999, v)
	assert.Equal(t, maxYearDigits, n)

	_, _, err = readNumber("9999999999999999999", 0, element{field: fieldYear, width: 19}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSymbolsFor(t *testing.T) {
	assert.Same(t, english, symbolsFor(english.tag))
	assert.Same(t, japanese, symbolsFor(japanese.tag))
	assert.Equal(t, language.English, New().ResolveLocale(language.Chinese))
	assert.Equal(t, language.German, New().ResolveLocale(language.MustParse("de-AT")))
	assert.Len(t, SupportedLocales(), len(supportedSymbols))
	for _, s := range supportedSymbols {
		_, err := compile(s.full)
		assert.NoError(t, err, s.tag)
	}
}

func TestLocaleNames(t *testing.T) {
	assert.Equal(t, "January", english.months[0])
	assert.Equal(t, "Mon", english.shortDays[time.Monday])
	assert.Equal(t, "Januar", german.months[0])
	assert.Equal(t, "Montag", german.days[time.Monday])
	assert.Equal(t, "lundi", french.days[time.Monday])
	assert.Equal(t, "enero", spanish.months[0])
	assert.Equal(t, "1月", japanese.months[0])
	assert.Equal(t, "月曜日", japanese.days[time.Monday])

	// Parsing picks the longest matching name, so names within a width must differ.
	for _, s := range supportedSymbols {
		for _, names := range [][]string{s.months[:], s.shortMonths[:], s.days[:], s.shortDays[:]} {
			seen := map[string]bool{}
			for _, n := range names {
				assert.NotEmpty(t, n, s.tag)
				assert.False(t, seen[n], "%s: duplicate name %q", s.tag, n)
				seen[n] = true
			}
		}
	}
}
