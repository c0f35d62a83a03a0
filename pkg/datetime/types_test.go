package datetime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vogiaan1904/ticketbottle-datetime/pkg/datetime"
)

func TestLocalDateValidity(t *testing.T) {
	for _, tc := range []struct {
		d     datetime.LocalDate
		valid bool
	}{
		{datetime.NewLocalDate(2024, time.February, 29), true},
		{datetime.NewLocalDate(2000, time.February, 29), true},
		{datetime.NewLocalDate(1900, time.February, 29), false},
		{datetime.NewLocalDate(2023, time.April, 31), false},
		{datetime.NewLocalDate(2023, 0, 1), false},
		{datetime.LocalDate{}, false},
	} {
		assert.Equal(t, tc.valid, tc.d.IsValid(), tc.d.String())
	}
	assert.True(t, datetime.LocalDate{}.IsZero())
	assert.Equal(t, time.Monday, datetime.NewLocalDate(2024, time.January, 15).Weekday())
}

func TestLocalDateTimeString(t *testing.T) {
	assert.Equal(t, "2024-01-15T13:45:07.123456789", monday.String())
	assert.Equal(t, "2024-01-15T00:05:00", afterMidn.String())
	assert.Equal(t, "2024-01-15T13:45:07.5",
		datetime.NewLocalDateTime(2024, 1, 15, 13, 45, 7, 500000000).String())
	assert.Equal(t, "2024-01-15", monday.Date().String())
}

func TestLocalDateTimeJSON(t *testing.T) {
	type payload struct {
		At   datetime.LocalDateTime `json:"at"`
		Date datetime.LocalDate     `json:"date"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-01-15T13:45:07.123456789","date":"2024-01-15"}`), &p))
	assert.Equal(t, monday, p.At)
	assert.Equal(t, monday.Date(), p.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-01-15T13:45"}`), &p))
	assert.Equal(t, datetime.NewLocalDateTime(2024, 1, 15, 13, 45, 0, 0), p.At)

	var empty payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"","date":""}`), &empty))
	assert.True(t, empty.At.IsZero())
	assert.True(t, empty.Date.IsZero())

	out, err := json.Marshal(payload{At: afterMidn, Date: afterMidn.Date()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-01-15T00:05:00","date":"2024-01-15"}`, string(out))

	err = json.Unmarshal([]byte(`{"at":"15/01/2024"}`), &p)
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
}

func TestFromTimeDropsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	got := datetime.FromTime(time.Date(2024, 1, 15, 22, 0, 0, 0, loc))
	assert.Equal(t, datetime.NewLocalDateTime(2024, 1, 15, 22, 0, 0, 0), got)
	assert.Equal(t, time.UTC, got.Time().Location())
}
