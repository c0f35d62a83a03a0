package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vogiaan1904/ticketbottle-datetime/internal/models"
	"github.com/vogiaan1904/ticketbottle-datetime/pkg/datetime"
	"github.com/vogiaan1904/ticketbottle-datetime/pkg/logger"
)

func newTestService(opts ...datetime.Option) DateTimeService {
	return NewDateTimeService(datetime.New(opts...), logger.NewNop())
}

var at = datetime.NewLocalDateTime(2024, time.January, 15, 13, 45, 0, 0)

func TestFormat(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	out, err := svc.Format(ctx, models.FormatRequest{DateTime: at, Pattern: "dd.MM.yyyy HH:mm"})
	require.NoError(t, err)
	assert.Equal(t, "15.01.2024 13:45", out.Result)

	_, err = svc.Format(ctx, models.FormatRequest{Pattern: "yyyy"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFormatLocalized(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(datetime.WithLocale(language.Japanese))

	out, err := svc.FormatLocalized(ctx, models.FormatLocalizedRequest{DateTime: at})
	require.NoError(t, err)
	assert.Equal(t, "2024年1月15日月曜日 13時45分00秒", out.Result)
	assert.Equal(t, "ja", out.Locale)

	out, err = svc.FormatLocalized(ctx, models.FormatLocalizedRequest{DateTime: at, Locale: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "lundi 15 janvier 2024 à 13:45:00", out.Result)
	assert.Equal(t, "fr", out.Locale)

	out, err = svc.FormatLocalized(ctx, models.FormatLocalizedRequest{DateTime: at, Locale: "zh"})
	require.NoError(t, err)
	assert.Equal(t, "Monday, January 15, 2024 at 1:45:00 PM", out.Result)
	assert.Equal(t, "en", out.Locale)

	_, err = svc.FormatLocalized(ctx, models.FormatLocalizedRequest{DateTime: at, Locale: "??"})
	assert.ErrorIs(t, err, ErrInvalidLocale)

	_, err = svc.FormatLocalized(ctx, models.FormatLocalizedRequest{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParse(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	d, err := svc.ParseDate(ctx, models.ParseRequest{Value: "2024-01-15", Pattern: "yyyy-MM-dd"})
	require.NoError(t, err)
	assert.Equal(t, at.Date(), d.Date)

	dt, err := svc.ParseDateTime(ctx, models.ParseRequest{Value: "2024-01-15 13:45:00", Pattern: "yyyy-MM-dd HH:mm:ss"})
	require.NoError(t, err)
	assert.Equal(t, at, dt.DateTime)

	_, err = svc.ParseDate(ctx, models.ParseRequest{Value: "", Pattern: "yyyy-MM-dd"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.ParseDateTime(ctx, models.ParseRequest{Value: "2024-01-15", Pattern: "yyyy-MM-dd"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMinutesBetween(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	out, err := svc.MinutesBetween(ctx, models.MinutesBetweenRequest{
		Start: datetime.NewLocalDateTime(2024, 1, 1, 0, 0, 0, 0),
		End:   datetime.NewLocalDateTime(2024, 1, 1, 1, 30, 0, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(90), out.Minutes)

	_, err = svc.MinutesBetween(ctx, models.MinutesBetweenRequest{Start: at})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
