package service

import (
	"context"

	"github.com/vogiaan1904/ticketbottle-datetime/internal/models"
)

type DateTimeService interface {
	Format(ctx context.Context, req models.FormatRequest) (*models.FormatResponse, error)
	FormatLocalized(ctx context.Context, req models.FormatLocalizedRequest) (*models.FormatResponse, error)
	ParseDate(ctx context.Context, req models.ParseRequest) (*models.ParseDateResponse, error)
	ParseDateTime(ctx context.Context, req models.ParseRequest) (*models.ParseDateTimeResponse, error)
	MinutesBetween(ctx context.Context, req models.MinutesBetweenRequest) (*models.MinutesBetweenResponse, error)
}
