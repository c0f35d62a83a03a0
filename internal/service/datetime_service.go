package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/vogiaan1904/ticketbottle-datetime/internal/models"
	"github.com/vogiaan1904/ticketbottle-datetime/pkg/datetime"
	"github.com/vogiaan1904/ticketbottle-datetime/pkg/logger"
)

type dateTimeService struct {
	helper *datetime.Helper
	l      logger.Logger
}

func NewDateTimeService(helper *datetime.Helper, l logger.Logger) DateTimeService {
	return &dateTimeService{
		helper: helper,
		l:      l,
	}
}

func (s *dateTimeService) Format(ctx context.Context, req models.FormatRequest) (*models.FormatResponse, error) {
	out, err := s.helper.FormatWithPattern(req.DateTime, req.Pattern)
	if err != nil {
		return nil, s.rejected(ctx, err)
	}
	return &models.FormatResponse{Result: out}, nil
}

func (s *dateTimeService) FormatLocalized(ctx context.Context, req models.FormatLocalizedRequest) (*models.FormatResponse, error) {
	tag := s.helper.Locale()
	if req.Locale != "" {
		parsed, err := language.Parse(req.Locale)
		if err != nil {
			return nil, s.rejected(ctx, fmt.Errorf("%w %q: %v", ErrInvalidLocale, req.Locale, err))
		}
		tag = parsed
	}

	out, err := s.helper.FormatFullLocalizedIn(req.DateTime, tag)
	if err != nil {
		return nil, s.rejected(ctx, err)
	}
	return &models.FormatResponse{Result: out, Locale: s.helper.ResolveLocale(tag).String()}, nil
}

func (s *dateTimeService) ParseDate(ctx context.Context, req models.ParseRequest) (*models.ParseDateResponse, error) {
	d, err := s.helper.ParseDate(req.Value, req.Pattern)
	if err != nil {
		return nil, s.rejected(ctx, err)
	}
	return &models.ParseDateResponse{Date: d}, nil
}

func (s *dateTimeService) ParseDateTime(ctx context.Context, req models.ParseRequest) (*models.ParseDateTimeResponse, error) {
	dt, err := s.helper.ParseDateTime(req.Value, req.Pattern)
	if err != nil {
		return nil, s.rejected(ctx, err)
	}
	return &models.ParseDateTimeResponse{DateTime: dt}, nil
}

func (s *dateTimeService) MinutesBetween(ctx context.Context, req models.MinutesBetweenRequest) (*models.MinutesBetweenResponse, error) {
	n, err := s.helper.MinutesBetween(req.Start, req.End)
	if err != nil {
		return nil, s.rejected(ctx, err)
	}
	return &models.MinutesBetweenResponse{Minutes: n}, nil
}

// rejected logs caller mistakes at debug level; anything else is unexpected.
func (s *dateTimeService) rejected(ctx context.Context, err error) error {
	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidLocale) {
		s.l.Debugf(ctx, "datetime request rejected: %v", err)
	} else {
		s.l.Errorf(ctx, "datetime request failed: %v", err)
	}
	return err
}
