package service

import (
	"errors"

	"github.com/vogiaan1904/ticketbottle-datetime/pkg/datetime"
)

var (
	ErrInvalidArgument = datetime.ErrInvalidArgument
	ErrInvalidLocale   = errors.New("invalid locale")
)
