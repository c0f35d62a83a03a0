package models

import "github.com/vogiaan1904/ticketbottle-datetime/pkg/datetime"

type FormatRequest struct {
	DateTime datetime.LocalDateTime `json:"date_time"`
	Pattern  string                 `json:"pattern" validate:"required,max=256"`
}

type FormatLocalizedRequest struct {
	DateTime datetime.LocalDateTime `json:"date_time"`
	// Locale overrides the service default when set.
	Locale string `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
}

type ParseRequest struct {
	Value   string `json:"value" validate:"max=256"`
	Pattern string `json:"pattern" validate:"max=256"`
}

type MinutesBetweenRequest struct {
	Start datetime.LocalDateTime `json:"start"`
	End   datetime.LocalDateTime `json:"end"`
}

type FormatResponse struct {
	Result string `json:"result"`
	Locale string `json:"locale,omitempty"`
}

type ParseDateResponse struct {
	Date datetime.LocalDate `json:"date"`
}

type ParseDateTimeResponse struct {
	DateTime datetime.LocalDateTime `json:"date_time"`
}

type MinutesBetweenResponse struct {
	Minutes int64 `json:"minutes"`
}
