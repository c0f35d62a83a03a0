package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vogiaan1904/ticketbottle-datetime/internal/models"
	"github.com/vogiaan1904/ticketbottle-datetime/internal/service"
	"github.com/vogiaan1904/ticketbottle-datetime/pkg/logger"
	"github.com/vogiaan1904/ticketbottle-datetime/pkg/response"
)

const maxBodyBytes = 1 << 16

type HTTPHandler struct {
	svc       service.DateTimeService
	l         logger.Logger
	validator *validator.Validate
}

func NewHTTPHandler(svc service.DateTimeService, l logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:       svc,
		l:         l,
		validator: validator.New(),
	}
}

// HealthCheck handles health check requests
func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, map[string]any{
		"status":  "healthy",
		"service": "datetime-service",
		"version": "1.0.0",
	}, nil)
}

func (h *HTTPHandler) Format(w http.ResponseWriter, r *http.Request) {
	var req models.FormatRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out, err := h.svc.Format(r.Context(), req)
	h.respond(w, r, out, err)
}

func (h *HTTPHandler) FormatLocalized(w http.ResponseWriter, r *http.Request) {
	var req models.FormatLocalizedRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out, err := h.svc.FormatLocalized(r.Context(), req)
	h.respond(w, r, out, err)
}

func (h *HTTPHandler) ParseDate(w http.ResponseWriter, r *http.Request) {
	var req models.ParseRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out, err := h.svc.ParseDate(r.Context(), req)
	h.respond(w, r, out, err)
}

func (h *HTTPHandler) ParseDateTime(w http.ResponseWriter, r *http.Request) {
	var req models.ParseRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out, err := h.svc.ParseDateTime(r.Context(), req)
	h.respond(w, r, out, err)
}

func (h *HTTPHandler) MinutesBetween(w http.ResponseWriter, r *http.Request) {
	var req models.MinutesBetweenRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out, err := h.svc.MinutesBetween(r.Context(), req)
	h.respond(w, r, out, err)
}

// Helper functions

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return errInvalidArgument.WithMessage(err.Error())
		}
		return errMalformedBody
	}
	if err := h.validator.Struct(dst); err != nil {
		return errValidation.WithMessage(err.Error())
	}
	return nil
}

func (h *HTTPHandler) respond(w http.ResponseWriter, r *http.Request, data any, err error) {
	var werr error
	if err != nil {
		werr = response.Error(w, h.mapHTTPError(err))
	} else {
		werr = response.OK(w, data)
	}
	if werr != nil {
		h.l.Errorf(r.Context(), "Failed to encode JSON response: %v", werr)
	}
}
