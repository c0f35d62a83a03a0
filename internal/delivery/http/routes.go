package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vogiaan1904/ticketbottle-datetime/pkg/logger"
	"github.com/vogiaan1904/ticketbottle-datetime/pkg/response"
)

func NewRouter(h *HTTPHandler, l logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.HTTPLogger(l))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		_ = response.Error(w, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		_ = response.Error(w, errMethodNotAllowed)
	})

	r.Get("/health", h.HealthCheck)

	r.Route("/v1/datetime", func(r chi.Router) {
		r.Post("/format", h.Format)
		r.Post("/format/localized", h.FormatLocalized)
		r.Post("/parse/date", h.ParseDate)
		r.Post("/parse/date-time", h.ParseDateTime)
		r.Post("/minutes-between", h.MinutesBetween)
	})

	return r
}
