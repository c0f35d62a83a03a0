package http

import (
	"errors"
	"net/http"

	"github.com/vogiaan1904/ticketbottle-datetime/internal/service"
	pkgErrors "github.com/vogiaan1904/ticketbottle-datetime/pkg/errors"
)

var (
	errMalformedBody    = pkgErrors.NewHTTPError("DTM000", "Invalid request body")
	errInvalidArgument  = pkgErrors.NewHTTPError("DTM001", "Invalid argument")
	errValidation       = pkgErrors.NewHTTPError("DTM002", "Validation failed")
	errInvalidLocale    = pkgErrors.NewHTTPError("DTM003", "Invalid locale")
	errRouteNotFound    = pkgErrors.NewHTTPError("DTM404", "Route not found").WithStatus(http.StatusNotFound)
	errMethodNotAllowed = pkgErrors.NewHTTPError("DTM405", "Method not allowed").WithStatus(http.StatusMethodNotAllowed)
)

// mapHTTPError keeps the helper's message: it names the offending argument
// and is safe to show to callers.
func (h *HTTPHandler) mapHTTPError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, service.ErrInvalidLocale):
		return errInvalidLocale.WithMessage(err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		return errInvalidArgument.WithMessage(err.Error())
	default:
		return err
	}
}
