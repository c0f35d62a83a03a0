package response

import (
	"encoding/json"
	"errors"
	"net/http"

	pkgErrors "github.com/vogiaan1904/ticketbottle-datetime/pkg/errors"
)

type Resp struct {
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const internalErrorCode = "DTM500"

func OK(w http.ResponseWriter, data any) error {
	return write(w, http.StatusOK, Resp{Message: "success", Data: data})
}

// Error writes err as a JSON envelope. Errors that are not *HTTPError are
// reported as a bare internal error so their text never reaches the client.
func Error(w http.ResponseWriter, err error) error {
	statusCode, resp := parseHttpError(err)
	return write(w, statusCode, resp)
}

func parseHttpError(err error) (int, Resp) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}

		return statusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	}

	return http.StatusInternalServerError, Resp{
		ErrorCode: internalErrorCode,
		Message:   "Internal server error",
	}
}

func write(w http.ResponseWriter, statusCode int, resp Resp) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(resp)
}
