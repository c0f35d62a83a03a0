package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "github.com/vogiaan1904/ticketbottle-datetime/pkg/errors"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Resp {
	t.Helper()
	var resp Resp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, OK(rec, map[string]int{"minutes": 90}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode(t, rec)
	assert.Empty(t, resp.ErrorCode)
	assert.Equal(t, map[string]any{"minutes": float64(90)}, resp.Data)
}

func TestError(t *testing.T) {
	base := pkgErrors.NewHTTPError("DTM001", "Invalid argument")
	for _, tc := range []struct {
		err        error
		statusCode int
		code       string
		message    string
	}{
		{base, http.StatusBadRequest, "DTM001", "Invalid argument"},
		{fmt.Errorf("wrapped: %w", base.WithMessage("pattern: unknown letter")), http.StatusBadRequest, "DTM001", "pattern: unknown letter"},
		{base.WithStatus(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity, "DTM001", "Invalid argument"},
		{&pkgErrors.HTTPError{Code: "X", Message: "no status"}, http.StatusBadRequest, "X", "no status"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "DTM500", "Internal server error"},
	} {
		rec := httptest.NewRecorder()
		require.NoError(t, Error(rec, tc.err))
		assert.Equal(t, tc.statusCode, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, tc.code, resp.ErrorCode)
		assert.Equal(t, tc.message, resp.Message)
	}
}
