package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

func TestWriteAppError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperrors.NotFound("client not found"), http.StatusNotFound, "not_found"},
		{"validation", apperrors.Validation("bad input"), http.StatusBadRequest, "validation"},
		{"unauthorized", apperrors.Unauthorized("nope"), http.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperrors.Forbidden("not yours"), http.StatusForbidden, "forbidden"},
		{"conflict", apperrors.Conflict("duplicate"), http.StatusConflict, "conflict"},
		{"not connected", apperrors.NotConnected("no google connection"), http.StatusPreconditionFailed, "not_connected"},
		{"token refresh", apperrors.TokenRefresh("refresh rejected"), http.StatusBadGateway, "token_refresh"},
		{"external auth", apperrors.ExternalAuth("exchange failed"), http.StatusBadGateway, "external_auth"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteAppError(w, tc.err)

			assert.Equal(t, tc.status, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["error"])
		})
	}
}

func TestWriteAppError_FieldIncluded(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, apperrors.ValidationField("term", "term is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "term", body["field"])
	assert.Equal(t, "term is required", body["message"])
}

func TestWriteAppError_UnknownErrorHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
