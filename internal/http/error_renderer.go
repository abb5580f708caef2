package httpx

import (
	"net/http"

	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// WriteAppError translates an application error into the JSON error shape.
// Unknown errors are reported as internal without leaking their message.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status, ok := statusFor[code]
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: string(apperrors.ErrCodeInternal),
			Err:     errInternal{},
		})
		return
	}

	body := map[string]string{
		"error":   string(code),
		"message": apperrors.GetMessage(err),
	}
	if field := apperrors.GetField(err); field != "" {
		body["field"] = field
	}
	WriteJSON(w, status, body)
}

// statusFor maps application error codes onto HTTP status codes. Token and
// upstream auth failures surface as 502: the client's request was fine, the
// dependency was not.
var statusFor = map[apperrors.ErrorCode]int{
	apperrors.ErrCodeValidation:   http.StatusBadRequest,
	apperrors.ErrCodeUnauthorized: http.StatusUnauthorized,
	apperrors.ErrCodeForbidden:    http.StatusForbidden,
	apperrors.ErrCodeNotFound:     http.StatusNotFound,
	apperrors.ErrCodeConflict:     http.StatusConflict,
	apperrors.ErrCodeForeignKey:   http.StatusConflict,
	apperrors.ErrCodeNotConnected: http.StatusPreconditionFailed,
	apperrors.ErrCodeTokenRefresh: http.StatusBadGateway,
	apperrors.ErrCodeExternalAuth: http.StatusBadGateway,
	apperrors.ErrCodeExternal:     http.StatusBadGateway,
	apperrors.ErrCodeTimeout:      http.StatusGatewayTimeout,
	apperrors.ErrCodeCanceled:     http.StatusBadRequest,
}

type errInternal struct{}

func (errInternal) Error() string { return "internal server error" }
