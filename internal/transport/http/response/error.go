package response

import (
	"errors"
	"net/http"

	"github.com/DjorgeSilva/login-service/internal/domain"
)

// WriteError converts a domain error into a consistent JSON HTTP error
// response. Non-domain errors are treated as internal errors (500) without
// leaking details.
//
// Failures are reported as {"error": "<message>"}, except duplicate email,
// which the registration contract has always reported as {"msg": ...}.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	message := "internal error"

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		code = de.Code
		message = de.Message
	}

	key := "error"
	if code == "email_in_use" {
		key = "msg"
	}

	WriteJSON(w, status, map[string]string{key: message})
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusUnprocessableEntity
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindBadToken:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		// registration reports duplicate email as 422, not 409
		return http.StatusUnprocessableEntity
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
