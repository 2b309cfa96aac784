package utils

import (
	"errors"
	"net/http"

	"github.com/SKuzmin/cryptopay/internal/domain"
)

// RespondWithDomainError maps the shared error taxonomy onto HTTP statuses.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, domain.ErrAuthorization):
		code = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrConflict):
		code = http.StatusConflict
	}
	RespondWithError(w, code, err.Error())
}
