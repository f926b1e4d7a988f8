package response

import (
	"errors"
	"net/http"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/absence"
	"github.com/hrtools-br/ausencias-backend-go/internal/domain/auth"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/dates"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Absence domain errors
	case errors.Is(err, absence.ErrRecordNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, absence.ErrInvalidCategory):
		BadRequest(w, "Invalid absence category", nil)
	case errors.Is(err, dates.ErrInvalidDayCount):
		BadRequest(w, "Day count must be at least 1", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
