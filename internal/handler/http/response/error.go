package response

import (
	"errors"
	"net/http"

	"github.com/officehub/officehub-backend-go/internal/domain/auth"
	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/domain/user"
	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete own account", nil)
	case errors.Is(err, user.ErrLastAdminRemains):
		BadRequest(w, "Cannot remove the last admin", nil)
	case errors.Is(err, user.ErrValidationFailed):
		BadRequest(w, err.Error(), nil)

	// Work type domain errors
	case errors.Is(err, worktype.ErrWorkTypeNotFound):
		NotFound(w, "Work type not found")
	case errors.Is(err, worktype.ErrNoFieldsDefined):
		BadRequest(w, "Work type has no fields defined", nil)
	case errors.Is(err, worktype.ErrValidationFailed):
		BadRequest(w, err.Error(), nil)

	// Record domain errors
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, record.ErrValidationFailed):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
