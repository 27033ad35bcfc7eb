package validator

import (
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/go-playground/validator/v10"
)

// Process-wide validator backing the request DTO tag checks. Wired once
// through fx at startup; GetValidator covers non-DI call sites.
var validate *validator.Validate

func NewValidator() *validator.Validate {
	validate = validator.New()
	return validate
}

func GetValidator() *validator.Validate {
	return validate
}

// ValidateRequest runs struct tag validation over a request DTO and folds the
// per-field failures into the reportable details of a validation error, so
// the caller sees which order or board fields were rejected.
func ValidateRequest(req interface{}) error {
	if validate == nil {
		return ierr.NewError("validator not initialized").
			WithHint("Validator must be initialized before using it").
			Mark(ierr.ErrSystem)
	}

	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Field()] = fieldErr.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
