package validator

import (
	"reflect"
	"strings"

	apperrors "github.com/SAP-F-2025/submission-relay/internal/errors"
	"github.com/SAP-F-2025/submission-relay/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps the struct validator with the custom types registered
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	structValidator := validator.New()

	registerCustomTypes(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// ValidateSubmission checks a submission for missing fields. The result is
// advisory: callers log it and carry on.
func (v *Validator) ValidateSubmission(record *models.SubmissionRecord) apperrors.ValidationErrors {
	if record == nil {
		return apperrors.ValidationErrors{*apperrors.NewValidationError("submission", "is required", nil)}
	}
	if err := v.ValidateStruct(record); err != nil {
		return apperrors.ToValidationErrors(err)
	}
	return nil
}

// registerCustomTypes registers type funcs and the json tag name function
func registerCustomTypes(validate *validator.Validate) {
	// Lets "required" see through the lenient JSON scalar types.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ts, ok := field.Interface().(models.Timestamp); ok {
			if ts.IsZero() {
				return ""
			}
			return ts.Raw
		}
		return nil
	}, models.Timestamp{})

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
