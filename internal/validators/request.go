// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-hub/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants accepted by [RequestValidator.Validate] to restrict
// validation of a struct to a subset of its fields. The names are the Go
// field names, as expected by [validator.Validate.StructPartial].
const (
	FieldUID      = "UID"
	FieldEmail    = "Email"
	FieldEnrollID = "EnrollID"

	// FieldCourse targets the "course" object of an enrollment document.
	FieldCourse = "course"
)

// requiredFieldErrors maps a failed "required" rule to a domain error.
var requiredFieldErrors = map[string]error{
	FieldUID:      ErrUIDRequired,
	FieldEmail:    ErrEmailRequired,
	FieldEnrollID: ErrEnrollIDRequired,
}

// RequestValidator validates the inbound request bodies of the course API.
// Struct bodies are checked against their `validate` tags by
// go-playground/validator; enrollment documents get a structural check.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer forms
// of each supported model are accepted.
//
// Supported types:
//   - models.User / *models.User
//   - models.MakeAdminRequest / *models.MakeAdminRequest
//   - models.ChangeEnrollStatusRequest / *models.ChangeEnrollStatusRequest
//   - models.Enrollment
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateStruct(ctx, value, fields...)
	case *models.User:
		return v.validateStruct(ctx, *value, fields...)

	case models.MakeAdminRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.MakeAdminRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.ChangeEnrollStatusRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.ChangeEnrollStatusRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.Enrollment:
		return v.validateEnrollment(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	first := validationErrors[0]
	if first.Tag() == "required" {
		if known, ok := requiredFieldErrors[first.StructField()]; ok {
			return known
		}
	}

	return fmt.Errorf("%w: %s failed on %q", ErrInvalidField, first.StructField(), first.Tag())
}

// validateEnrollment checks that the document carries a "course" object.
func (v *RequestValidator) validateEnrollment(_ context.Context, enrollment models.Enrollment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCourse}
	}

	for _, f := range fields {
		switch f {
		case FieldCourse:
			if _, ok := models.EnrollmentCourse(enrollment); !ok {
				return ErrCourseRequired
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
