// file: internals/features/crud/validation.go
package crud

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/apperr"
)

// NewValidator: validator dengan nama field = json tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

/* =======================================================
   INPUT RULES
   ======================================================= */

func (s *Service[T, K]) inputProblems(row *T) map[string]string {
	fields := map[string]string{}

	if err := s.validate.Struct(row); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				fields[fe.Field()] = describeRule(fe)
			}
		} else {
			fields["body"] = "is invalid"
		}
	}
	if s.def.Check != nil {
		for k, v := range s.def.Check(row) {
			if _, dup := fields[k]; !dup {
				fields[k] = v
			}
		}
	}
	return fields
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "email":
		return "must be a valid email"
	default:
		return "failed rule " + fe.Tag()
	}
}

/* =======================================================
   VALIDATE ON CREATE / RETRIEVE / DELETE / MODIFY
   ======================================================= */

func (s *Service[T, K]) validateOnCreate(ctx context.Context, row *T) error {
	fields := s.inputProblems(row)
	if s.def.Audit(row).CreatedBy == uuid.Nil {
		fields["created_by"] = "is required"
	}
	if s.isZeroKey(s.def.KeyOf(row)) {
		fields["id"] = "is required"
	}
	if len(fields) > 0 {
		return apperr.Validation(s.def.Name, apperr.InvalidInput(s.def.Name, fields))
	}

	key := s.def.KeyOf(row)
	_, err := s.store.RetrieveByID(ctx, key)
	switch {
	case err == nil:
		return apperr.Validation(s.def.Name, apperr.AlreadyExists(s.def.Name, key, nil))
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return apperr.FromStorage(s.def.Name, key, err)
	}
}

// validateOnRetrieveOrDelete returns the stored row when the operation may proceed.
func (s *Service[T, K]) validateOnRetrieveOrDelete(ctx context.Context, key K) (T, error) {
	row, err := s.store.RetrieveByID(ctx, key)
	if err != nil {
		var zero T
		return zero, apperr.FromStorage(s.def.Name, key, err)
	}
	if s.def.Audit(&row).IsLocked {
		var zero T
		return zero, apperr.Dependency(s.def.Name, apperr.Locked(s.def.Name, key, nil))
	}
	return row, nil
}

func (s *Service[T, K]) validateOnModify(ctx context.Context, row *T) (T, error) {
	var zero T

	fields := s.inputProblems(row)
	key := s.def.KeyOf(row)
	if s.isZeroKey(key) {
		fields["id"] = "is required"
	}
	if len(fields) > 0 {
		return zero, apperr.Validation(s.def.Name, apperr.InvalidInput(s.def.Name, fields))
	}

	stored, err := s.validateOnRetrieveOrDelete(ctx, key)
	if err != nil {
		return zero, err
	}

	in, was := s.def.Audit(row), s.def.Audit(&stored)
	if in.CreatedBy != uuid.Nil && in.CreatedBy != was.CreatedBy {
		return zero, apperr.Validation(s.def.Name,
			apperr.InvalidInput(s.def.Name, map[string]string{"created_by": "cannot be changed"}))
	}
	if !in.CreatedDate.IsZero() && !in.CreatedDate.Equal(was.CreatedDate) {
		return zero, apperr.Validation(s.def.Name,
			apperr.InvalidInput(s.def.Name, map[string]string{"created_date": "cannot be changed"}))
	}
	return stored, nil
}

func (s *Service[T, K]) isZeroKey(key K) bool {
	var zero K
	return key == zero
}
