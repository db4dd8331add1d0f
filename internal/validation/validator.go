// Package validation wraps the validator/v10 library so that every schema
// violation in a request is collected into a single domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report field names as their JSON tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		for i := 0; i < len(name); i++ {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	// slug: lowercase letters, digits and hyphens only.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// CheckSlug validates a caller-supplied slug against the same shape the
// "slug" tag enforces, returning a batch validation error naming the
// field, or nil.
func CheckSlug(slug string) error {
	if slugPattern.MatchString(slug) {
		return nil
	}
	return (&domain.ValidationError{}).Add("slug", "must contain only lowercase letters, digits and hyphens")
}

// Validate checks a struct against its validate tags and returns a
// domain.ValidationError listing every violated field, or nil.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &domain.ValidationError{}
	for _, e := range verrs {
		ve.Add(e.Field(), message(e))
	}
	return ve
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", e.Param())
	case "lte":
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "hexcolor":
		return "must be a hex color like #1A2B3C"
	case "slug":
		return "must contain only lowercase letters, digits and hyphens"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
