package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/validation"
)

type testRequest struct {
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug" validate:"required,slug"`
	Color       string   `json:"color" validate:"omitempty,hexcolor"`
	RakeDegrees *float64 `json:"rake_degrees" validate:"omitempty,gte=0,lte=90"`
}

func TestValidate_OK(t *testing.T) {
	v := validation.New()
	rake := 24.5
	err := v.Validate(testRequest{Name: "Trellis", Slug: "trellis-frame", Color: "#FF0000", RakeDegrees: &rake})
	assert.NoError(t, err)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	v := validation.New()
	rake := 120.0
	err := v.Validate(testRequest{Slug: "Not A Slug!", Color: "red", RakeDegrees: &rake})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 4)

	fields := map[string]string{}
	for _, f := range ve.Fields {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "color")
	assert.Contains(t, fields, "rake_degrees")
}

func TestValidate_SlugPattern(t *testing.T) {
	v := validation.New()

	ok := testRequest{Name: "x", Slug: "ninja-300"}
	assert.NoError(t, v.Validate(ok))

	bad := testRequest{Name: "x", Slug: "Ninja_300"}
	assert.Error(t, v.Validate(bad))
}
