package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicheck/core/country"
	"github.com/dmitrymomot/apicheck/core/validator"
)

func TestField_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		code  country.Code
		field string
		raw   string
		want  string
	}{
		{name: "nl postal code uppercased", code: country.NL, field: country.FieldPostalCode, raw: "2513aa", want: "2513AA"},
		{name: "nl postal code with space", code: country.NL, field: country.FieldPostalCode, raw: "2513 ab", want: "2513 AB"},
		{name: "be postal code", code: country.BE, field: country.FieldPostalCode, raw: "5000", want: "5000"},
		{name: "lu postal code", code: country.LU, field: country.FieldPostalCode, raw: "1009", want: "1009"},
		{name: "number unchanged", code: country.NL, field: country.FieldNumber, raw: "12 a", want: "12 a"},
		{name: "suffix trimmed", code: country.LU, field: country.FieldNumberAddition, raw: "b ", want: "b"},
		{name: "free text passes through", code: country.BE, field: "city", raw: " Namur!! ", want: " Namur!! "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validator.Field(tt.code, tt.field, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		code  country.Code
		field string
		raw   string
	}{
		{name: "nl postal code without letters", code: country.NL, field: country.FieldPostalCode, raw: "2513"},
		{name: "be postal code with letters", code: country.BE, field: country.FieldPostalCode, raw: "5000AB"},
		{name: "number leading zero", code: country.LU, field: country.FieldNumber, raw: "01"},
		{name: "suffix too long", code: country.NL, field: country.FieldNumberAddition, raw: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := validator.Field(tt.code, tt.field, tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrValidation)
			assert.True(t, validator.IsValidationError(err))

			var ve *validator.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.code, ve.Country)
			assert.Equal(t, tt.raw, ve.Value)
			assert.Equal(t, "validation."+tt.field, ve.TranslationKey)
			assert.Contains(t, ve.Error(), "("+tt.raw+")")
			assert.Contains(t, ve.Error(), "("+tt.code.String()+")")
		})
	}
}

func TestField_UnsupportedCountry(t *testing.T) {
	t.Parallel()

	_, err := validator.Field(country.FR, country.FieldPostalCode, "75001")
	require.Error(t, err)
	assert.ErrorIs(t, err, country.ErrUnsupportedCountry)
	assert.False(t, validator.IsValidationError(err))
}

func TestQuery(t *testing.T) {
	t.Parallel()

	query := map[string]string{
		country.FieldPostalCode: "2513aa",
		country.FieldNumber:     "1",
	}

	t.Run("present field is normalized", func(t *testing.T) {
		t.Parallel()

		v, err := validator.Query(country.NL, query, country.FieldPostalCode, true)
		require.NoError(t, err)
		assert.Equal(t, validator.Value{Text: "2513AA", Present: true}, v)
	})

	t.Run("absent optional field", func(t *testing.T) {
		t.Parallel()

		v, err := validator.Query(country.NL, query, country.FieldNumberAddition, false)
		require.NoError(t, err)
		assert.False(t, v.Present)
		assert.Empty(t, v.Text)
	})

	t.Run("absent required field", func(t *testing.T) {
		t.Parallel()

		_, err := validator.Query(country.LU, query, country.FieldNumberAddition, true)
		require.Error(t, err)

		var ve *validator.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, country.FieldNumberAddition, ve.Field)
		assert.Equal(t, country.LU, ve.Country)
		assert.Equal(t, "validation.required", ve.TranslationKey)
		assert.Contains(t, ve.Error(), "numberAddition")
		assert.Contains(t, ve.Error(), "(LU)")
	})

	t.Run("unsupported country before field lookup", func(t *testing.T) {
		t.Parallel()

		_, err := validator.Query(country.Code("DE"), map[string]string{}, country.FieldPostalCode, true)
		assert.ErrorIs(t, err, country.ErrUnsupportedCountry)
		assert.False(t, validator.IsValidationError(err))
	})
}
