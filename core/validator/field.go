package validator

import (
	"fmt"

	"github.com/dmitrymomot/apicheck/core/country"
)

// Value is the outcome of validating a query field. Present is false when
// an optional field was absent; Text is empty in that case.
type Value struct {
	Text    string
	Present bool
}

// labels are the human-readable field names used in messages.
var labels = map[string]string{
	country.FieldPostalCode:     "postalcode",
	country.FieldNumber:         "streetnumber",
	country.FieldNumberAddition: "streetnumber suffix",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// Field validates a present value against the rule registered for field in
// the given country and returns the normalized value. Fields without a rule
// pass through unchanged. Countries without validation rules fail with
// country.ErrUnsupportedCountry before the field is looked at.
func Field(code country.Code, field, raw string) (string, error) {
	rules, err := country.Rules(code)
	if err != nil {
		return "", err
	}

	rule, ok := rules.Rule(field)
	if !ok {
		return raw, nil
	}

	normalized, ok := rule.Apply(raw)
	if !ok {
		return "", &ValidationError{
			Field:          field,
			Country:        code,
			Value:          raw,
			Message:        fmt.Sprintf("invalid %s provided (%s) for country: (%s)", label(field), raw, code),
			TranslationKey: "validation." + field,
			TranslationValues: map[string]any{
				"field":   field,
				"country": code.String(),
				"value":   raw,
			},
		}
	}
	return normalized, nil
}

// Query validates the field named field in query. An absent required field
// is a ValidationError; an absent optional field yields a Value with Present
// set to false and no error.
func Query(code country.Code, query map[string]string, field string, required bool) (Value, error) {
	if _, err := country.Rules(code); err != nil {
		return Value{}, err
	}

	raw, ok := query[field]
	if !ok {
		if required {
			return Value{}, &ValidationError{
				Field:          field,
				Country:        code,
				Message:        fmt.Sprintf("the field '%s' is not present in the query for country: (%s)", field, code),
				TranslationKey: "validation.required",
				TranslationValues: map[string]any{
					"field":   field,
					"country": code.String(),
				},
			}
		}
		return Value{}, nil
	}

	normalized, err := Field(code, field, raw)
	if err != nil {
		return Value{}, err
	}
	return Value{Text: normalized, Present: true}, nil
}
