package country

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Query field names with per-country rules.
const (
	FieldPostalCode     = "postalcode"
	FieldNumber         = "number"
	FieldNumberAddition = "numberAddition"
)

// Rule is a validation pattern paired with the normalization applied to values
// that match it.
type Rule struct {
	Pattern   *regexp.Regexp
	Normalize func(string) string
}

// Apply checks value against the pattern and returns the normalized value.
// The boolean is false when the value does not match.
func (r Rule) Apply(value string) (string, bool) {
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return "", false
	}
	if r.Normalize == nil {
		return value, true
	}
	return r.Normalize(value), true
}

// RuleSet holds the field rules of a single country. It is read-only.
type RuleSet struct {
	country Code
	rules   map[string]Rule
}

// Country returns the country the rules belong to.
func (s RuleSet) Country() Code {
	return s.country
}

// Rule returns the rule registered for field. Fields without a rule, such as
// free-text search fields, report false and pass through unvalidated.
func (s RuleSet) Rule(field string) (Rule, bool) {
	r, ok := s.rules[field]
	return r, ok
}

var (
	postalCodeNL = regexp.MustCompile(`^[1-9][0-9]{3}\s*[a-zA-Z]{2}$`)
	postalCode4  = regexp.MustCompile(`^[1-9][0-9]{3}\s*$`)
	streetNumber = regexp.MustCompile(`^([1-9][0-9]{0,4})\s?(?:[a-z])?\s?(?:[a-z0-9]{1,4})?$`)
	numberSuffix = regexp.MustCompile(`(?i)^(?:[a-z])?\s?(?:[a-z0-9]{1,4})?$`)
)

// Normalizers are stateless wrappers: a cases.Caser must not be shared
// between goroutines, so one is created per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func newRuleSet(c Code, postal *regexp.Regexp) RuleSet {
	return RuleSet{
		country: c,
		rules: map[string]Rule{
			FieldPostalCode:     {Pattern: postal, Normalize: upper},
			FieldNumber:         {Pattern: streetNumber},
			FieldNumberAddition: {Pattern: numberSuffix, Normalize: trim},
		},
	}
}

// ruleSets is built once at init and never mutated.
var ruleSets = map[Code]RuleSet{
	NL: newRuleSet(NL, postalCodeNL),
	BE: newRuleSet(BE, postalCode4),
	LU: newRuleSet(LU, postalCode4),
}

// Rules returns the rule set for c. Countries without validation rules fail
// with ErrUnsupportedCountry before any field is looked at.
func Rules(c Code) (RuleSet, error) {
	if !HasRules(c) {
		return RuleSet{}, fmt.Errorf("%w: no validation rules for country (%s)", ErrUnsupportedCountry, c)
	}
	return ruleSets[c], nil
}
