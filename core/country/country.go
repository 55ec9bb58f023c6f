package country

import (
	"fmt"
	"strings"
)

// Code is an ISO 3166-1 alpha-2 country code in canonical upper case.
type Code string

// Countries known to the ApiCheck service.
const (
	NL Code = "NL" // Netherlands
	BE Code = "BE" // Belgium
	LU Code = "LU" // Luxembourg
	FR Code = "FR" // France
)

// set is an immutable membership table keyed by country code.
type set map[Code]struct{}

func newSet(codes ...Code) set {
	s := make(set, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

func (s set) has(c Code) bool {
	_, ok := s[c]
	return ok
}

// Capability sets. Lookup is a strict subset of the countries with validation
// rules, and search additionally allows FR, which has no structured rules.
var (
	known      = newSet(NL, BE, LU, FR)
	lookup     = newSet(NL, LU)
	search     = newSet(NL, BE, LU, FR)
	validation = newSet(NL, BE, LU)
)

// Parse normalizes a caller-supplied country code and checks that the service
// knows it. Comparison is case-insensitive; surrounding whitespace is ignored.
func Parse(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !known.has(c) {
		return "", fmt.Errorf("%w: (%s)", ErrUnsupportedCountry, s)
	}
	return c, nil
}

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c)
}

// PathSegment returns the lower-case form used in request paths.
func (c Code) PathSegment() string {
	return strings.ToLower(string(c))
}

// SupportsLookup reports whether the lookup-by-postal-code operation exists for c.
func SupportsLookup(c Code) bool {
	return lookup.has(c)
}

// SupportsSearch reports whether the search operation exists for c.
func SupportsSearch(c Code) bool {
	return search.has(c)
}

// HasRules reports whether field validation rules are registered for c.
func HasRules(c Code) bool {
	return validation.has(c)
}
