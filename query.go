package apicheck

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/apicheck/core/country"
)

// Query holds the request fields. A missing key is an absent field.
type Query map[string]string

// Query field names understood by the lookup operation.
const (
	FieldPostalCode     = country.FieldPostalCode
	FieldNumber         = country.FieldNumber
	FieldNumberAddition = country.FieldNumberAddition
)

// NewQuery returns an empty Query ready for Set.
func NewQuery() Query {
	return Query{}
}

// Set stores value under name, formatting non-string values with fmt.Sprint,
// and returns q for chaining. A nil value removes the field. Like any map,
// q must be non-nil; start chains from NewQuery or a literal.
func (q Query) Set(name string, value any) Query {
	switch v := value.(type) {
	case nil:
		delete(q, name)
	case string:
		q[name] = v
	default:
		q[name] = fmt.Sprint(v)
	}
	return q
}

// SearchType selects the search endpoint.
type SearchType string

// Search types offered by the service.
const (
	SearchCity       SearchType = "city"
	SearchStreet     SearchType = "street"
	SearchPostalCode SearchType = "postalcode"
	SearchAddress    SearchType = "address"
)

var searchTypes = map[SearchType]struct{}{
	SearchCity:       {},
	SearchStreet:     {},
	SearchPostalCode: {},
	SearchAddress:    {},
}

// ParseSearchType normalizes s and checks it against the supported types.
func ParseSearchType(s string) (SearchType, error) {
	t := SearchType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := searchTypes[t]; !ok {
		return "", fmt.Errorf("%w: this type does not exist: (%s)", ErrUnsupportedType, s)
	}
	return t, nil
}
