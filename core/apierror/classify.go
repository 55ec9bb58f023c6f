package apierror

import (
	"fmt"
	"net/http"
)

// Remote error codes sent in the "name" member of an error envelope.
const (
	CodeNoMatch        = "no_match"
	CodeAPIKeyInvalid  = "api_key_invalid"
	CodeHostNotAllowed = "host_not_allowed"
	CodeNoAPIKeyHeader = "no_api_key_header"

	// CodeAPIKeyExhausted shares its literal with CodeAPIKeyInvalid in the
	// service documentation, so the exhausted entry below can never match.
	CodeAPIKeyExhausted = "api_key_invalid"
)

// Error is a classified API error.
type Error struct {
	Kind       Kind
	StatusCode int
	// Code is the remote error name when classification came from the body.
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Unwrap returns the sentinel of the error kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Unwrap() error {
	return e.Kind.Sentinel()
}

// byName is ordered; the first matching code wins.
var byName = []struct {
	code string
	kind Kind
}{
	{CodeNoMatch, KindNotFound},
	{CodeAPIKeyInvalid, KindAPIKeyInvalid},
	{CodeAPIKeyExhausted, KindAPIKeyExhausted},
	{CodeHostNotAllowed, KindHostNotAllowed},
	{CodeNoAPIKeyHeader, KindMissingAPIKeyHeader},
}

var byStatus = map[int]Kind{
	http.StatusBadRequest:          KindBadRequest,
	http.StatusUnauthorized:        KindUnauthorized,
	http.StatusForbidden:           KindAccessDenied,
	http.StatusNotFound:            KindPageNotFound,
	http.StatusUnprocessableEntity: KindUnprocessableEntity,
	http.StatusInternalServerError: KindInternalServerError,
}

// Classify maps an HTTP status and an optional decoded error envelope to a
// classified error. A recognized error name in the body takes precedence over
// the status code; anything else falls back to KindUnknown. The result is
// never nil and depends only on its inputs.
func Classify(status int, body *Body) *Error {
	if body != nil && body.Error {
		for _, entry := range byName {
			if entry.code == body.Name {
				return &Error{
					Kind:       entry.kind,
					StatusCode: status,
					Code:       body.Name,
					Message:    entry.kind.Sentinel().Error(),
				}
			}
		}
	}

	kind, ok := byStatus[status]
	if !ok {
		return &Error{
			Kind:       KindUnknown,
			StatusCode: status,
			Message:    ErrUnknown.Error(),
		}
	}

	msg := kind.Sentinel().Error()
	if kind == KindUnprocessableEntity && body != nil && body.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, body.Message)
	}

	return &Error{
		Kind:       kind,
		StatusCode: status,
		Message:    msg,
	}
}
