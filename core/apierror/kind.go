package apierror

import "errors"

// Kind is the category of a classified API error.
type Kind int

// Error kinds. KindUnknown is the zero value.
const (
	KindUnknown Kind = iota
	KindNotFound
	KindAPIKeyInvalid
	KindAPIKeyExhausted
	KindHostNotAllowed
	KindMissingAPIKeyHeader
	KindBadRequest
	KindUnauthorized
	KindAccessDenied
	KindPageNotFound
	KindUnprocessableEntity
	KindInternalServerError
)

var kindNames = [...]string{
	KindUnknown:             "unknown",
	KindNotFound:            "not_found",
	KindAPIKeyInvalid:       "api_key_invalid",
	KindAPIKeyExhausted:     "api_key_exhausted",
	KindHostNotAllowed:      "host_not_allowed",
	KindMissingAPIKeyHeader: "missing_api_key_header",
	KindBadRequest:          "bad_request",
	KindUnauthorized:        "unauthorized",
	KindAccessDenied:        "access_denied",
	KindPageNotFound:        "page_not_found",
	KindUnprocessableEntity: "unprocessable_entity",
	KindInternalServerError: "internal_server_error",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Sentinel errors, one per kind. Every *Error unwraps to the sentinel of its kind.
var (
	ErrUnknown             = errors.New("unexpected API error")
	ErrNotFound            = errors.New("no matches found")
	ErrAPIKeyInvalid       = errors.New("the supplied API key is invalid or disabled")
	ErrAPIKeyExhausted     = errors.New("the supplied API key is exhausted, check your account balance")
	ErrHostNotAllowed      = errors.New("this host is not allowed to use ApiCheck")
	ErrMissingAPIKeyHeader = errors.New("no X-API-KEY header found")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAccessDenied        = errors.New("access is denied")
	ErrPageNotFound        = errors.New("this page does not exist")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
)

var sentinels = [...]error{
	KindUnknown:             ErrUnknown,
	KindNotFound:            ErrNotFound,
	KindAPIKeyInvalid:       ErrAPIKeyInvalid,
	KindAPIKeyExhausted:     ErrAPIKeyExhausted,
	KindHostNotAllowed:      ErrHostNotAllowed,
	KindMissingAPIKeyHeader: ErrMissingAPIKeyHeader,
	KindBadRequest:          ErrBadRequest,
	KindUnauthorized:        ErrUnauthorized,
	KindAccessDenied:        ErrAccessDenied,
	KindPageNotFound:        ErrPageNotFound,
	KindUnprocessableEntity: ErrUnprocessableEntity,
	KindInternalServerError: ErrInternalServerError,
}

// Sentinel returns the sentinel error for k.
func (k Kind) Sentinel() error {
	if k < 0 || int(k) >= len(sentinels) {
		return ErrUnknown
	}
	return sentinels[k]
}
