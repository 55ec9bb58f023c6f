package apicheck

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/apicheck/core/apierror"
	"github.com/dmitrymomot/apicheck/core/codec"
	"github.com/dmitrymomot/apicheck/core/country"
	"github.com/dmitrymomot/apicheck/core/transport"
	"github.com/dmitrymomot/apicheck/core/validator"
)

// Configuration errors.
var (
	ErrConfiguration = errors.New("invalid client configuration")
	ErrMissingAPIKey = fmt.Errorf("%w: no API key has been set", ErrConfiguration)
)

// ErrUnsupportedType indicates a search type the service does not offer.
var ErrUnsupportedType = errors.New("unsupported search type")

// Errors raised by the building blocks, re-exported so callers only need
// this package for errors.Is checks.
var (
	ErrUnsupportedCountry = country.ErrUnsupportedCountry
	ErrValidation         = validator.ErrValidation
	ErrTransport          = transport.ErrTransport
	ErrDecode             = codec.ErrDecode
)

// Classified API errors, one per kind. Use errors.As with *APIError for
// the status code and remote error name.
var (
	ErrNotFound            = apierror.ErrNotFound
	ErrAPIKeyInvalid       = apierror.ErrAPIKeyInvalid
	ErrAPIKeyExhausted     = apierror.ErrAPIKeyExhausted
	ErrHostNotAllowed      = apierror.ErrHostNotAllowed
	ErrMissingAPIKeyHeader = apierror.ErrMissingAPIKeyHeader
	ErrBadRequest          = apierror.ErrBadRequest
	ErrUnauthorized        = apierror.ErrUnauthorized
	ErrAccessDenied        = apierror.ErrAccessDenied
	ErrPageNotFound        = apierror.ErrPageNotFound
	ErrUnprocessableEntity = apierror.ErrUnprocessableEntity
	ErrInternalServerError = apierror.ErrInternalServerError
	ErrUnknown             = apierror.ErrUnknown
)

// APIError is a classified error returned by the remote service.
type APIError = apierror.Error

// ValidationError describes a query field that failed validation.
type ValidationError = validator.ValidationError
