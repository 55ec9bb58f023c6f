package country

import "errors"

// ErrUnsupportedCountry indicates the country code is unknown or the requested
// capability is not offered for it.
var ErrUnsupportedCountry = errors.New("unsupported country")
