package apicheck

import (
	"bytes"
	"strconv"

	"github.com/dmitrymomot/apicheck/core/codec"
)

// Result is the "data" member of a successful response, kept exactly as
// received. Its shape is defined by the service.
type Result struct {
	data  codec.RawMessage
	codec codec.Codec
}

// Raw returns the payload bytes unchanged.
func (r *Result) Raw() []byte {
	return r.data
}

// IsNull reports whether the service returned "data": null.
func (r *Result) IsNull() bool {
	return bytes.Equal(bytes.TrimSpace(r.data), []byte("null"))
}

// Decode unmarshals the payload into v.
func (r *Result) Decode(v any) error {
	return r.codec.Decode(r.data, v)
}

// Address is the payload of a successful lookup.
type Address struct {
	Street         string  `json:"street"`
	Number         Number  `json:"number"`
	NumberAddition string  `json:"numberAddition"`
	PostalCode     string  `json:"postalcode"`
	City           string  `json:"city"`
	Municipality   Region  `json:"Municipality"`
	Province       Region  `json:"Province"`
	Country        Region  `json:"Country"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// Number is a house number. The service sends it either as a JSON number
// or as a string.
type Number string

// UnmarshalJSON accepts both JSON strings and numbers.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(data)
	return nil
}

// Region is a named administrative area such as a country or province.
type Region struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// UnmarshalJSON accepts either an object with name/code or a bare string name.
func (r *Region) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		r.Name = s
		return nil
	}
	type plain Region
	var p plain
	if err := codec.JSON().Decode(data, &p); err != nil {
		return err
	}
	*r = Region(p)
	return nil
}
