package codec

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrDecode indicates a payload that is not well-formed for the codec.
var ErrDecode = errors.New("failed to decode response")

// maxSnippet bounds how much of a malformed payload is echoed in errors.
const maxSnippet = 256

// RawMessage is a raw encoded JSON value. It delays decoding of the
// payload so callers receive it byte-for-byte.
type RawMessage = json.RawMessage

// Codec decodes and encodes structured values.
type Codec interface {
	Decode(data []byte, v any) error
	Encode(v any) ([]byte, error)
	Valid(data []byte) bool
}

// JSON returns a Codec backed by goccy/go-json.
func JSON() Codec {
	return jsonCodec{}
}

type jsonCodec struct{}

// Decode unmarshals data into v. Failures wrap ErrDecode and quote the
// offending payload.
func (jsonCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: unable to JSON decode %q: %w", ErrDecode, snippet(data), err)
	}
	return nil
}

func (jsonCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Valid(data []byte) bool {
	return json.Valid(data)
}

func snippet(data []byte) string {
	if len(data) <= maxSnippet {
		return string(data)
	}
	return string(data[:maxSnippet]) + "..."
}
