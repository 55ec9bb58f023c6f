package apierror

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

// Body is the decoded error envelope: {"error": true, "name": "...", "message": "..."}.
//
// Decoding is lenient. Error is set for any truthy JSON value (true, non-zero
// numbers, non-empty strings other than "0", non-empty arrays and objects).
// Name and Message hold string values as-is; other values are kept as
// compact JSON text.
type Body struct {
	Error   bool   `json:"error"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Body) UnmarshalJSON(data []byte) error {
	var raw struct {
		Error   json.RawMessage `json:"error"`
		Name    json.RawMessage `json:"name"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.Error = truthy(raw.Error)
	b.Name = text(raw.Name)
	b.Message = text(raw.Message)
	return nil
}

func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return false
	}

	switch v[0] {
	case 't':
		return true
	case 'f', 'n':
		return false
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return false
		}
		return s != "" && s != "0"
	case '[', '{':
		inner := bytes.TrimSpace(v[1 : len(v)-1])
		return len(inner) > 0
	default:
		f, err := strconv.ParseFloat(string(v), 64)
		return err == nil && f != 0
	}
}

func text(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}

	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}
