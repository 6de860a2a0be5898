package models

import (
	"bytes"
	"encoding/json"
)

// Encode renders v as compact JSON without HTML escaping, so client strings such as
// "<b>&" are stored as sent.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
