package utils

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate is shared by every request envelope.
var Validate = validator.New()

// ErrFieldMissing is returned by DecodeField when the key is absent from the object.
var ErrFieldMissing = errors.New("field missing")

// DecodeObject parses body as a JSON object and keeps each member as raw JSON.
// Arrays, scalars and null are rejected.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrInvalidInput)
	}
	return fields, nil
}

// DecodeField unmarshals the exact key (no case folding) into dst.
func DecodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return ErrFieldMissing
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
	}
	return nil
}
