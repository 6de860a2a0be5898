package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// EventSchemaVersion tags every stored event record.
const EventSchemaVersion = "event_v1"

// EventEnvelope holds the two fields every /log-event body must carry.
type EventEnvelope struct {
	SessionID string `json:"session_id" validate:"required" example:"4f0c2a1e-9d7b-4c41-a0a5-2f7c3e8b6d10"`
	EventType string `json:"event_type" validate:"required" example:"question_shown"`
}

// Event is one immutable interaction record. Extra carries every other client
// field as the raw JSON it arrived as.
type Event struct {
	SchemaVersion string
	ReceivedAt    int64
	SessionID     string
	EventType     string
	Extra         map[string]json.RawMessage
}

// Fields owned by the record itself; a client copy of any of these never reaches Extra.
var eventFixedFields = map[string]struct{}{
	"schema_version": {},
	"received_at":    {},
	"session_id":     {},
	"event_type":     {},
}

// NewEvent merges the client body into a record. Server-assigned fields win on collision.
func NewEvent(env EventEnvelope, body map[string]json.RawMessage, receivedAt int64) Event {
	extra := make(map[string]json.RawMessage, len(body))
	for k, v := range body {
		if _, fixed := eventFixedFields[k]; fixed {
			continue
		}
		extra[k] = v
	}
	return Event{
		SchemaVersion: EventSchemaVersion,
		ReceivedAt:    receivedAt,
		SessionID:     env.SessionID,
		EventType:     env.EventType,
		Extra:         extra,
	}
}

// MarshalJSON writes the fixed fields first, then extras in key order.
func (e Event) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := Encode(key)
		if err != nil {
			return err
		}
		v, err := Encode(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := write("schema_version", e.SchemaVersion); err != nil {
		return nil, err
	}
	if err := write("received_at", e.ReceivedAt); err != nil {
		return nil, err
	}
	if err := write("session_id", e.SessionID); err != nil {
		return nil, err
	}
	if err := write("event_type", e.EventType); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(e.Extra))
	for k := range e.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, e.Extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
