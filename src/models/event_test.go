package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarshalOrdersFixedFieldsFirst(t *testing.T) {
	body := map[string]json.RawMessage{
		"session_id": json.RawMessage(`"s1"`),
		"event_type": json.RawMessage(`"input_change"`),
		"id":         json.RawMessage(`"q2"`),
		"count":      json.RawMessage(`3`),
	}
	ev := NewEvent(EventEnvelope{SessionID: "s1", EventType: "input_change"}, body, 1700000000123)

	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Equal(t,
		`{"schema_version":"event_v1","received_at":1700000000123,"session_id":"s1","event_type":"input_change","count":3,"id":"q2"}`,
		string(raw))
}

func TestEventServerFieldsWin(t *testing.T) {
	body := map[string]json.RawMessage{
		"schema_version": json.RawMessage(`"event_v0"`),
		"received_at":    json.RawMessage(`1`),
	}
	ev := NewEvent(EventEnvelope{SessionID: "s1", EventType: "submit"}, body, 42)

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "event_v1", got["schema_version"])
	assert.Equal(t, float64(42), got["received_at"])
	assert.Len(t, got, 4)
}

func TestEventKeepsLargeNumbersVerbatim(t *testing.T) {
	body := map[string]json.RawMessage{"client_time": json.RawMessage(`9007199254740993`)}
	ev := NewEvent(EventEnvelope{SessionID: "s", EventType: "t"}, body, 1)

	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"client_time":9007199254740993`)
}

func TestNewSubmissionDefaultsMetadata(t *testing.T) {
	sub := NewSubmission(SubmissionRequest{
		SessionID: "s1",
		Responses: map[string]json.RawMessage{"q1": json.RawMessage(`"answer"`)},
	}, 7)

	raw, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"schema_version":"response_v1","received_at":7,"session_id":"s1","responses":{"q1":"answer"},"metadata":{}}`,
		string(raw))
}

func TestEncodeKeepsMarkupCharacters(t *testing.T) {
	body := map[string]json.RawMessage{"note": json.RawMessage(`"<b>&"`)}
	ev := NewEvent(EventEnvelope{SessionID: "s<1>", EventType: "t"}, body, 1)

	raw, err := Encode(ev)
	require.NoError(t, err)
	assert.Equal(t,
		`{"schema_version":"event_v1","received_at":1,"session_id":"s<1>","event_type":"t","note":"<b>&"}`,
		string(raw))
}
