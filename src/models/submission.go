package models

import "encoding/json"

// SubmissionSchemaVersion tags every stored submission record.
const SubmissionSchemaVersion = "response_v1"

// SubmissionRequest is the /submit body. Responses must be present (an empty object is fine).
type SubmissionRequest struct {
	SessionID string                     `json:"session_id" validate:"required" example:"4f0c2a1e-9d7b-4c41-a0a5-2f7c3e8b6d10"`
	Responses map[string]json.RawMessage `json:"responses" validate:"required" swaggertype:"object,string"`
	Metadata  map[string]json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// Submission is the single final-answers record of a session.
type Submission struct {
	SchemaVersion string                     `json:"schema_version"`
	ReceivedAt    int64                      `json:"received_at"`
	SessionID     string                     `json:"session_id"`
	Responses     map[string]json.RawMessage `json:"responses"`
	Metadata      map[string]json.RawMessage `json:"metadata"`
}

// NewSubmission shapes a record; a missing metadata object becomes {}.
func NewSubmission(req SubmissionRequest, receivedAt int64) Submission {
	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]json.RawMessage{}
	}
	return Submission{
		SchemaVersion: SubmissionSchemaVersion,
		ReceivedAt:    receivedAt,
		SessionID:     req.SessionID,
		Responses:     req.Responses,
		Metadata:      metadata,
	}
}
