// Package submission stores the final answers of a session, one record per session.
package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"onboarding-logger/src/models"
	"onboarding-logger/src/store"
	"onboarding-logger/src/utils"
)

// KeyPrefix is the namespace every submission key lives under.
const KeyPrefix = "submissions/"

// Key is deterministic per session, so a repeat submission overwrites the previous one.
func Key(sessionID string) string {
	return KeyPrefix + sessionID + ".json"
}

type SubmissionService struct {
	store store.Store
	now   func() time.Time
}

func NewSubmissionService(s store.Store) *SubmissionService {
	return &SubmissionService{store: s, now: time.Now}
}

// SubmitResponses validates body and writes the session's submission record (last write wins).
func (s *SubmissionService) SubmitResponses(ctx context.Context, body []byte) (string, error) {
	req, err := decodeRequest(body)
	if err != nil {
		return "", err
	}

	record := models.NewSubmission(req, s.now().UnixMilli())
	value, err := models.Encode(record)
	if err != nil {
		return "", fmt.Errorf("encode submission: %w", err)
	}

	key := Key(req.SessionID)
	if err := s.store.Put(ctx, key, value); err != nil {
		return "", err
	}
	return key, nil
}

// GetSubmission reads back a stored record.
func (s *SubmissionService) GetSubmission(ctx context.Context, sessionID string) (*models.Submission, error) {
	raw, err := s.store.Get(ctx, Key(sessionID))
	if err != nil {
		return nil, err
	}
	var sub models.Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", sessionID, err)
	}
	return &sub, nil
}

func decodeRequest(body []byte) (models.SubmissionRequest, error) {
	var req models.SubmissionRequest

	fields, err := utils.DecodeObject(body)
	if err != nil {
		return req, err
	}

	required := []struct {
		key string
		dst any
	}{
		{"session_id", &req.SessionID},
		{"responses", &req.Responses},
	}
	for _, f := range required {
		err := utils.DecodeField(fields, f.key, f.dst)
		if errors.Is(err, utils.ErrFieldMissing) {
			return req, fmt.Errorf("%w: %s is required", utils.ErrInvalidInput, f.key)
		}
		if err != nil {
			return req, err
		}
	}

	if err := utils.DecodeField(fields, "metadata", &req.Metadata); err != nil && !errors.Is(err, utils.ErrFieldMissing) {
		return req, err
	}

	if err := utils.Validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	return req, nil
}
