// Package events appends interaction events to the event namespace.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"onboarding-logger/src/models"
	"onboarding-logger/src/store"
	"onboarding-logger/src/utils"

	"github.com/google/uuid"
)

// KeyPrefix is the namespace every event key lives under.
const KeyPrefix = "events/"

// Key builds events/<session_id>/<received_at>-<random_id>.
func Key(sessionID string, receivedAt int64, randomID string) string {
	return fmt.Sprintf("%s%s/%d-%s", KeyPrefix, sessionID, receivedAt, randomID)
}

// EventService writes one new key per accepted event and never touches existing keys.
type EventService struct {
	store store.Store
	now   func() time.Time
	newID func() string
}

func NewEventService(s store.Store) *EventService {
	return &EventService{
		store: s,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// LogEvent validates body, shapes the record and stores it. It returns the key written.
// Invalid bodies fail with utils.ErrInvalidInput before the store is called.
func (s *EventService) LogEvent(ctx context.Context, body []byte) (string, error) {
	fields, err := utils.DecodeObject(body)
	if err != nil {
		return "", err
	}

	var env models.EventEnvelope
	if err := decodeEnvelope(fields, &env); err != nil {
		return "", err
	}

	receivedAt := s.now().UnixMilli()
	event := models.NewEvent(env, fields, receivedAt)

	value, err := models.Encode(event)
	if err != nil {
		return "", fmt.Errorf("encode event: %w", err)
	}

	key := Key(env.SessionID, receivedAt, s.newID())
	if err := s.store.Put(ctx, key, value); err != nil {
		return "", err
	}
	return key, nil
}

func decodeEnvelope(fields map[string]json.RawMessage, env *models.EventEnvelope) error {
	for key, dst := range map[string]*string{
		"session_id": &env.SessionID,
		"event_type": &env.EventType,
	} {
		err := utils.DecodeField(fields, key, dst)
		if errors.Is(err, utils.ErrFieldMissing) {
			return fmt.Errorf("%w: %s is required", utils.ErrInvalidInput, key)
		}
		if err != nil {
			return err
		}
	}
	if err := utils.Validate.Struct(env); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	return nil
}
