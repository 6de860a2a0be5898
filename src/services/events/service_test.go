package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"onboarding-logger/src/store"
	"onboarding-logger/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestLogEventStoresRecord(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewEventService(mem)
	svc.now = fixedClock(1700000000000)
	svc.newID = func() string { return "abc" }

	key, err := svc.LogEvent(context.Background(), []byte(`{"session_id":"s1","event_type":"session_start"}`))
	require.NoError(t, err)
	assert.Equal(t, "events/s1/1700000000000-abc", key)

	raw, err := mem.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t,
		`{"schema_version":"event_v1","received_at":1700000000000,"session_id":"s1","event_type":"session_start"}`,
		string(raw))
}

func TestLogEventMergesExtraFields(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewEventService(mem)
	svc.now = fixedClock(5)

	key, err := svc.LogEvent(context.Background(),
		[]byte(`{"session_id":"s1","event_type":"input_change","id":"q1","count":4,"client_time":1699999999000,"received_at":1,"schema_version":"x"}`))
	require.NoError(t, err)

	raw, err := mem.Get(context.Background(), key)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "event_v1", got["schema_version"])
	assert.Equal(t, float64(5), got["received_at"])
	assert.Equal(t, "q1", got["id"])
	assert.Equal(t, float64(4), got["count"])
	assert.Equal(t, float64(1699999999000), got["client_time"])
}

func TestLogEventRejectsInvalidBodies(t *testing.T) {
	bodies := []string{
		`{"event_type":"session_start"}`,
		`{"session_id":"s1"}`,
		`{"session_id":"","event_type":"session_start"}`,
		`{"session_id":"s1","event_type":""}`,
		`{"session_id":null,"event_type":"x"}`,
		`{"session_id":7,"event_type":"x"}`,
		`{"Session_Id":"s1","Event_Type":"x"}`,
		`not json`,
		`[]`,
		`null`,
		``,
	}

	for _, body := range bodies {
		mem := store.NewMemoryStore()
		svc := NewEventService(mem)

		_, err := svc.LogEvent(context.Background(), []byte(body))
		assert.ErrorIs(t, err, utils.ErrInvalidInput, "body %q", body)

		keys, err := mem.List(context.Background(), KeyPrefix)
		require.NoError(t, err)
		assert.Empty(t, keys, "body %q must not write", body)
	}
}

type failingStore struct{ store.Store }

func (failingStore) Put(context.Context, string, []byte) error {
	return fmt.Errorf("redis set: connection refused")
}

func TestLogEventPropagatesStoreFailure(t *testing.T) {
	svc := NewEventService(failingStore{})

	_, err := svc.LogEvent(context.Background(), []byte(`{"session_id":"s1","event_type":"x"}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrInvalidInput)
}

func TestLogEventConcurrentSameMillisecondNeverCollides(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewEventService(mem)
	svc.now = fixedClock(1700000000000)

	const n = 64
	var wg sync.WaitGroup
	keys := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"session_id":"s1","event_type":"input_change","count":%d}`, i)
			key, err := svc.LogEvent(context.Background(), []byte(body))
			assert.NoError(t, err)
			keys <- key
		}(i)
	}
	wg.Wait()
	close(keys)

	seen := make(map[string]bool)
	for k := range keys {
		assert.True(t, strings.HasPrefix(k, "events/s1/1700000000000-"))
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
	assert.Equal(t, n, mem.Len())
}
