// Package emitter is the client half of the wire contract: it sends interaction events
// fire-and-forget and awaits the final submission.
package emitter

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// StatusError is returned by Submit when the service answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("submit rejected: %d %s", e.Code, e.Body)
}

// Client talks to one ingestion service.
type Client struct {
	baseURL string
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time

	inflight sync.WaitGroup
}

// NewClient creates a client for baseURL, e.g. https://logger.example.org. log may be nil.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		timeout: defaultTimeout,
		log:     log,
		now:     time.Now,
	}
}

// LogEvent sends one event in the background. Failures are dropped: losing an event
// must never disturb the form.
func (c *Client) LogEvent(sessionID, eventType string, data map[string]any) {
	payload := c.eventPayload(sessionID, eventType, data)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if _, _, err := c.post("/log-event", payload); err != nil {
			c.log.Debug("event dropped", zap.String("event_type", eventType), zap.Error(err))
		}
	}()
}

// eventPayload lays data over the fixed fields, so a caller-supplied session_id,
// event_type or client_time wins.
func (c *Client) eventPayload(sessionID, eventType string, data map[string]any) map[string]any {
	payload := make(map[string]any, len(data)+3)
	payload["session_id"] = sessionID
	payload["event_type"] = eventType
	payload["client_time"] = c.now().UnixMilli()
	for k, v := range data {
		payload[k] = v
	}
	return payload
}

// Submit sends the final answers and waits for the outcome, which the caller must handle.
func (c *Client) Submit(sessionID string, responses map[string]string, metadata map[string]any) error {
	payload := map[string]any{
		"session_id": sessionID,
		"responses":  responses,
		"metadata":   metadata,
	}

	code, body, err := c.post("/submit", payload)
	if err != nil {
		return err
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return &StatusError{Code: code, Body: string(body)}
	}
	return nil
}

// Wait blocks until every background event send has finished.
func (c *Client) Wait() {
	c.inflight.Wait()
}

func (c *Client) post(path string, payload any) (int, []byte, error) {
	agent := fiber.Post(c.baseURL + path).
		JSON(payload).
		Timeout(c.timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("post %s: %w", path, errors.Join(errs...))
	}
	return code, body, nil
}
