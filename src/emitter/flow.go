package emitter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by a Flow.
const (
	EventSessionStart     = "session_start"
	EventConsentGiven     = "consent_given"
	EventQuestionShown    = "question_shown"
	EventFirstInteraction = "first_interaction"
	EventInputChange      = "input_change"
	EventNavigationNext   = "navigation_next"
	EventNavigationBack   = "navigation_back"
	EventIdleGap          = "idle_gap"
	EventSubmit           = "submit"
)

// ErrFlowFinished is returned when navigating a flow that has already submitted.
var ErrFlowFinished = errors.New("flow already submitted")

// Question is one entry of questions.json.
type Question struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// LoadQuestions reads a JSON array of questions.
func LoadQuestions(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return qs, nil
}

// Flow is the state of one form-completion attempt. It belongs to a single UI loop
// and is not safe for concurrent use.
type Flow struct {
	client    *Client
	SessionID string

	started   time.Time
	questions []Question
	current   int
	responses map[string]string
	answer    string

	inputCount    int
	hasInteracted bool
	finished      bool
}

// NewFlow starts a session with a fresh id and emits session_start.
func NewFlow(client *Client, questions []Question) *Flow {
	f := &Flow{
		client:    client,
		SessionID: uuid.NewString(),
		started:   client.now(),
		questions: questions,
		responses: make(map[string]string, len(questions)),
	}
	f.emit(EventSessionStart, nil)
	return f
}

func (f *Flow) emit(eventType string, data map[string]any) {
	f.client.LogEvent(f.SessionID, eventType, data)
}

func (f *Flow) ConsentGiven() {
	f.emit(EventConsentGiven, nil)
}

// Current returns the question on screen.
func (f *Flow) Current() (Question, bool) {
	if f.finished || f.current >= len(f.questions) {
		return Question{}, false
	}
	return f.questions[f.current], true
}

// Responses returns a copy of the answers recorded so far.
func (f *Flow) Responses() map[string]string {
	out := make(map[string]string, len(f.responses))
	for k, v := range f.responses {
		out[k] = v
	}
	return out
}

// ShowQuestion puts the current question on screen, restoring any earlier answer.
func (f *Flow) ShowQuestion() {
	q, ok := f.Current()
	if !ok {
		return
	}
	f.answer = f.responses[q.ID]
	f.inputCount = 0
	f.hasInteracted = false
	f.emit(EventQuestionShown, map[string]any{"id": q.ID})
}

// Input records an edit of the answer field.
func (f *Flow) Input(value string) {
	q, ok := f.Current()
	if !ok {
		return
	}
	f.answer = value
	f.inputCount++

	if !f.hasInteracted {
		f.hasInteracted = true
		f.emit(EventFirstInteraction, map[string]any{"id": q.ID})
	}
	f.emit(EventInputChange, map[string]any{"id": q.ID, "count": f.inputCount})
}

// IdleGap reports a pause in interaction on the current question.
func (f *Flow) IdleGap(d time.Duration) {
	q, ok := f.Current()
	if !ok {
		return
	}
	f.emit(EventIdleGap, map[string]any{"id": q.ID, "gap_ms": d.Milliseconds()})
}

// Back keeps the current answer and returns to the previous question.
func (f *Flow) Back() error {
	q, ok := f.Current()
	if !ok {
		return ErrFlowFinished
	}
	if f.current == 0 {
		return nil
	}
	f.responses[q.ID] = f.answer
	f.emit(EventNavigationBack, map[string]any{"id": q.ID})

	f.current--
	f.ShowQuestion()
	return nil
}

// Next records the answer and advances. After the last question it emits submit and
// sends the responses, returning done=true and whatever error the submission hit.
func (f *Flow) Next() (done bool, err error) {
	q, ok := f.Current()
	if !ok {
		return true, ErrFlowFinished
	}
	f.responses[q.ID] = f.answer
	f.emit(EventNavigationNext, map[string]any{"id": q.ID})

	f.current++
	if f.current < len(f.questions) {
		f.ShowQuestion()
		return false, nil
	}

	f.finished = true
	f.emit(EventSubmit, nil)
	metadata := map[string]any{
		"total_time_ms": f.client.now().Sub(f.started).Milliseconds(),
	}
	return true, f.client.Submit(f.SessionID, f.Responses(), metadata)
}
