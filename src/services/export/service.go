// Package export streams stored events back out as NDJSON.
//
// Enumeration is a single pass over the whole listing into one buffer. There is no
// pagination or continuation token, so very large namespaces are bounded only by memory.
package export

import (
	"bytes"
	"context"
	"crypto/subtle"
	"errors"

	"onboarding-logger/src/services/events"
	"onboarding-logger/src/store"
)

// ContentType of an export reply.
const ContentType = "application/x-ndjson"

type ExportService struct {
	store store.Store
}

func NewExportService(s store.Store) *ExportService {
	return &ExportService{store: s}
}

// ExportEvents lists keys under prefix (events/ when empty) and concatenates each stored
// value plus a newline, exactly as stored. Keys that disappear between List and Get are skipped.
func (s *ExportService) ExportEvents(ctx context.Context, prefix string) ([]byte, error) {
	if prefix == "" {
		prefix = events.KeyPrefix
	}

	keys, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	for _, key := range keys {
		value, err := s.store.Get(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(value) == 0 {
			continue
		}
		out.Write(value)
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

// Authorized reports whether header is exactly "Bearer <token>". The comparison is
// constant-time and case-sensitive.
func Authorized(header, token string) bool {
	want := "Bearer " + token
	return subtle.ConstantTimeCompare([]byte(header), []byte(want)) == 1
}
