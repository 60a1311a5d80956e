package store

import (
	"context"
	"time"

	"github.com/stellarlinkco/interview-coach/internal/session"
)

// Store records completed interview sessions for later display. The default
// backend is an in-memory SQLite database, so nothing outlives the process
// unless a file path is configured explicitly.
type Store interface {
	SaveSession(ctx context.Context, rec *SessionRecord) error
	GetSession(ctx context.Context, id string) (*SessionRecord, error)
	ListSessions(ctx context.Context, filter ListFilter) ([]*SessionRecord, error)
	Close() error
}

// SessionRecord is one completed session.
type SessionRecord struct {
	ID              string
	Subject         string
	Level           string
	StartedAt       time.Time
	FinishedAt      time.Time
	TotalKnowledge  float64
	TotalConfidence float64
	FinalScore      float64
	Reports         []session.QuestionReport // JSON serialized
}

// ListFilter narrows session listings.
type ListFilter struct {
	Subject string
	Since   time.Time
	Until   time.Time
	Limit   int
}
