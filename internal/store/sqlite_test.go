package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stellarlinkco/interview-coach/internal/config"
	"github.com/stellarlinkco/interview-coach/internal/scorer"
	"github.com/stellarlinkco/interview-coach/internal/session"
)

func newMemStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleRecord(id string, finished time.Time) *SessionRecord {
	return &SessionRecord{
		ID:              id,
		Subject:         "python developer",
		Level:           "fresher",
		StartedAt:       finished.Add(-5 * time.Minute),
		FinishedAt:      finished,
		TotalKnowledge:  12.4,
		TotalConfidence: 18,
		FinalScore:      12.4*0.7 + 18*0.3,
		Reports: []session.QuestionReport{
			{
				Question:   "Q1",
				Answer:     "has x",
				Verdict:    scorer.VerdictStrong,
				Feedback:   "Good answer.",
				Knowledge:  0.4,
				Confidence: 10,
				Seconds:    4,
			},
		},
	}
}

func TestSaveAndGetSession(t *testing.T) {
	t.Parallel()

	st := newMemStore(t)
	ctx := context.Background()

	want := sampleRecord("s1", time.Now().UTC().Truncate(time.Second))
	if err := st.SaveSession(ctx, want); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := st.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Subject != want.Subject || got.Level != want.Level {
		t.Fatalf("got %q/%q", got.Subject, got.Level)
	}
	if got.FinalScore != want.FinalScore {
		t.Fatalf("final score %v, want %v", got.FinalScore, want.FinalScore)
	}
	if !got.FinishedAt.Equal(want.FinishedAt) {
		t.Fatalf("finished at %v, want %v", got.FinishedAt, want.FinishedAt)
	}
	if len(got.Reports) != 1 || got.Reports[0].Verdict != scorer.VerdictStrong {
		t.Fatalf("reports %+v", got.Reports)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	t.Parallel()

	st := newMemStore(t)
	if _, err := st.GetSession(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveSessionValidation(t *testing.T) {
	t.Parallel()

	st := newMemStore(t)
	ctx := context.Background()

	if err := st.SaveSession(ctx, nil); err == nil {
		t.Fatalf("nil record: expected error")
	}
	if err := st.SaveSession(ctx, &SessionRecord{}); err == nil {
		t.Fatalf("record without id: expected error")
	}

	rec := sampleRecord("dup", time.Now())
	if err := st.SaveSession(ctx, rec); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := st.SaveSession(ctx, rec); err == nil {
		t.Fatalf("duplicate id: expected error")
	}
}

func TestListSessions(t *testing.T) {
	t.Parallel()

	st := newMemStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 5; i++ {
		rec := sampleRecord(fmt.Sprintf("s%d", i), base.Add(time.Duration(i)*time.Minute))
		if i == 4 {
			rec.Subject = "dsa"
		}
		if err := st.SaveSession(ctx, rec); err != nil {
			t.Fatalf("SaveSession(%d): %v", i, err)
		}
	}

	all, err := st.ListSessions(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d sessions, want 5", len(all))
	}
	// Newest first.
	if all[0].ID != "s4" || all[4].ID != "s0" {
		t.Fatalf("order: first=%s last=%s", all[0].ID, all[4].ID)
	}

	bySubject, err := st.ListSessions(ctx, ListFilter{Subject: "dsa"})
	if err != nil {
		t.Fatalf("ListSessions(subject): %v", err)
	}
	if len(bySubject) != 1 || bySubject[0].ID != "s4" {
		t.Fatalf("subject filter: %+v", bySubject)
	}

	since, err := st.ListSessions(ctx, ListFilter{Since: base.Add(3 * time.Minute)})
	if err != nil {
		t.Fatalf("ListSessions(since): %v", err)
	}
	if len(since) != 2 {
		t.Fatalf("since filter: got %d, want 2", len(since))
	}

	limited, err := st.ListSessions(ctx, ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("ListSessions(limit): %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "s4" {
		t.Fatalf("limit filter: %+v", limited)
	}
}

func TestOpenFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	st, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open(default): %v", err)
	}
	_ = st.Close()

	cfg.Storage.Type = "postgres"
	if _, err := Open(cfg); err == nil {
		t.Fatalf("unsupported type: expected error")
	}

	cfg.Storage.Type = "sqlite"
	cfg.Storage.Path = t.TempDir() + "/history.db"
	st, err = Open(cfg)
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	_ = st.Close()
}
