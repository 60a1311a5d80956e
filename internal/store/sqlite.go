package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/stellarlinkco/interview-coach/internal/session"
)

const defaultListLimit = 50

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	insertStmt *sql.Stmt
	getStmt    *sql.Stmt
}

// NewSQLiteStore opens or creates a SQLite store at the given path.
// ":memory:" keeps all history in process memory.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store: empty sqlite path")
	}
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create sqlite dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection to :memory: opens a distinct database;
		// a single connection keeps the history in one place.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping sqlite: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	st := &SQLiteStore{db: db}
	if err := st.prepareStatements(); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode = WAL`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			subject TEXT NOT NULL,
			level TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL,
			total_knowledge REAL NOT NULL,
			total_confidence REAL NOT NULL,
			final_score REAL NOT NULL,
			reports BLOB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_subject ON sessions(subject)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_finished_at ON sessions(finished_at)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("store: init schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertStmt, err = s.db.Prepare(`INSERT INTO sessions
		(id, subject, level, started_at, finished_at, total_knowledge, total_confidence, final_score, reports)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}

	s.getStmt, err = s.db.Prepare(`SELECT id, subject, level, started_at, finished_at,
		total_knowledge, total_confidence, final_score, reports
		FROM sessions WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("store: prepare get: %w", err)
	}

	return nil
}

// SaveSession stores one completed session.
func (s *SQLiteStore) SaveSession(ctx context.Context, rec *SessionRecord) error {
	if s == nil || s.db == nil {
		return errors.New("store: closed")
	}
	if rec == nil {
		return errors.New("store: nil record")
	}
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("store: record without id")
	}

	reports, err := json.Marshal(rec.Reports)
	if err != nil {
		return fmt.Errorf("store: marshal reports: %w", err)
	}

	_, err = s.insertStmt.ExecContext(ctx,
		rec.ID, rec.Subject, rec.Level,
		rec.StartedAt.Unix(), rec.FinishedAt.Unix(),
		rec.TotalKnowledge, rec.TotalConfidence, rec.FinalScore,
		reports,
	)
	if err != nil {
		return fmt.Errorf("store: save session: %w", err)
	}
	return nil
}

// ErrNotFound reports a missing session id.
var ErrNotFound = errors.New("store: session not found")

// GetSession loads one session by id.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*SessionRecord, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store: closed")
	}

	row := s.getStmt.QueryRowContext(ctx, id)
	rec, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get session: %w", err)
	}
	return rec, nil
}

// ListSessions lists sessions, newest first.
func (s *SQLiteStore) ListSessions(ctx context.Context, filter ListFilter) ([]*SessionRecord, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store: closed")
	}

	query := `SELECT id, subject, level, started_at, finished_at,
		total_knowledge, total_confidence, final_score, reports
		FROM sessions WHERE 1=1`
	args := make([]any, 0, 4)

	if subject := strings.TrimSpace(filter.Subject); subject != "" {
		query += ` AND subject = ?`
		args = append(args, subject)
	}
	if !filter.Since.IsZero() {
		query += ` AND finished_at >= ?`
		args = append(args, filter.Since.Unix())
	}
	if !filter.Until.IsZero() {
		query += ` AND finished_at <= ?`
		args = append(args, filter.Until.Unix())
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query += ` ORDER BY finished_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list sessions: %w", err)
	}
	defer rows.Close()

	var out []*SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("store: scan session: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list sessions: %w", err)
	}
	return out, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if s.insertStmt != nil {
		_ = s.insertStmt.Close()
	}
	if s.getStmt != nil {
		_ = s.getStmt.Close()
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func scanSession(scan func(...any) error) (*SessionRecord, error) {
	var rec SessionRecord
	var startedAt, finishedAt int64
	var reports []byte

	if err := scan(
		&rec.ID, &rec.Subject, &rec.Level, &startedAt, &finishedAt,
		&rec.TotalKnowledge, &rec.TotalConfidence, &rec.FinalScore, &reports,
	); err != nil {
		return nil, err
	}

	rec.StartedAt = time.Unix(startedAt, 0).UTC()
	rec.FinishedAt = time.Unix(finishedAt, 0).UTC()

	if len(reports) > 0 {
		var parsed []session.QuestionReport
		if err := json.Unmarshal(reports, &parsed); err != nil {
			return nil, fmt.Errorf("unmarshal reports: %w", err)
		}
		rec.Reports = parsed
	}
	return &rec, nil
}
