// Package app wires configuration into the question, scoring, and session
// collaborators shared by the CLI and the API server.
package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/stellarlinkco/interview-coach/internal/config"
	"github.com/stellarlinkco/interview-coach/internal/fetcher"
	"github.com/stellarlinkco/interview-coach/internal/generator"
	"github.com/stellarlinkco/interview-coach/internal/llm"
	"github.com/stellarlinkco/interview-coach/internal/question"
	"github.com/stellarlinkco/interview-coach/internal/scorer"
	"github.com/stellarlinkco/interview-coach/internal/session"
	"github.com/stellarlinkco/interview-coach/internal/store"
)

// BuildBank assembles the question bank and its fallback source chain from
// configuration. The chain for uncurated subjects is either the web fetcher
// alone, or an LLM generator with the fetcher as its backstop when
// fallback_source is "llm" and a provider is configured.
func BuildBank(cfg *config.Config) (*question.Bank, error) {
	if cfg == nil {
		return nil, errors.New("app: missing config")
	}

	src, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}

	if path := strings.TrimSpace(cfg.Questions.BankPath); path != "" {
		return question.LoadBank(path, src)
	}
	return question.DefaultBank(src), nil
}

func buildSource(cfg *config.Config) (question.Source, error) {
	var fetchOpts []fetcher.Option
	if v := strings.TrimSpace(cfg.Questions.FetchBaseURL); v != "" {
		fetchOpts = append(fetchOpts, fetcher.WithBaseURL(v))
	}
	if v := strings.TrimSpace(cfg.Questions.FetchUserAgent); v != "" {
		fetchOpts = append(fetchOpts, fetcher.WithUserAgent(v))
	}
	if cfg.Questions.FetchTimeout > 0 {
		fetchOpts = append(fetchOpts, fetcher.WithTimeout(cfg.Questions.FetchTimeout))
	}
	web := fetcher.New(fetchOpts...)

	mode := strings.ToLower(strings.TrimSpace(cfg.Questions.FallbackSource))
	switch mode {
	case "", "web":
		return web, nil
	case "llm":
		provider, err := llm.DefaultProviderFromConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("app: fallback_source llm: %w", err)
		}
		return &generator.Generator{Provider: provider, Fallback: web}, nil
	default:
		return nil, fmt.Errorf("app: unsupported fallback_source %q (expected web or llm)", mode)
	}
}

// NewScorer builds the scorer from configuration overrides.
func NewScorer(cfg *config.Config) *scorer.Scorer {
	var sc scorer.Config
	if cfg != nil {
		sc.HesitationMarkers = cfg.Scoring.HesitationMarkers
	}
	return scorer.New(sc)
}

// RunSession selects questions for the subject, conducts one full session
// over the given voice, and persists the outcome. The returned record is the
// saved row including its generated ID.
func RunSession(ctx context.Context, st store.Store, bank *question.Bank, sc *scorer.Scorer, subject, level string, voice session.Voice) (*store.SessionRecord, error) {
	if st == nil {
		return nil, errors.New("app: missing store")
	}
	if bank == nil {
		return nil, errors.New("app: missing question bank")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	questions := bank.Select(ctx, subject)

	sess, err := session.New(session.Config{
		Subject:   subject,
		Level:     level,
		Questions: questions,
		Voice:     voice,
		Scorer:    sc,
	})
	if err != nil {
		return nil, err
	}

	startedAt := time.Now().UTC()
	result, err := sess.Run(ctx)
	if err != nil {
		return nil, err
	}
	finishedAt := time.Now().UTC()

	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("app: generate session id: %w", err)
	}

	rec := &store.SessionRecord{
		ID:              id,
		Subject:         result.Subject,
		Level:           result.Level,
		StartedAt:       startedAt,
		FinishedAt:      finishedAt,
		TotalKnowledge:  result.TotalKnowledge,
		TotalConfidence: result.TotalConfidence,
		FinalScore:      result.FinalScore,
		Reports:         result.Reports,
	}
	if err := st.SaveSession(ctx, rec); err != nil {
		return nil, fmt.Errorf("app: save session: %w", err)
	}
	return rec, nil
}

func newSessionID() (string, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return "", err
	}
	return fmt.Sprintf("sess_%s_%x", time.Now().UTC().Format("20060102T150405Z"), buf), nil
}
