package voice

import (
	"context"
	"strings"
)

// ScriptedAnswer is one prepared reply together with the time the candidate
// claims to have spent on it.
type ScriptedAnswer struct {
	Text    string
	Seconds float64
}

// Scripted replays prepared answers in order and records every announcement.
// It backs batch-mode interviews where no human is on the other end. Once
// the script runs out, Capture returns ("", 0) for the remaining questions.
type Scripted struct {
	answers    []ScriptedAnswer
	next       int
	transcript []string
}

// NewScripted returns a Scripted voice over the given answers.
func NewScripted(answers []ScriptedAnswer) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) Announce(text string) {
	if s == nil {
		return
	}
	s.transcript = append(s.transcript, text)
}

func (s *Scripted) Capture(ctx context.Context) (string, float64) {
	if s == nil || s.next >= len(s.answers) {
		return "", 0
	}
	if ctx != nil && ctx.Err() != nil {
		return "", 0
	}
	a := s.answers[s.next]
	s.next++
	return strings.TrimSpace(a.Text), a.Seconds
}

// Transcript returns everything announced so far, in order.
func (s *Scripted) Transcript() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.transcript))
	copy(out, s.transcript)
	return out
}
