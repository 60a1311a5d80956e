package session

import (
	"context"

	"github.com/stellarlinkco/interview-coach/internal/scorer"
)

// Voice is the audio collaborator boundary. Implementations must be
// infallible from the session's point of view: Announce is best-effort and
// swallows delivery problems, and Capture resolves any acquisition failure
// to ("", 0) so scoring always has well-formed input.
type Voice interface {
	Announce(text string)
	Capture(ctx context.Context) (text string, seconds float64)
}

// QuestionReport records the evaluation of a single question, in order.
type QuestionReport struct {
	Question   string         `json:"question"`
	Answer     string         `json:"answer"`
	Verdict    scorer.Verdict `json:"verdict"`
	Missing    []string       `json:"missing,omitempty"`
	Feedback   string         `json:"feedback"`
	Knowledge  float64        `json:"knowledge"`
	Confidence float64        `json:"confidence"`
	Seconds    float64        `json:"seconds"`
}

// Result is the immutable summary produced when a session terminates.
// FinalScore blends the raw per-question sums, not averages, so sessions
// with more questions accumulate higher totals.
type Result struct {
	Subject         string           `json:"subject"`
	Level           string           `json:"level"`
	TotalKnowledge  float64          `json:"total_knowledge"`
	TotalConfidence float64          `json:"total_confidence"`
	FinalScore      float64          `json:"final_score"`
	Reports         []QuestionReport `json:"reports"`
}
