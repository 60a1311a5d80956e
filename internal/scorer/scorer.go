package scorer

import "strings"

// DefaultHesitationMarkers are the filler phrases counted against confidence.
var DefaultHesitationMarkers = []string{"um", "uh", "hmm", "maybe", "i think"}

const (
	// MaxKnowledge is the nominal ceiling of the knowledge scale. The raw
	// knowledge formula can exceed it; see KnowledgeScore.
	MaxKnowledge = 10.0
	// MaxConfidence is the hard ceiling of the confidence scale.
	MaxConfidence = 10.0

	slowPaceLimit = 0.5
	fastPaceLimit = 3.0

	clarityPenalty  = 5.0
	slowPacePenalty = 3.0
	fastPacePenalty = 2.0
)

// Config tunes a Scorer. The zero value selects the defaults.
type Config struct {
	// HesitationMarkers are matched as case-insensitive substrings.
	// Nil selects DefaultHesitationMarkers; an explicit empty slice
	// disables hesitation counting.
	HesitationMarkers []string
}

// Scorer computes the two per-response score axes. Both methods are pure:
// the same inputs always produce the same outputs.
type Scorer struct {
	markers []string
}

// New creates a Scorer from cfg.
func New(cfg Config) *Scorer {
	markers := cfg.HesitationMarkers
	if markers == nil {
		markers = DefaultHesitationMarkers
	}
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		out = append(out, m)
	}
	return &Scorer{markers: out}
}

// KnowledgeScore rates answer content:
//   - +1 per 5 words, capped at 10
//   - +1 per word longer than 4 characters, capped at 10
//   - -5 if the answer contains "don't know"
//
// Empty or whitespace-only answers score 0. The two additive parts give the
// raw formula a theoretical maximum of 20, above the nominal 0-10 scale;
// callers that need a bounded value must normalize themselves, since the
// aggregation downstream expects the raw sum.
func (s *Scorer) KnowledgeScore(answer string) float64 {
	if strings.TrimSpace(answer) == "" {
		return 0
	}

	words := strings.Fields(answer)
	lengthScore := min(float64(len(words))/5, MaxKnowledge)

	longWords := 0
	for _, w := range words {
		if len(w) > 4 {
			longWords++
		}
	}
	keywordScore := min(float64(longWords), MaxKnowledge)

	score := lengthScore + keywordScore
	if strings.Contains(strings.ToLower(answer), "don't know") {
		score -= clarityPenalty
	}
	return max(0, score)
}

// ConfidenceScore rates answer delivery. Each occurrence of a hesitation
// marker costs one point off a base of 10; speaking slower than 0.5 words/s
// costs 3 more, faster than 3 words/s costs 2 (the pace penalties are
// mutually exclusive). The result is clamped to [0, 10]. A duration below
// one second is floored to 1 so pace never divides by zero. An empty answer
// has no delivery to rate and scores 0 rather than eating the slow-pace
// penalty off the base.
func (s *Scorer) ConfidenceScore(answer string, seconds float64) float64 {
	if strings.TrimSpace(answer) == "" {
		return 0
	}

	lower := strings.ToLower(answer)

	hesitations := 0
	for _, m := range s.markers {
		hesitations += strings.Count(lower, m)
	}

	pace := float64(len(strings.Fields(answer))) / max(seconds, 1.0)

	score := 10 - float64(hesitations)
	if pace < slowPaceLimit {
		score -= slowPacePenalty
	} else if pace > fastPaceLimit {
		score -= fastPacePenalty
	}

	return max(0, min(score, MaxConfidence))
}
