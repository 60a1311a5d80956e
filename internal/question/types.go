package question

import "context"

// Difficulty tags a question with its intended candidate level. It is
// informational only: selection does not filter by it.
type Difficulty string

const (
	DifficultyFresher      Difficulty = "fresher"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyProfessional Difficulty = "professional"
	DifficultyAll          Difficulty = "all"
)

// Record is a single interview question. Keywords and IdealAnswer are absent
// for unstructured questions (fetched or generated without expectations).
// Records are built once at session start and never mutated afterwards.
type Record struct {
	Text        string     `yaml:"question" json:"question"`
	Keywords    []string   `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	IdealAnswer string     `yaml:"ideal_answer,omitempty" json:"ideal_answer,omitempty"`
	Difficulty  Difficulty `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
}

// Source supplies questions for subjects that have no curated bank. A Source
// must always produce at least one record: acquisition failures resolve
// internally to a fixed default set and never surface to the caller.
type Source interface {
	Questions(ctx context.Context, subject string) []Record
}

// Wrap converts plain question text into unstructured Records.
func Wrap(questions []string) []Record {
	out := make([]Record, 0, len(questions))
	for _, q := range questions {
		out = append(out, Record{Text: q, Difficulty: DifficultyAll})
	}
	return out
}
