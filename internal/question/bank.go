package question

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed banks.yaml
var defaultBanksYAML []byte

// Bank maps topic keys to curated question lists and resolves free-text
// subjects against them, falling back to a Source for unknown subjects.
type Bank struct {
	topics map[string][]Record
	source Source
}

// topicRules maps subject substrings to topic keys. Order matters: the first
// matching rule wins, and a subject could satisfy several rules in principle
// (for example "ml security" hits both aiml and cybersecurity), so the chain
// must be evaluated top to bottom.
var topicRules = []struct {
	key   string
	terms []string
}{
	{"python", []string{"python"}},
	{"aiml", []string{"aiml", "ml", "machine learning"}},
	{"dsa", []string{"dsa", "algorithm"}},
	{"datascience", []string{"data science", "data scientist", "datascience"}},
	{"webdev", []string{"web", "frontend", "fullstack"}},
	{"cybersecurity", []string{"cyber", "security"}},
	{"general_hr", []string{"hr", "fresher", "student"}},
}

// NewBank builds a Bank from raw YAML bank data. The source handles subjects
// no curated topic matches and may be nil, in which case Select resolves
// unknown subjects to the default question set directly.
func NewBank(data []byte, source Source) (*Bank, error) {
	var topics map[string][]Record
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("question: parse banks: %w", err)
	}
	for key, records := range topics {
		if len(records) == 0 {
			return nil, fmt.Errorf("question: bank %q is empty", key)
		}
		for i, r := range records {
			if strings.TrimSpace(r.Text) == "" {
				return nil, fmt.Errorf("question: bank %q: question %d has no text", key, i+1)
			}
		}
	}
	return &Bank{topics: topics, source: source}, nil
}

// DefaultBank builds a Bank from the embedded curated data.
func DefaultBank(source Source) *Bank {
	b, err := NewBank(defaultBanksYAML, source)
	if err != nil {
		// The embedded data is validated by tests; reaching this is a build defect.
		panic(err)
	}
	return b
}

// LoadBank builds a Bank from a YAML file on disk.
func LoadBank(path string, source Source) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("question: read banks %q: %w", path, err)
	}
	return NewBank(data, source)
}

// Topics returns the curated topic keys in sorted order.
func (b *Bank) Topics() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.topics))
	for k := range b.topics {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Topic returns the curated questions for an exact topic key.
func (b *Bank) Topic(key string) ([]Record, bool) {
	if b == nil {
		return nil, false
	}
	records, ok := b.topics[key]
	return records, ok
}

// ResolveTopic maps a free-text subject to a curated topic key using the
// fixed-priority substring chain. It reports false when no rule matches.
func ResolveTopic(subject string) (string, bool) {
	subject = strings.ToLower(subject)
	for _, rule := range topicRules {
		for _, term := range rule.terms {
			if strings.Contains(subject, term) {
				return rule.key, true
			}
		}
	}
	return "", false
}

// Select returns the ordered question sequence for a subject. Curated topics
// win; anything else goes to the Source, whose failures already resolve to
// default questions internally, so Select always returns a non-empty list.
func (b *Bank) Select(ctx context.Context, subject string) []Record {
	if b != nil {
		if key, ok := ResolveTopic(subject); ok {
			if records, ok := b.topics[key]; ok {
				return records
			}
		}
		if b.source != nil {
			return b.source.Questions(ctx, subject)
		}
	}
	return Wrap(DefaultQuestions())
}

// DefaultQuestions is the generic HR fallback used when neither a curated
// bank nor an external source can supply questions.
func DefaultQuestions() []string {
	return []string{
		"Tell me about yourself.",
		"What are your strengths?",
		"What are your weaknesses?",
		"Why should we hire you?",
		"Where do you see yourself in 5 years?",
	}
}
