// Package generator produces interview questions with an LLM for subjects
// that have no curated bank. Like every question source, it is infallible
// from the session's point of view: generation problems fall through to the
// configured fallback source (normally the web fetcher).
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stellarlinkco/interview-coach/internal/llm"
	"github.com/stellarlinkco/interview-coach/internal/question"
)

const defaultNumQuestions = 5

const generatePrompt = `You are an experienced technical interviewer. Generate {{NUM_QUESTIONS}} interview questions for a candidate applying as: {{SUBJECT}}.

For each question provide:
- the question text
- 3-6 expected keywords a good answer should mention (short lowercase phrases)
- a concise ideal answer (2-3 sentences)
- a difficulty: "fresher", "intermediate" or "professional"

## Output Format
Return a JSON object with this structure:
{
  "questions": [
    {
      "question": "The question text?",
      "keywords": ["keyword one", "keyword two"],
      "ideal_answer": "A concise model answer.",
      "difficulty": "fresher"
    }
  ]
}

IMPORTANT: Return ONLY valid JSON, no markdown code blocks or extra text.`

// Generator generates question records for a subject. It implements
// question.Source.
type Generator struct {
	Provider llm.Provider
	Fallback question.Source // consulted when generation fails; may be nil
	Num      int             // questions to request, default 5
}

// Questions returns generated records for the subject, or the fallback's
// records (or the default set) when generation fails.
func (g *Generator) Questions(ctx context.Context, subject string) []question.Record {
	records, err := g.Generate(ctx, subject)
	if err == nil && len(records) > 0 {
		return records
	}
	if g != nil && g.Fallback != nil {
		return g.Fallback.Questions(ctx, subject)
	}
	return question.Wrap(question.DefaultQuestions())
}

// Generate asks the provider for questions and parses its JSON reply.
func (g *Generator) Generate(ctx context.Context, subject string) ([]question.Record, error) {
	if g == nil || g.Provider == nil {
		return nil, errors.New("generator: nil provider")
	}
	if ctx == nil {
		return nil, errors.New("generator: nil context")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, errors.New("generator: empty subject")
	}

	num := g.Num
	if num <= 0 {
		num = defaultNumQuestions
	}

	prompt := strings.ReplaceAll(generatePrompt, "{{SUBJECT}}", subject)
	prompt = strings.ReplaceAll(prompt, "{{NUM_QUESTIONS}}", fmt.Sprintf("%d", num))

	resp, err := g.Provider.Complete(ctx, &llm.Request{
		Messages:  []llm.Message{{Role: "user", Content: prompt}},
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	var parsed struct {
		Questions []struct {
			Question    string   `json:"question"`
			Keywords    []string `json:"keywords"`
			IdealAnswer string   `json:"ideal_answer"`
			Difficulty  string   `json:"difficulty"`
		} `json:"questions"`
	}
	if err := llm.ParseJSON(llm.Text(resp), &parsed); err != nil {
		return nil, fmt.Errorf("generator: parse response: %w", err)
	}

	records := make([]question.Record, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		text := strings.TrimSpace(q.Question)
		if text == "" {
			continue
		}
		records = append(records, question.Record{
			Text:        text,
			Keywords:    q.Keywords,
			IdealAnswer: strings.TrimSpace(q.IdealAnswer),
			Difficulty:  normalizeDifficulty(q.Difficulty),
		})
		if len(records) == num {
			break
		}
	}
	if len(records) == 0 {
		return nil, errors.New("generator: no usable questions in response")
	}
	return records, nil
}

func normalizeDifficulty(d string) question.Difficulty {
	switch question.Difficulty(strings.ToLower(strings.TrimSpace(d))) {
	case question.DifficultyFresher:
		return question.DifficultyFresher
	case question.DifficultyIntermediate:
		return question.DifficultyIntermediate
	case question.DifficultyProfessional:
		return question.DifficultyProfessional
	default:
		return question.DifficultyAll
	}
}
