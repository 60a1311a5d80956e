package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stellarlinkco/interview-coach/internal/question"
	"github.com/stellarlinkco/interview-coach/internal/scorer"
)

// Final score blend weights and summary tiers.
const (
	knowledgeWeight  = 0.7
	confidenceWeight = 0.3

	strongFinalScore = 75.0
	mixedFinalScore  = 50.0
)

// ErrSessionUsed is returned by Run on a session that already ran.
// Terminated is absorbing: a fresh session must be constructed to run again.
var ErrSessionUsed = errors.New("session: already run")

type state int

const (
	stateNotStarted state = iota
	stateGreeting
	stateAsking
	stateScoring
	stateSummarizing
	stateTerminated
)

// Config describes a session to construct.
type Config struct {
	Subject   string
	Level     string
	Questions []question.Record
	Voice     Voice
	Scorer    *scorer.Scorer // nil selects the default scorer
}

// Session drives one interview from greeting through summary. It owns its
// running totals exclusively; nothing reads or writes them mid-session, and
// all work is strictly sequential with Capture as the only blocking call.
type Session struct {
	subject   string
	level     string
	questions []question.Record
	voice     Voice
	scorer    *scorer.Scorer

	state           state
	totalKnowledge  float64
	totalConfidence float64
	reports         []QuestionReport
}

// New validates the configuration and constructs a Session. An empty
// question sequence or a missing voice collaborator refuses construction:
// the orchestrator must not start over inputs it cannot finish with.
func New(cfg Config) (*Session, error) {
	if len(cfg.Questions) == 0 {
		return nil, errors.New("session: no questions")
	}
	for i, q := range cfg.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("session: question %d has no text", i+1)
		}
	}
	if cfg.Voice == nil {
		return nil, errors.New("session: nil voice collaborator")
	}

	sc := cfg.Scorer
	if sc == nil {
		sc = scorer.New(scorer.Config{})
	}

	return &Session{
		subject:   strings.ToLower(strings.TrimSpace(cfg.Subject)),
		level:     strings.ToLower(strings.TrimSpace(cfg.Level)),
		questions: cfg.Questions,
		voice:     cfg.Voice,
		scorer:    sc,
		state:     stateNotStarted,
		reports:   make([]QuestionReport, 0, len(cfg.Questions)),
	}, nil
}

// Run conducts the whole interview and returns its Result. It may be called
// once; subsequent calls return ErrSessionUsed.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	if s == nil {
		return nil, errors.New("session: nil session")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if s.state != stateNotStarted {
		return nil, ErrSessionUsed
	}

	s.state = stateGreeting
	s.greet()

	for i, q := range s.questions {
		s.askAndEvaluate(ctx, i+1, q)
	}

	s.state = stateSummarizing
	res := s.summarize()
	s.state = stateTerminated
	return res, nil
}

func (s *Session) greet() {
	s.voice.Announce(fmt.Sprintf("Hello. We are starting your %s interview.", s.subject))
	s.voice.Announce(fmt.Sprintf("Difficulty level: %s.", s.level))
	s.voice.Announce(
		"I will ask you a series of questions. Answer them as if this were a real interview. " +
			"After each answer, I will give you feedback on your content and confidence.")
}

func (s *Session) askAndEvaluate(ctx context.Context, num int, q question.Record) {
	s.state = stateAsking
	s.voice.Announce(fmt.Sprintf("Question %d: %s", num, q.Text))

	answer, seconds := s.voice.Capture(ctx)

	s.state = stateScoring
	ks := s.scorer.KnowledgeScore(answer)
	cs := s.scorer.ConfidenceScore(answer, seconds)
	s.totalKnowledge += ks
	s.totalConfidence += cs

	analysis := scorer.Analyze(answer, q.Keywords, q.IdealAnswer)
	s.voice.Announce(reaction(analysis.Verdict))

	s.reports = append(s.reports, QuestionReport{
		Question:   q.Text,
		Answer:     answer,
		Verdict:    analysis.Verdict,
		Missing:    analysis.Missing,
		Feedback:   analysis.Feedback,
		Knowledge:  ks,
		Confidence: cs,
		Seconds:    seconds,
	})
}

// reaction is the one-line spoken response to a verdict.
func reaction(v scorer.Verdict) string {
	switch v {
	case scorer.VerdictStrong:
		return "Good, that's a strong answer."
	case scorer.VerdictPartial:
		return "That's a decent answer, but there is room to improve."
	case scorer.VerdictWeak:
		return "Not quite. Let me highlight what you should add next time."
	default:
		return "You didn't really answer that. In an interview, always try to say something."
	}
}

func (s *Session) summarize() *Result {
	final := s.totalKnowledge*knowledgeWeight + s.totalConfidence*confidenceWeight

	s.voice.Announce("We have finished the interview.")
	s.voice.Announce(fmt.Sprintf("Your final score is %d out of 100.", int(final)))

	switch {
	case final >= strongFinalScore:
		s.voice.Announce("Overall, this is a strong performance. " +
			"You would be a good fit for many junior roles.")
	case final >= mixedFinalScore:
		s.voice.Announce("You have some good points, but you need more practice to structure " +
			"your answers and sound more confident.")
	default:
		s.voice.Announce("You need to strengthen your fundamentals and practice answering out loud. " +
			"Focus on clarity, key concepts, and reducing hesitations.")
	}

	return &Result{
		Subject:         s.subject,
		Level:           s.level,
		TotalKnowledge:  s.totalKnowledge,
		TotalConfidence: s.totalConfidence,
		FinalScore:      final,
		Reports:         s.reports,
	}
}
