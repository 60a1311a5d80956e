package scorer

import "strings"

// Verdict classifies a single response's keyword coverage.
type Verdict string

const (
	VerdictStrong   Verdict = "strong"
	VerdictPartial  Verdict = "partial"
	VerdictWeak     Verdict = "weak"
	VerdictNoAnswer Verdict = "no_answer"
)

// Coverage bands. Lower bounds are inclusive.
const (
	strongCoverage  = 0.7
	partialCoverage = 0.4
)

const (
	noAnswerFeedback = "You didn't give an answer. In an interview, always try to say something, " +
		"even if it's not perfect."
	unstructuredFeedback = "Thanks for your answer. I don't have a strict checklist for this question, " +
		"but try to be clear, structured, and give concrete examples."

	strongOpener  = "Good answer. You covered most of the important points."
	partialOpener = "Decent answer, but you missed a few important points."
	weakOpener    = "Your answer is missing several key ideas the interviewer expects."
)

// Analysis is the outcome of classifying one response.
type Analysis struct {
	Verdict  Verdict
	Missing  []string // expected keywords absent from the answer
	Feedback string
}

// Analyze compares an answer against expected keywords and produces
// interviewer-style feedback. Matching is case-insensitive substring
// containment, no tokenization or stemming. An empty answer is always
// no_answer regardless of the other arguments; a question without expected
// keywords yields a neutral partial verdict, not a judgment of correctness.
// Analyze keeps no state across calls.
func Analyze(answer string, keywords []string, idealAnswer string) Analysis {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return Analysis{Verdict: VerdictNoAnswer, Missing: []string{}, Feedback: noAnswerFeedback}
	}

	if len(keywords) == 0 {
		return Analysis{Verdict: VerdictPartial, Missing: []string{}, Feedback: unstructuredFeedback}
	}

	lower := strings.ToLower(trimmed)
	matched := 0
	missing := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			matched++
			continue
		}
		missing = append(missing, k)
	}

	coverage := float64(matched) / float64(len(keywords))

	var verdict Verdict
	var opener string
	switch {
	case coverage >= strongCoverage:
		verdict, opener = VerdictStrong, strongOpener
	case coverage >= partialCoverage:
		verdict, opener = VerdictPartial, partialOpener
	default:
		verdict, opener = VerdictWeak, weakOpener
	}

	parts := []string{opener}
	if len(missing) > 0 {
		parts = append(parts, "You could also mention: "+strings.Join(missing, ", ")+".")
	}
	if strings.TrimSpace(idealAnswer) != "" {
		parts = append(parts, "A concise way to answer is: "+idealAnswer)
	}

	return Analysis{Verdict: verdict, Missing: missing, Feedback: strings.Join(parts, " ")}
}
