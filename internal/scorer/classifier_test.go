package scorer

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeNoAnswer(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"", "   ", "\t\n"} {
		got := Analyze(answer, []string{"list", "mutable"}, "A list is mutable.")
		if got.Verdict != VerdictNoAnswer {
			t.Fatalf("Analyze(%q): verdict %q, want no_answer", answer, got.Verdict)
		}
		if len(got.Missing) != 0 {
			t.Fatalf("Analyze(%q): missing %v, want empty", answer, got.Missing)
		}
		if !strings.Contains(got.Feedback, "didn't give an answer") {
			t.Fatalf("Analyze(%q): feedback %q", answer, got.Feedback)
		}
	}
}

func TestAnalyzeFullCoverage(t *testing.T) {
	t.Parallel()

	got := Analyze("A list is mutable", []string{"list", "mutable"}, "")
	if got.Verdict != VerdictStrong {
		t.Fatalf("verdict %q, want strong", got.Verdict)
	}
	if len(got.Missing) != 0 {
		t.Fatalf("missing %v, want empty", got.Missing)
	}
	if !strings.HasPrefix(got.Feedback, "Good answer.") {
		t.Fatalf("feedback %q", got.Feedback)
	}
	if strings.Contains(got.Feedback, "You could also mention") {
		t.Fatalf("feedback mentions missing keywords with none missing: %q", got.Feedback)
	}
}

func TestAnalyzeZeroCoverage(t *testing.T) {
	t.Parallel()

	got := Analyze("no idea", []string{"list", "mutable"}, "")
	if got.Verdict != VerdictWeak {
		t.Fatalf("verdict %q, want weak", got.Verdict)
	}
	if !reflect.DeepEqual(got.Missing, []string{"list", "mutable"}) {
		t.Fatalf("missing %v, want [list mutable]", got.Missing)
	}
	if !strings.Contains(got.Feedback, "You could also mention: list, mutable.") {
		t.Fatalf("feedback %q", got.Feedback)
	}
}

func TestAnalyzePartialBoundaryInclusive(t *testing.T) {
	t.Parallel()

	// 2 of 5 keywords matched: coverage exactly 0.4.
	got := Analyze("mentions alpha and bravo only", []string{"alpha", "bravo", "charlie", "delta", "echo"}, "")
	if got.Verdict != VerdictPartial {
		t.Fatalf("coverage 0.4: verdict %q, want partial", got.Verdict)
	}
	if !reflect.DeepEqual(got.Missing, []string{"charlie", "delta", "echo"}) {
		t.Fatalf("missing %v", got.Missing)
	}
}

func TestAnalyzeStrongBoundaryInclusive(t *testing.T) {
	t.Parallel()

	// 7 of 10 keywords matched: coverage exactly 0.7.
	keywords := []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"}
	got := Analyze("k1 k2 k3 k4 k5 k6 k7", keywords, "")
	if got.Verdict != VerdictStrong {
		t.Fatalf("coverage 0.7: verdict %q, want strong", got.Verdict)
	}
}

func TestAnalyzeCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Analyze("A LIST is MUTABLE", []string{"List", "Mutable"}, "")
	if got.Verdict != VerdictStrong || len(got.Missing) != 0 {
		t.Fatalf("got verdict=%q missing=%v", got.Verdict, got.Missing)
	}
}

func TestAnalyzeFeedbackAssembly(t *testing.T) {
	t.Parallel()

	got := Analyze("it has a key", []string{"key", "value"}, "A dictionary maps keys to values.")
	if got.Verdict != VerdictPartial {
		t.Fatalf("verdict %q, want partial", got.Verdict)
	}
	want := "Decent answer, but you missed a few important points. " +
		"You could also mention: value. " +
		"A concise way to answer is: A dictionary maps keys to values."
	if got.Feedback != want {
		t.Fatalf("feedback:\n got %q\nwant %q", got.Feedback, want)
	}
}

func TestAnalyzeNoKeywords(t *testing.T) {
	t.Parallel()

	for _, keywords := range [][]string{nil, {}} {
		got := Analyze("a freeform reply", keywords, "")
		if got.Verdict != VerdictPartial {
			t.Fatalf("verdict %q, want partial", got.Verdict)
		}
		if len(got.Missing) != 0 {
			t.Fatalf("missing %v, want empty", got.Missing)
		}
		if !strings.Contains(got.Feedback, "strict checklist") {
			t.Fatalf("feedback %q", got.Feedback)
		}
	}
}
