package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/interview-coach/internal/app"
	"github.com/stellarlinkco/interview-coach/internal/scorer"
)

type scoreOptions struct {
	answer   string
	seconds  float64
	keywords []string
	ideal    string
	asJSON   bool
}

func newScoreCmd(st *cliState) *cobra.Command {
	var opts scoreOptions

	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Score a single answer without running a full session",
		Args:    cobra.NoArgs,
		PreRunE: loadConfigPreRun(st),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, st, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.answer, "answer", "", "answer text to evaluate")
	cmd.Flags().Float64Var(&opts.seconds, "seconds", 0, "time spent answering, in seconds")
	cmd.Flags().StringSliceVar(&opts.keywords, "keywords", nil, "expected keywords")
	cmd.Flags().StringVar(&opts.ideal, "ideal", "", "ideal answer to suggest in feedback")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit JSON instead of text")

	return cmd
}

func runScore(cmd *cobra.Command, st *cliState, opts *scoreOptions) error {
	if st == nil || st.cfg == nil {
		return fmt.Errorf("score: missing config (internal error)")
	}
	if opts.seconds < 0 {
		return fmt.Errorf("score: --seconds must not be negative")
	}

	sc := app.NewScorer(st.cfg)
	knowledge := sc.KnowledgeScore(opts.answer)
	confidence := sc.ConfidenceScore(opts.answer, opts.seconds)
	analysis := scorer.Analyze(opts.answer, opts.keywords, opts.ideal)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"knowledge":  knowledge,
			"confidence": confidence,
			"verdict":    analysis.Verdict,
			"missing":    analysis.Missing,
			"feedback":   analysis.Feedback,
		})
	}

	fmt.Fprintf(out, "knowledge:  %.1f\n", knowledge)
	fmt.Fprintf(out, "confidence: %.1f\n", confidence)
	fmt.Fprintf(out, "verdict:    %s\n", analysis.Verdict)
	if len(analysis.Missing) > 0 {
		fmt.Fprintf(out, "missing:    %s\n", strings.Join(analysis.Missing, ", "))
	}
	fmt.Fprintf(out, "feedback:   %s\n", analysis.Feedback)
	return nil
}
