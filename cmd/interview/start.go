package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/interview-coach/internal/app"
	"github.com/stellarlinkco/interview-coach/internal/store"
	"github.com/stellarlinkco/interview-coach/internal/voice"
)

type startOptions struct {
	subject string
	level   string
}

func newStartCmd(st *cliState) *cobra.Command {
	var opts startOptions

	cmd := &cobra.Command{
		Use:     "start",
		Short:   "Run an interactive interview session",
		Args:    cobra.NoArgs,
		PreRunE: loadConfigPreRun(st),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, st, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.subject, "subject", "", "role you are practicing for, e.g. \"python developer\"")
	cmd.Flags().StringVar(&opts.level, "level", "fresher", "difficulty level: fresher|intermediate|professional")

	return cmd
}

func runStart(cmd *cobra.Command, st *cliState, opts *startOptions) error {
	if st == nil || st.cfg == nil {
		return fmt.Errorf("start: missing config (internal error)")
	}
	subject := strings.TrimSpace(opts.subject)
	if subject == "" {
		return fmt.Errorf("start: --subject is required")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	db, err := store.Open(st.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	bank, err := app.BuildBank(st.cfg)
	if err != nil {
		return err
	}

	console := voice.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	rec, err := app.RunSession(ctx, db, bank, app.NewScorer(st.cfg), subject, opts.level, console)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Detailed feedback:")
	for i, r := range rec.Reports {
		fmt.Fprintf(out, "%d. %s\n", i+1, r.Question)
		fmt.Fprintf(out, "   verdict: %s  knowledge: %.1f  confidence: %.1f\n", r.Verdict, r.Knowledge, r.Confidence)
		if r.Feedback != "" {
			fmt.Fprintf(out, "   %s\n", r.Feedback)
		}
	}
	fmt.Fprintf(out, "\nSaved session %s (final score %.0f)\n", rec.ID, rec.FinalScore)
	return nil
}
