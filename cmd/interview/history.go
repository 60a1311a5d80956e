package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/interview-coach/internal/store"
)

type historyOptions struct {
	subject string
	limit   int
}

func newHistoryCmd(st *cliState) *cobra.Command {
	var opts historyOptions

	cmd := &cobra.Command{
		Use:     "history [session-id]",
		Short:   "List recorded sessions, or show one session in detail",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: loadConfigPreRun(st),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.Open(st.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if len(args) == 1 {
				return printSession(cmd, db, args[0])
			}
			return printSessionList(cmd, db, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.subject, "subject", "", "only show sessions for this subject")
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "maximum sessions to list")

	return cmd
}

func printSessionList(cmd *cobra.Command, db store.Store, opts *historyOptions) error {
	records, err := db.ListSessions(cmd.Context(), store.ListFilter{
		Subject: strings.ToLower(strings.TrimSpace(opts.subject)),
		Limit:   opts.limit,
	})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSUBJECT\tLEVEL\tFINISHED\tSCORE")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.0f\n",
			rec.ID, rec.Subject, rec.Level,
			rec.FinishedAt.UTC().Format(time.RFC3339), rec.FinalScore)
	}
	return tw.Flush()
}

func printSession(cmd *cobra.Command, db store.Store, id string) error {
	rec, err := db.GetSession(cmd.Context(), strings.TrimSpace(id))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "session %s\n", rec.ID)
	fmt.Fprintf(out, "subject: %s  level: %s\n", rec.Subject, rec.Level)
	fmt.Fprintf(out, "finished: %s\n", rec.FinishedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "knowledge: %.1f  confidence: %.1f  final: %.0f\n",
		rec.TotalKnowledge, rec.TotalConfidence, rec.FinalScore)
	for i, r := range rec.Reports {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, r.Question)
		fmt.Fprintf(out, "   answer: %s\n", r.Answer)
		fmt.Fprintf(out, "   verdict: %s  knowledge: %.1f  confidence: %.1f\n", r.Verdict, r.Knowledge, r.Confidence)
		if r.Feedback != "" {
			fmt.Fprintf(out, "   %s\n", r.Feedback)
		}
	}
	return nil
}
