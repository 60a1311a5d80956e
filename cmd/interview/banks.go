package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/interview-coach/internal/app"
	"github.com/stellarlinkco/interview-coach/internal/question"
)

func newBanksCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:     "banks [topic]",
		Short:   "List curated question banks, or show one bank's questions",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: loadConfigPreRun(st),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := app.BuildBank(st.cfg)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return printBank(cmd, bank, args[0])
			}
			return printBankList(cmd, bank)
		},
	}
}

func printBankList(cmd *cobra.Command, bank *question.Bank) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOPIC\tQUESTIONS")
	for _, topic := range bank.Topics() {
		records, _ := bank.Topic(topic)
		fmt.Fprintf(tw, "%s\t%d\n", topic, len(records))
	}
	return tw.Flush()
}

func printBank(cmd *cobra.Command, bank *question.Bank, topic string) error {
	topic = strings.TrimSpace(topic)
	records, ok := bank.Topic(topic)
	if !ok {
		if key, resolved := question.ResolveTopic(topic); resolved {
			records, ok = bank.Topic(key)
			topic = key
		}
	}
	if !ok {
		return fmt.Errorf("banks: no bank for %q", topic)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d questions)\n", topic, len(records))
	for i, r := range records {
		fmt.Fprintf(out, "%d. %s\n", i+1, r.Text)
		if len(r.Keywords) > 0 {
			fmt.Fprintf(out, "   keywords: %s\n", strings.Join(r.Keywords, ", "))
		}
	}
	return nil
}
