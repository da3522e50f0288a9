package cli

import (
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [case-id]",
	Short: "Print the audit trail of a case's candidate",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if caseService == nil {
		return errNotConfigured
	}
	entries, err := caseService.History(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No history entries")
		return nil
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Date", "Action", "User"})
	for _, h := range entries {
		table.Append([]string{h.Date.Format(time.RFC3339), h.Action, h.UserID})
	}
	table.Render()
	return nil
}
