package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress [case-id...]",
	Short: "Print the completion percentage of cases (all cases when none given)",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	if caseService == nil {
		return errNotConfigured
	}
	ctx := cmd.Context()

	ids := args
	if len(ids) == 0 {
		cases, err := caseService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list cases: %w", err)
		}
		for _, c := range cases {
			ids = append(ids, c.ID)
		}
	}

	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No cases found")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Case", "Candidate", "Visa category", "Status", "Documents", "Progress"})
	failed := 0
	for _, id := range ids {
		p, err := caseService.GetProgress(ctx, id)
		if err != nil {
			failed++
			table.Append([]string{id, "-", "-", "-", "-", "error: " + err.Error()})
			continue
		}
		table.Append([]string{
			p.Case.ID,
			p.Case.CandidateID,
			string(p.Case.VisaCategory),
			string(p.Case.Status),
			fmt.Sprintf("%d/%d", p.Submitted, p.Required),
			strconv.Itoa(p.Percent) + "%",
		})
	}
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d cases could not be read", failed, len(ids))
	}
	return nil
}
