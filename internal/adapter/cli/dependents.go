package cli

import (
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var removeDependentCmd = &cobra.Command{
	Use:   "remove-dependent [case-id] [dependent-id]",
	Short: "Delete a persisted dependent of a permanent residence case",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveDependent,
}

func init() {
	rootCmd.AddCommand(removeDependentCmd)
}

func runRemoveDependent(cmd *cobra.Command, args []string) error {
	if residenceService == nil {
		return errNotConfigured
	}
	snap, err := residenceService.RemoveDependent(cmd.Context(), args[0], args[1], notifier)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintf(out, "Case %s: %d persons declared\n", snap.CaseID, snap.PersonCount)
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Dependent", "Last name", "First name", "Age"})
	for _, d := range snap.Dependents {
		table.Append([]string{d.ID.String(), d.LastName, d.FirstName, d.Age})
	}
	table.Render()
	return nil
}
