package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var approveUserID string

var approveCmd = &cobra.Command{
	Use:   "approve [case-id]",
	Short: "Approve a case, record the history entry and email the applicant",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprove,
}

func init() {
	approveCmd.Flags().StringVarP(&approveUserID, "user", "u", "", "Identifier of the approving agent")
	_ = approveCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(approveCmd)
}

func runApprove(cmd *cobra.Command, args []string) error {
	if caseService == nil {
		return errNotConfigured
	}
	out := cmd.OutOrStdout()

	result, err := caseService.Approve(cmd.Context(), args[0], approveUserID)
	if result.Case.ID == "" {
		if err == nil {
			err = errors.New("approval returned no case")
		}
		return err
	}

	statusColor(result.Case.Status).Fprintf(out, "Case %s: %s\n", result.Case.ID, result.Case.Status)
	step(out, "history entry", result.HistoryWritten)
	step(out, "applicant email", result.EmailSent)
	return err
}
