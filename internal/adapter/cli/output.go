package cli

import (
	"io"

	"portail_immigration/internal/domain/entities"

	"github.com/fatih/color"
)

func step(w io.Writer, name string, done bool) {
	if done {
		color.New(color.FgGreen).Fprintf(w, "  ok     %s\n", name)
		return
	}
	color.New(color.FgYellow).Fprintf(w, "  failed %s\n", name)
}

// statusColor highlights terminal statuses in reports.
func statusColor(s entities.CaseStatus) *color.Color {
	switch {
	case s == entities.CaseStatusApprouve || s == entities.CaseStatusComplete:
		return color.New(color.FgGreen)
	case s.IsTerminal():
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}
