// Package progress derives a case's completion percentage from its status and documents.
//
// The status policy communicates the organizational stage of a case, not raw document
// completeness: an "En cours" case with nothing uploaded reports InProgressFloor and an
// "En attente" case with everything uploaded reports PendingCeiling.
package progress

import "portail_immigration/internal/domain/entities"

// TODO: move these to the catalog file once product confirms whether the approved
// and pending values are meant to change per visa category.
const (
	TerminalProgress = 100
	ApprovedProgress = 85
	InProgressFloor  = 45
	PendingCeiling   = 15
)

// Calculate returns an integer percentage in [0, 100].
func Calculate(status entities.CaseStatus, docs []entities.Document) int {
	if status.IsTerminal() {
		return TerminalProgress
	}

	ratio := DocumentRatio(docs)

	switch status {
	case entities.CaseStatusApprouve:
		return ApprovedProgress
	case entities.CaseStatusEnCours:
		return max(InProgressFloor, ratio)
	case entities.CaseStatusEnAttente:
		return min(PendingCeiling, ratio)
	default:
		return ratio
	}
}

// DocumentRatio is the share of required documents with a stored file. Zero required
// documents yields 0.
func DocumentRatio(docs []entities.Document) int {
	required, submitted := 0, 0
	for _, d := range docs {
		if !d.IsRequired() {
			continue
		}
		required++
		if d.HasFile() {
			submitted++
		}
	}
	if required == 0 {
		return 0
	}
	return 100 * submitted / required
}
