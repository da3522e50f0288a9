package request

import (
	"testing"
	"time"

	"portail_immigration/internal/domain/entities"
)

func TestOpenCaseRequest_ToInput(t *testing.T) {
	at := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	in := OpenCaseRequest{
		CandidateID:          " cand-1 ",
		CandidateEmail:       "a@b.c ",
		IdentificationNumber: " QC-123",
		VisaCategory:         " travail ",
		Office:               "Montréal",
		SubmittedAt:          &at,
	}.ToInput()

	if in.CandidateID != "cand-1" || in.CandidateEmail != "a@b.c" || in.IdentificationNumber != "QC-123" {
		t.Fatalf("expected trimmed ids, got %+v", in)
	}
	if in.VisaCategory != entities.VisaCategoryTravail {
		t.Fatalf("expected travail, got %q", in.VisaCategory)
	}
	if !in.SubmittedAt.Equal(at) {
		t.Fatalf("expected submitted_at kept")
	}

	if got := (OpenCaseRequest{}).ToInput(); !got.SubmittedAt.IsZero() {
		t.Fatalf("expected zero submitted_at when omitted")
	}
}
