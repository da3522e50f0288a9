package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase"
)

// AgeInput accepts the age as typed in the form, either a JSON string or a number.
// Coercion to an integer happens at save time.
type AgeInput string

func (a *AgeInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AgeInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("age must be a string or a number: %w", err)
	}
	*a = AgeInput(n.String())
	return nil
}

// DependentRequest is one row of the dependents table. ID is empty or temp-... for
// rows added on the client.
type DependentRequest struct {
	ID        string   `json:"id"`
	LastName  string   `json:"last_name"`
	FirstName string   `json:"first_name"`
	Age       AgeInput `json:"age"`
}

// PermanentResidenceRequest is the full editing state of the form.
type PermanentResidenceRequest struct {
	Program         string             `json:"program" binding:"required"`
	SpouseLastName  string             `json:"spouse_last_name"`
	SpouseFirstName string             `json:"spouse_first_name"`
	SpousePassport  string             `json:"spouse_passport"`
	Dependents      []DependentRequest `json:"dependents"`
}

func (r PermanentResidenceRequest) ToInput() (usecase.PermanentResidenceInput, error) {
	in := usecase.PermanentResidenceInput{
		Program:         entities.ImmigrationProgram(strings.TrimSpace(r.Program)),
		SpouseLastName:  r.SpouseLastName,
		SpouseFirstName: r.SpouseFirstName,
		SpousePassport:  r.SpousePassport,
		Dependents:      make([]usecase.DependentDraft, 0, len(r.Dependents)),
	}
	for i, d := range r.Dependents {
		draft := usecase.DependentDraft{
			LastName:  d.LastName,
			FirstName: d.FirstName,
			Age:       string(d.Age),
		}
		if strings.TrimSpace(d.ID) != "" {
			id, err := entities.ParseDependentID(d.ID)
			if err != nil {
				return usecase.PermanentResidenceInput{}, fmt.Errorf("dependents[%d]: %w", i, err)
			}
			draft.ID = id
		}
		in.Dependents = append(in.Dependents, draft)
	}
	return in, nil
}
