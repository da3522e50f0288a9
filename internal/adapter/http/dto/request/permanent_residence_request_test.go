package request

import (
	"encoding/json"
	"errors"
	"testing"

	"portail_immigration/internal/domain/entities"
)

func TestPermanentResidenceRequest_ToInput(t *testing.T) {
	var req PermanentResidenceRequest
	body := `{
		"program": " Arrima ",
		"spouse_last_name": "Roy",
		"dependents": [
			{"id": "dep-1", "first_name": "Léa", "age": 7},
			{"id": "temp-abc", "first_name": "Noé", "age": "douze"},
			{"first_name": "Zoé", "age": null}
		]
	}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in, err := req.ToInput()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if in.Program != entities.ProgramArrima {
		t.Fatalf("expected trimmed program, got %q", in.Program)
	}
	if len(in.Dependents) != 3 {
		t.Fatalf("expected 3 dependents, got %d", len(in.Dependents))
	}
	if in.Dependents[0].ID != entities.PersistentDependentID("dep-1") || in.Dependents[0].Age != "7" {
		t.Fatalf("unexpected first draft %+v", in.Dependents[0])
	}
	if !in.Dependents[1].ID.IsTemporary() || in.Dependents[1].Age != "douze" {
		t.Fatalf("unexpected second draft %+v", in.Dependents[1])
	}
	if !in.Dependents[2].ID.IsZero() || in.Dependents[2].Age != "" {
		t.Fatalf("unexpected third draft %+v", in.Dependents[2])
	}
}

func TestPermanentResidenceRequest_InvalidID(t *testing.T) {
	req := PermanentResidenceRequest{Program: "Autre", Dependents: []DependentRequest{{ID: "temp-"}}}
	if _, err := req.ToInput(); !errors.Is(err, entities.ErrInvalidDependentID) {
		t.Fatalf("expected ErrInvalidDependentID, got %v", err)
	}
}

func TestAgeInput_RejectsObjects(t *testing.T) {
	var a AgeInput
	if err := json.Unmarshal([]byte(`{"v":1}`), &a); err == nil {
		t.Fatalf("expected error for object age")
	}
}
