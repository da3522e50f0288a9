package entities

import (
	"strconv"
	"strings"
	"time"
)

type ImmigrationProgram string

const (
	ProgramEntreeExpress ImmigrationProgram = "Entrée express"
	ProgramArrima        ImmigrationProgram = "Arrima"
	ProgramAutre         ImmigrationProgram = "Autre"
)

func (p ImmigrationProgram) Valid() bool {
	switch p {
	case ProgramEntreeExpress, ProgramArrima, ProgramAutre:
		return true
	}
	return false
}

// PermanentResidenceDetails is the one-to-one companion of a residence_permanente case.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
//
// Spouse fields are nil when never set or cleared; an empty string is never stored.
// PersonCount is derived (see PersonCount) and never accepted as input.
type PermanentResidenceDetails struct {
	ID              string             `json:"id"`
	CaseID          string             `json:"case_id"`
	Program         ImmigrationProgram `json:"program"`
	PersonCount     int                `json:"person_count"`
	SpouseLastName  *string            `json:"spouse_last_name,omitempty"`
	SpouseFirstName *string            `json:"spouse_first_name,omitempty"`
	SpousePassport  *string            `json:"spouse_passport,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// HasSpouse reports whether a spouse is declared on the persisted record.
func (d PermanentResidenceDetails) HasSpouse() bool {
	return nonEmpty(d.SpouseFirstName) || nonEmpty(d.SpouseLastName)
}

// PersonCount is the applicant, plus a declared spouse, plus every dependent.
func PersonCount(spouseDeclared bool, dependents int) int {
	n := 1 + dependents
	if spouseDeclared {
		n++
	}
	return n
}

// DefaultAge is stored when a typed age cannot be read as a non-negative integer.
const DefaultAge = 0

// ParseAge coerces the free-form age typed during editing. Invalid or negative input
// yields DefaultAge.
func ParseAge(raw string) int {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || age < 0 {
		return DefaultAge
	}
	return age
}

// NullableString maps an edited value to its stored form: blank => nil.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
