package response

import (
	"strconv"

	"portail_immigration/internal/adapter/notification"
	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase"
	"portail_immigration/pkg"
)

type NotificationResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func FromNotifications(msgs []notification.Message) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, NotificationResponse{Severity: string(m.Severity), Message: m.Text})
	}
	return out
}

// DependentResponse keeps the age as text so unsaved rows and stored rows share one shape.
type DependentResponse struct {
	ID        string `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Age       string `json:"age"`
}

type PermanentResidenceResponse struct {
	CaseID          string              `json:"case_id"`
	RecordID        string              `json:"record_id,omitempty"`
	Program         string              `json:"program"`
	SpouseLastName  string              `json:"spouse_last_name"`
	SpouseFirstName string              `json:"spouse_first_name"`
	SpousePassport  string              `json:"spouse_passport"`
	PersonCount     int                 `json:"person_count"`
	Dependents      []DependentResponse `json:"dependents"`
}

func FromSessionSnapshot(s usecase.SessionSnapshot) PermanentResidenceResponse {
	out := PermanentResidenceResponse{
		CaseID:          s.CaseID,
		RecordID:        s.RecordID,
		Program:         string(s.Program),
		SpouseLastName:  s.SpouseLastName,
		SpouseFirstName: s.SpouseFirstName,
		SpousePassport:  s.SpousePassport,
		PersonCount:     s.PersonCount,
		Dependents:      make([]DependentResponse, 0, len(s.Dependents)),
	}
	for _, d := range s.Dependents {
		out.Dependents = append(out.Dependents, DependentResponse{
			ID:        d.ID.String(),
			LastName:  d.LastName,
			FirstName: d.FirstName,
			Age:       d.Age,
		})
	}
	return out
}

type DependentUpdateFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type SavePermanentResidenceResponse struct {
	PermanentResidenceResponse
	Created       int                      `json:"created"`
	FailedUpdates []DependentUpdateFailure `json:"failed_updates"`
	Notifications []NotificationResponse   `json:"notifications"`
}

func FromCommitResult(r usecase.CommitResult, msgs []notification.Message) SavePermanentResidenceResponse {
	out := SavePermanentResidenceResponse{
		PermanentResidenceResponse: fromDetails(r.Details, r.Dependents),
		Created:                    r.Created,
		FailedUpdates:              []DependentUpdateFailure{},
		Notifications:              FromNotifications(msgs),
	}
	for _, u := range r.FailedUpdates() {
		out.FailedUpdates = append(out.FailedUpdates, DependentUpdateFailure{ID: u.ID.String(), Error: u.Err.Error()})
	}
	return out
}

func fromDetails(d entities.PermanentResidenceDetails, deps []entities.Dependent) PermanentResidenceResponse {
	out := PermanentResidenceResponse{
		CaseID:          d.CaseID,
		RecordID:        d.ID,
		Program:         string(d.Program),
		SpouseLastName:  deref(d.SpouseLastName),
		SpouseFirstName: deref(d.SpouseFirstName),
		SpousePassport:  deref(d.SpousePassport),
		PersonCount:     d.PersonCount,
		Dependents:      make([]DependentResponse, 0, len(deps)),
	}
	for _, dep := range deps {
		out.Dependents = append(out.Dependents, DependentResponse{
			ID:        dep.ID.String(),
			LastName:  dep.LastName,
			FirstName: dep.FirstName,
			Age:       strconv.Itoa(dep.Age),
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type RemoveDependentResponse struct {
	PermanentResidenceResponse
	Notifications []NotificationResponse `json:"notifications"`
}

func FromRemoval(s usecase.SessionSnapshot, msgs []notification.Message) RemoveDependentResponse {
	return RemoveDependentResponse{
		PermanentResidenceResponse: FromSessionSnapshot(s),
		Notifications:              FromNotifications(msgs),
	}
}

// NotifiedErrorResponse is an error body that also carries the messages raised before the failure.
type NotifiedErrorResponse struct {
	pkg.HTTPError
	Notifications []NotificationResponse `json:"notifications"`
}

func FromNotifiedError(appErr *pkg.AppError, msgs []notification.Message) NotifiedErrorResponse {
	return NotifiedErrorResponse{HTTPError: appErr.ToHTTPError(), Notifications: FromNotifications(msgs)}
}
