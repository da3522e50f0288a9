package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portail_immigration/internal/adapter/http/handlers/mocks"
	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCaseRouter(t *testing.T) (*gin.Engine, *mocks.MockICaseUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICaseUseCase(ctrl)
	h := NewCaseHandler(uc)

	r := gin.New()
	r.POST("/v1/cases", h.OpenCase)
	r.GET("/v1/cases", h.ListCases)
	r.GET("/v1/cases/:case_id", h.GetCase)
	r.PATCH("/v1/cases/:case_id/notes", h.UpdateNotes)
	r.GET("/v1/cases/:case_id/progress", h.GetProgress)
	r.GET("/v1/cases/:case_id/documents", h.ListDocuments)
	r.POST("/v1/cases/:case_id/approve", h.ApproveCase)
	r.GET("/v1/cases/:case_id/history", h.GetHistory)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCaseHandler_OpenCase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCaseRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/cases", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		r, _ := newCaseRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/cases", `{"candidate_id":"c1","candidate_email":"nope","identification_number":"QC-1","visa_category":"travail"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().OpenCase(gomock.Any(), gomock.Any()).Return(entities.Case{}, nil, usecase.ErrInvalidVisaCategory)

		w := doJSON(r, http.MethodPost, "/v1/cases", `{"candidate_id":"c1","candidate_email":"a@b.c","identification_number":"QC-1","visa_category":"etudiant"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().OpenCase(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.OpenCaseInput) (entities.Case, []entities.Document, error) {
				if in.VisaCategory != entities.VisaCategoryTravail || in.CandidateID != "c1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Case{ID: "case-1", Status: entities.CaseStatusEnCours}, []entities.Document{{ID: "d1"}}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/cases", `{"candidate_id":"c1","candidate_email":"a@b.c","identification_number":"QC-1","visa_category":"travail"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Case      struct{ ID, Status string } `json:"case"`
			Documents []struct{ ID string }       `json:"documents"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Case.ID != "case-1" || body.Case.Status != "En cours" || len(body.Documents) != 1 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestCaseHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Case{}, usecase.ErrCaseNotFound)

		w := doJSON(r, http.MethodGet, "/v1/cases/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Case{{ID: "a"}, {ID: "b"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/cases", "")
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("expected 2 cases, got %s", w.Body.String())
		}
	})

	t.Run("progress", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().GetProgress(gomock.Any(), "case-1").Return(usecase.CaseProgress{
			Case:      entities.Case{ID: "case-1", Status: entities.CaseStatusEnCours},
			Required:  4,
			Submitted: 1,
			Percent:   45,
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/cases/case-1/progress", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Percent  int `json:"percent"`
			Required int `json:"required"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Percent != 45 || body.Required != 4 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("documents", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().ListDocuments(gomock.Any(), "case-1").Return([]entities.Document{{ID: "d1", Status: entities.DocumentStatusEnAttente}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/cases/case-1/documents", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update notes", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().UpdateNotes(gomock.Any(), "case-1", "rappeler lundi").Return(entities.Case{ID: "case-1", Notes: "rappeler lundi"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/cases/case-1/notes", `{"notes":"rappeler lundi"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCaseHandler_ApproveCase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user", func(t *testing.T) {
		r, _ := newCaseRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/cases/case-1/approve", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "case-1", "agent-7").Return(usecase.ApprovalResult{}, usecase.ErrInvalidStatusTransition)

		w := doJSON(r, http.MethodPost, "/v1/cases/case-1/approve", `{"user_id":"agent-7"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("email failed keeps approval state", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "case-1", "agent-7").Return(usecase.ApprovalResult{
			Case:           entities.Case{ID: "case-1", Status: entities.CaseStatusApprouve},
			HistoryWritten: true,
		}, fmt.Errorf("%w: %w", usecase.ErrApprovalEmailFailed, errors.New("ses down")))

		w := doJSON(r, http.MethodPost, "/v1/cases/case-1/approve", `{"user_id":"agent-7"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body struct {
			Case           struct{ Status string } `json:"case"`
			HistoryWritten bool                    `json:"history_written"`
			EmailSent      bool                    `json:"email_sent"`
			Error          string                  `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Case.Status != "Approuvé" || !body.HistoryWritten || body.EmailSent || body.Error != "APPROVAL_EMAIL_FAILED" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "case-1", "agent-7").Return(usecase.ApprovalResult{
			Case:           entities.Case{ID: "case-1", Status: entities.CaseStatusApprouve},
			History:        entities.History{ID: "h1", Action: entities.HistoryActionProfileApproved},
			HistoryWritten: true,
			EmailSent:      true,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/cases/case-1/approve", `{"user_id":"agent-7"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapCaseError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidCaseID, http.StatusBadRequest},
		{usecase.ErrInvalidCandidateID, http.StatusBadRequest},
		{usecase.ErrInvalidVisaCategory, http.StatusBadRequest},
		{usecase.ErrInvalidUserID, http.StatusBadRequest},
		{usecase.ErrCaseNotFound, http.StatusNotFound},
		{usecase.ErrInvalidStatusTransition, http.StatusConflict},
		{fmt.Errorf("%w: x", usecase.ErrApprovalHistoryFailed), http.StatusBadGateway},
		{fmt.Errorf("%w: x", usecase.ErrApprovalEmailFailed), http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapCaseError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

func TestCaseHandler_GetHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().History(gomock.Any(), "c9").Return(nil, usecase.ErrCaseNotFound)

		w := doJSON(r, http.MethodGet, "/v1/cases/c9/history", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("entries", func(t *testing.T) {
		r, uc := newCaseRouter(t)
		uc.EXPECT().History(gomock.Any(), "c1").Return([]entities.History{
			{ID: "h1", CandidateID: "cand-1", Action: entities.HistoryActionProfileApproved, UserID: "agent-7"},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/cases/c1/history", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []struct {
			Action string `json:"action"`
			UserID string `json:"user_id"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0].UserID != "agent-7" || body[0].Action != entities.HistoryActionProfileApproved {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
