package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		if e.Error() != "CASE_NOT_FOUND: Case not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if got := e.ToHTTPError(); got.Code != "CASE_NOT_FOUND" || got.Message != "Case not found" {
			t.Fatalf("unexpected http error %+v", got)
		}
	})

	t.Run("wrapped cause stays internal", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "Internal error", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrappable")
		}
		if got := e.ToHTTPError(); got.Message != "Internal error" {
			t.Fatalf("cause leaked into response: %+v", got)
		}
	})
}
