package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Error != "Invalid request" || body.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause stays out of the body", func(t *testing.T) {
		cause := errors.New("dial tcp: timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.ToHTTPError().Error != "An internal error occurred" {
			t.Fatalf("cause leaked into body: %+v", e.ToHTTPError())
		}
	})
}
