package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	base := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", base, 0)
	if e.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", e.HTTPStatus)
	}
	if !errors.Is(e, base) {
		t.Fatalf("expected wrapped error")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	simple := NewDomainErrorSimple("PRICE_NOT_FOUND", "Price not found", http.StatusUnprocessableEntity)
	withDetails := simple.WithDetails("Permiso de Caza Mayor")
	if simple.Details != "" {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
	body := withDetails.ToHTTPError()
	if body.Code != "PRICE_NOT_FOUND" || body.Details != "Permiso de Caza Mayor" {
		t.Fatalf("unexpected body %+v", body)
	}
}
