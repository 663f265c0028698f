package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKind(t *testing.T) {
	errThing := Kind(ErrNotFound, "thing not found")
	wrapped := fmt.Errorf("loading: %w", errThing)

	if !errors.Is(wrapped, errThing) {
		t.Fatalf("expected wrapped error to match sentinel")
	}
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("expected wrapped error to match kind")
	}
	if errThing.Error() != "thing not found" {
		t.Fatalf("unexpected message: %s", errThing.Error())
	}
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unauthorized", Kind(ErrUnauthorized, "missing token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", Kind(ErrForbidden, "role"), http.StatusForbidden, "FORBIDDEN"},
		{"not found", Kind(ErrNotFound, "x"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", Kind(ErrConflict, "dup"), http.StatusConflict, "CONFLICT"},
		{"insufficient", Kind(ErrInsufficientQuantity, "short"), http.StatusUnprocessableEntity, "INSUFFICIENT_QUANTITY"},
		{"validation", NewValidationError("quantity must be positive"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := FromError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestFromError_KeepsAppError(t *testing.T) {
	in := NewDomainErrorSimple("CUSTOM", "custom", http.StatusTeapot)
	if out := FromError(fmt.Errorf("wrap: %w", in)); out != in {
		t.Fatalf("expected the same app error back")
	}
}

func TestValidationError_Details(t *testing.T) {
	err := NewValidationError("a", "b")
	if err.Error() != "validation error: a; b" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	body := FromError(err).ToHTTPError()
	if len(body.Details) != 2 {
		t.Fatalf("expected details in body, got %+v", body)
	}
}
