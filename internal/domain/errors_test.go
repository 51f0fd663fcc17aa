package domain

import (
	"errors"
	"testing"
)

func TestValidationError_UnwrapsSentinel(t *testing.T) {
	err := NewValidation("email", "Invalid email format")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected errors.Is(err, ErrValidation)")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected *ValidationError")
	}
	if ve.Field != "email" {
		t.Errorf("field = %q, want email", ve.Field)
	}
	if ve.Error() != "validation failed: Invalid email format" {
		t.Errorf("unexpected message: %q", ve.Error())
	}
}
