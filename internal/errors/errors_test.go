package errors

import (
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(CodeExitFailure, "interpreter exited with status 1")
	if plain.Error() != "EXIT_FAILURE: interpreter exited with status 1" {
		t.Errorf("Unexpected error string: %q", plain.Error())
	}

	wrapped := Wrap(fmt.Errorf("boom"), CodeConfigInvalid, "bad config")
	if wrapped.Error() != "CONFIG_INVALID: bad config - boom" {
		t.Errorf("Unexpected error string: %q", wrapped.Error())
	}
	if wrapped.Unwrap() == nil {
		t.Error("Expected Unwrap to expose the cause")
	}
}

func TestHasCode(t *testing.T) {
	inner := New(CodeInterpreterNotFound, "no binary")
	outer := fmt.Errorf("running case: %w", inner)

	if !HasCode(outer, CodeInterpreterNotFound) {
		t.Error("Expected HasCode to find the wrapped code")
	}
	if HasCode(outer, CodeExitFailure) {
		t.Error("Expected HasCode to reject a different code")
	}
	if HasCode(nil, CodeExitFailure) {
		t.Error("Expected HasCode(nil) to be false")
	}
	if HasCode(fmt.Errorf("plain"), CodeExitFailure) {
		t.Error("Expected HasCode to be false for non-harness errors")
	}
}
