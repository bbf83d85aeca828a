package csv

import (
	"errors"
	"testing"
)

// TestIOError tests message formatting and unwrapping.
func TestIOError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &IOError{Op: "read", Row: 41, Err: cause}

	want := "csv: read failed at row 41: connection reset"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() failed to reach the underlying error")
	}
}
