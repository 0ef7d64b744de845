package spread

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{"remote with status", RemoteUnavailable(503, nil), 503},
		{"remote without status", RemoteUnavailable(0, errors.New("dial tcp")), http.StatusInternalServerError},
		{"insufficient data", InsufficientData(), http.StatusBadRequest},
		{"invalid type", InvalidAlertType("BIGGER"), http.StatusBadRequest},
		{"invalid value", InvalidValue("abc"), http.StatusBadRequest},
		{"alert not found", AlertNotFound(), http.StatusBadRequest},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.HTTPStatus(); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestClassifyPreservesTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("compute: %w", InsufficientData())
	if got := Classify(wrapped); got.Code != CodeInsufficientData {
		t.Fatalf("classification lost the code, got %s", got.Code)
	}
}

func TestClassifyDegradesToInternal(t *testing.T) {
	got := Classify(errors.New("surprise"))
	if got.Code != CodeInternal {
		t.Fatalf("want internal, got %s", got.Code)
	}
	if got.Message != "Internal server error." {
		t.Fatalf("internal detail must not leak, got %q", got.Message)
	}
}
