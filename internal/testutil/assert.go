// Package testutil holds the small assertion helpers used by the internal
// package tests. Helpers fail the test immediately so broken preconditions
// don't cascade into follow-up failures.
package testutil

import (
	"fmt"
	"strings"
	"testing"
)

// Equal fails the test unless got equals want.
func Equal[T comparable](t *testing.T, want, got T, msgAndArgs ...any) {
	t.Helper()
	if got != want {
		t.Fatalf("%sgot %v, want %v", prefix(msgAndArgs), got, want)
	}
}

// NotNil fails the test when v is nil.
func NotNil[T any](t *testing.T, v *T, msgAndArgs ...any) {
	t.Helper()
	if v == nil {
		t.Fatalf("%sunexpected nil", prefix(msgAndArgs))
	}
}

// Nil fails the test when v is not nil.
func Nil[T any](t *testing.T, v *T, msgAndArgs ...any) {
	t.Helper()
	if v != nil {
		t.Fatalf("%sgot %v, want nil", prefix(msgAndArgs), v)
	}
}

// Len fails the test unless s has exactly want elements.
func Len[T any](t *testing.T, s []T, want int, msgAndArgs ...any) {
	t.Helper()
	if len(s) != want {
		t.Fatalf("%sgot %d elements, want %d", prefix(msgAndArgs), len(s), want)
	}
}

// True fails the test when cond is false.
func True(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if !cond {
		t.Fatalf("%scondition is false", prefix(msgAndArgs))
	}
}

// False fails the test when cond is true.
func False(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if cond {
		t.Fatalf("%scondition is true", prefix(msgAndArgs))
	}
}

// Contains fails the test unless s contains substr.
func Contains(t *testing.T, s, substr string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("%s%q does not contain %q", prefix(msgAndArgs), s, substr)
	}
}

// NoError fails the test when err is non-nil.
func NoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs), err)
	}
}

// ErrorContains fails the test unless err is non-nil and its message
// contains substr.
func ErrorContains(t *testing.T, err error, substr string, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("%sgot nil error, want one containing %q", prefix(msgAndArgs), substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("%serror %q does not contain %q", prefix(msgAndArgs), err.Error(), substr)
	}
}

func prefix(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	msg, ok := msgAndArgs[0].(string)
	if !ok {
		return ""
	}
	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msg, msgAndArgs[1:]...)
	}
	return msg + ": "
}
