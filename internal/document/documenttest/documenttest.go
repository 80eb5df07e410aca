// Package documenttest provides helpers for tests that build documents from
// JSON literals.
package documenttest

import (
	"strings"
	"testing"

	"github.com/arjunguha/slopjson/internal/document"
)

// Decode decodes s and fails the test when it is not a single JSON value.
func Decode(tb testing.TB, s string) document.Value {
	tb.Helper()

	v, err := document.Decode(strings.NewReader(s))
	if err != nil {
		tb.Fatalf("document.Decode(%q) error = %v", s, err)
	}
	return v
}
