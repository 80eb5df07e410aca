package jsonpath

import (
	"strconv"
	"strings"
	"unicode"
)

// FormatComponent renders key as a path component: ".key" for identifiers,
// otherwise a quoted bracket with '\' and '"' escaped.
func FormatComponent(key string) string {
	if isIdentifier(key) {
		return "." + key
	}

	escaped := strings.ReplaceAll(key, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `["` + escaped + `"]`
}

// BuildObjectPath appends the component for key to base.
func BuildObjectPath(base, key string) string {
	return base + FormatComponent(key)
}

// BuildArrayPath appends "[index]" to base.
func BuildArrayPath(base string, index int) string {
	return base + "[" + strconv.Itoa(index) + "]"
}

// Format renders segments as a path rooted at "$".
func Format(segments []Segment) string {
	var b strings.Builder
	b.WriteString(Root)
	for _, seg := range segments {
		b.WriteString(seg.String())
	}
	return b.String()
}

// isIdentifier reports whether key can be written in dot form: non-empty,
// starting with a letter or underscore, letters, numbers and underscores only.
func isIdentifier(key string) bool {
	if key == "" {
		return false
	}

	for i, r := range key {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsNumber(r) {
			continue
		}
		return false
	}

	return true
}
