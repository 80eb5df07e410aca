// Package preview renders the one-line text shown next to a tree node.
// Search runs over this text, so highlight offsets refer to it.
package preview

import (
	"strconv"
	"unicode/utf8"

	"github.com/arjunguha/slopjson/internal/document"
)

// DefaultMaxRunes bounds previews of long strings.
const DefaultMaxRunes = 200

const ellipsis = "…"

// Format renders v. Strings are shown without quotes, containers as a count.
// Text longer than maxRunes is cut and suffixed with an ellipsis; maxRunes <= 0
// disables truncation.
func Format(v document.Value, maxRunes int) string {
	return Truncate(render(v), maxRunes)
}

func render(v document.Value) string {
	switch tv := v.(type) {
	case document.Null:
		return "null"
	case document.Bool:
		return strconv.FormatBool(bool(tv))
	case document.Number:
		return string(tv)
	case document.String:
		return string(tv)
	case document.Array:
		return "[" + plural(len(tv), "item", "items") + "]"
	case *document.Object:
		return "{" + plural(tv.Len(), "key", "keys") + "}"
	default:
		return ""
	}
}

// Truncate cuts s to at most maxRunes runes plus an ellipsis.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + ellipsis
		}
		n++
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
