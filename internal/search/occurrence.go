// Package search finds literal pattern occurrences in node text and maps a
// global match index back to the span to highlight inside one node.
//
// All offsets are rune offsets, never byte offsets.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Occurrence is a half-open rune span [Start, End).
type Occurrence struct {
	Start int
	End   int
}

// FindAll returns every occurrence of pattern in text in order of their start.
// Matching resumes one rune after each match start, so overlapping matches are
// all reported: "aa" in "aaa" yields [0,2) and [1,3). An empty pattern has no
// occurrences. Without caseSensitive both sides are lower-cased rune by rune.
func FindAll(text, pattern string, caseSensitive bool) []Occurrence {
	if pattern == "" {
		return nil
	}
	if caseSensitive {
		return findExact(text, pattern)
	}
	return findFolded(text, pattern)
}

func findExact(text, pattern string) []Occurrence {
	var out []Occurrence
	patternRunes := utf8.RuneCountInString(pattern)

	offset := 0     // bytes consumed
	runeOffset := 0 // runes in text[:offset]
	for offset < len(text) {
		i := strings.Index(text[offset:], pattern)
		if i < 0 {
			break
		}

		runeOffset += utf8.RuneCountInString(text[offset : offset+i])
		out = append(out, Occurrence{Start: runeOffset, End: runeOffset + patternRunes})

		_, size := utf8.DecodeRuneInString(text[offset+i:])
		offset += i + size
		runeOffset++
	}

	return out
}

func findFolded(text, pattern string) []Occurrence {
	var out []Occurrence

	needle := []rune(pattern)
	for i, r := range needle {
		needle[i] = unicode.ToLower(r)
	}
	haystack := []rune(text)

	for start := 0; start+len(needle) <= len(haystack); start++ {
		matched := true
		for j, want := range needle {
			if unicode.ToLower(haystack[start+j]) != want {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, Occurrence{Start: start, End: start + len(needle)})
		}
	}

	return out
}

// Slice returns the part of text covered by o, clamped to text.
func (o Occurrence) Slice(text string) string {
	runes := []rune(text)
	start := min(max(o.Start, 0), len(runes))
	end := min(max(o.End, start), len(runes))
	return string(runes[start:end])
}
