package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse splits path into segments. It reports false when path is not a
// well-formed address; no partial result is returned.
func Parse(path string) ([]Segment, bool) {
	segs, err := Compile(path)
	if err != nil {
		return nil, false
	}
	return segs, true
}

// Compile is Parse with a descriptive error wrapping ErrSyntax.
func Compile(path string) ([]Segment, error) {
	if !strings.HasPrefix(path, Root) {
		return nil, fmt.Errorf("%w: path must start with '$'", ErrSyntax)
	}

	i := len(Root)
	segs := make([]Segment, 0)

	for i < len(path) {
		seg, next, err := parseSegment(path, i)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		i = next
	}

	return segs, nil
}

func parseSegment(path string, i int) (Segment, int, error) {
	switch path[i] {
	case '.':
		return parseDotSegment(path, i)
	case '[':
		return parseBracketSegment(path, i)
	default:
		r, _ := utf8.DecodeRuneInString(path[i:])
		return Segment{}, i, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, r, i)
	}
}

func parseDotSegment(path string, i int) (Segment, int, error) {
	i++ // consume '.'
	end := strings.IndexAny(path[i:], ".[")
	if end < 0 {
		end = len(path) - i
	}
	if end == 0 {
		return Segment{}, i, fmt.Errorf("%w: empty key after '.' at offset %d", ErrSyntax, i-1)
	}
	return Key(path[i : i+end]), i + end, nil
}

func parseBracketSegment(path string, i int) (Segment, int, error) {
	start := i
	i++ // consume '['
	if i < len(path) && path[i] == '"' {
		return parseQuotedKey(path, start, i+1)
	}
	return parseIndex(path, start, i)
}

func parseQuotedKey(path string, start, i int) (Segment, int, error) {
	var key strings.Builder
	for {
		if i >= len(path) {
			return Segment{}, i, fmt.Errorf("%w: missing closing '\"' for key at offset %d", ErrSyntax, start)
		}

		switch path[i] {
		case '\\':
			i++
			if i >= len(path) {
				return Segment{}, i, fmt.Errorf("%w: unterminated escape at offset %d", ErrSyntax, i-1)
			}
			_, size := utf8.DecodeRuneInString(path[i:])
			key.WriteString(path[i : i+size])
			i += size
			continue
		case '"':
			i++
			if i >= len(path) || path[i] != ']' {
				return Segment{}, i, fmt.Errorf("%w: missing ']' after key at offset %d", ErrSyntax, start)
			}
			return Key(key.String()), i + 1, nil
		}

		_, size := utf8.DecodeRuneInString(path[i:])
		key.WriteString(path[i : i+size])
		i += size
	}
}

func parseIndex(path string, start, i int) (Segment, int, error) {
	digitsStart := i
	for i < len(path) && path[i] != ']' {
		if !isDigit(path[i]) {
			r, _ := utf8.DecodeRuneInString(path[i:])
			return Segment{}, i, fmt.Errorf("%w: unexpected %q in index at offset %d", ErrSyntax, r, i)
		}
		i++
	}
	if i >= len(path) {
		return Segment{}, i, fmt.Errorf("%w: missing ']' for index at offset %d", ErrSyntax, start)
	}

	digits := path[digitsStart:i]
	if digits == "" {
		return Segment{}, i, fmt.Errorf("%w: empty index at offset %d", ErrSyntax, start)
	}

	index, err := strconv.Atoi(digits)
	if err != nil {
		return Segment{}, i, fmt.Errorf("%w: index %s out of range", ErrSyntax, digits)
	}

	return Index(index), i + 1, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
