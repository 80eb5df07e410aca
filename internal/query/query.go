// Package query runs full RFC 9535 JSONPath expressions against a stored
// document and reports every selected node under its slopjson data path.
package query

import (
	"errors"
	"fmt"

	rfc "github.com/theory/jsonpath"
	"github.com/theory/jsonpath/spec"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/jsonpath"
	"github.com/arjunguha/slopjson/internal/store"
)

// ErrInvalidQuery indicates the expression is not valid RFC 9535 JSONPath.
var ErrInvalidQuery = errors.New("query: invalid expression")

// Result is one selected node.
type Result struct {
	DataPath string
	Value    document.Value
}

// Select evaluates expr against doc. A line collection is queried as an array
// of its lines, so "$[0].id" addresses the first line's id exactly as
// store.Document.Lookup does.
//
// Filters see numbers as float64, so comparisons of integers beyond 2^53 are
// approximate. Selected values are read back from doc and keep their exact
// text.
func Select(doc *store.Document, expr string) ([]Result, error) {
	path, err := rfc.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, expr, err)
	}

	located := path.SelectLocated(input(doc))
	results := make([]Result, 0, len(located))
	for _, node := range located {
		dataPath, ok := convert(node.Path)
		if !ok {
			continue
		}
		value, ok := doc.Lookup(dataPath)
		if !ok {
			continue
		}
		results = append(results, Result{DataPath: dataPath, Value: value})
	}

	return results, nil
}

// Validate reports whether expr is a valid RFC 9535 expression.
func Validate(expr string) error {
	if _, err := rfc.Parse(expr); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidQuery, expr, err)
	}
	return nil
}

func input(doc *store.Document) any {
	if !doc.IsLines() {
		return document.ToAny(doc.Root())
	}

	lines := doc.Lines()
	out := make([]any, len(lines))
	for i, line := range lines {
		out[i] = document.ToAny(line)
	}
	return out
}

// convert rewrites a normalized path such as $['a'][0] as $.a[0].
func convert(normalized spec.NormalizedPath) (string, bool) {
	path := jsonpath.Root
	for _, sel := range normalized {
		switch s := sel.(type) {
		case spec.Name:
			path = jsonpath.BuildObjectPath(path, string(s))
		case spec.Index:
			if s < 0 {
				return "", false
			}
			path = jsonpath.BuildArrayPath(path, int(s))
		default:
			return "", false
		}
	}
	return path, true
}
