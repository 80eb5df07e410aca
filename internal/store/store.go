// Package store holds loaded documents and resolves paths against them.
package store

import (
	"slices"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/jsonpath"
	"github.com/arjunguha/slopjson/internal/lookup"
)

// Document is either a single JSON value or a line-delimited collection.
// It is immutable once constructed.
type Document struct {
	root    document.Value
	lines   []document.Value
	summary *document.Object
	isLines bool
}

// NewSingle wraps one decoded value.
func NewSingle(v document.Value) *Document {
	return &Document{root: v}
}

// NewLines wraps line-delimited values and computes the {"lines": N} summary.
func NewLines(values []document.Value) *Document {
	lines := slices.Clone(values)
	return &Document{
		lines:   lines,
		isLines: true,
		summary: document.NewObject(document.Member{
			Key:   "lines",
			Value: document.NumberFromInt(len(lines)),
		}),
	}
}

// IsLines reports whether the document is a line collection.
func (d *Document) IsLines() bool {
	return d.isLines
}

// Root returns the single value, or the summary for a line collection.
func (d *Document) Root() document.Value {
	if d.isLines {
		return d.summary
	}
	return d.root
}

// Lines returns the values of a line collection.
func (d *Document) Lines() []document.Value {
	return slices.Clone(d.lines)
}

// Summary returns the {"lines": N} summary; nil for single documents.
func (d *Document) Summary() document.Value {
	if !d.isLines {
		return nil
	}
	return d.summary
}

// Len returns the number of lines, or 1 for a single document.
func (d *Document) Len() int {
	if d.isLines {
		return len(d.lines)
	}
	return 1
}

// Lookup resolves path. For a line collection the root path "$" yields the
// summary instead of failing.
func (d *Document) Lookup(path string) (document.Value, bool) {
	if !d.isLines {
		return lookup.Value(d.root, path)
	}
	if path == jsonpath.Root {
		return d.summary, true
	}
	return lookup.InCollection(d.lines, path)
}
