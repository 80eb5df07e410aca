// Package formatter defines the reports slopjson commands produce and the
// interface that renders them.
package formatter

import (
	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/search"
	"github.com/arjunguha/slopjson/internal/tree"
)

// Formatter renders command results. Implementations decide where the
// output goes.
type Formatter interface {
	Lookup(results []LookupResult) error
	Search(report SearchReport) error
	Tree(nodes []TreeEntry) error
	Query(report QueryReport) error
}

// LookupResult is the value found at Path in File.
type LookupResult struct {
	File  string
	Path  string
	Value document.Value
}

// SearchReport holds every hit of one search session.
type SearchReport struct {
	SessionID     string
	Text          string
	CaseSensitive bool
	Hits          []SearchHit
}

// SearchHit is a session hit with the span to highlight inside its preview.
// Highlight is nil for key hits and for value hits with no locatable span.
type SearchHit struct {
	search.Hit
	File      string
	Highlight *search.Occurrence
}

// TreeEntry is one walked node and the file it came from.
type TreeEntry struct {
	tree.Node
	File string
}

// QueryReport holds the nodes an RFC 9535 expression selected across files.
type QueryReport struct {
	Expr    string
	Results []QueryResult
}

// QueryResult is one selected node.
type QueryResult struct {
	File     string
	DataPath string
	Value    document.Value
}

// Files returns the distinct file names of results in first-seen order.
func Files[T interface{ FileName() string }](items []T) []string {
	seen := make(map[string]struct{})
	var files []string
	for _, item := range items {
		name := item.FileName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		files = append(files, name)
	}
	return files
}

func (r LookupResult) FileName() string { return r.File }
func (h SearchHit) FileName() string    { return h.File }
func (e TreeEntry) FileName() string    { return e.File }
func (r QueryResult) FileName() string  { return r.File }
