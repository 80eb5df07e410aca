package search

import (
	"iter"

	"github.com/google/uuid"

	"github.com/arjunguha/slopjson/internal/tree"
)

// Hit is one globally indexed match found by a Session.
type Hit struct {
	Index       int
	DocID       int64
	Name        string
	Preview     string
	DisplayPath string
	DataPath    string
	IsKey       bool
}

type nodeKey struct {
	docID int64
	path  string
}

// Session is the result of one search pass over a sequence of nodes.
// Global indices follow discovery order: for each node its key hit (if any)
// comes first, then one hit per occurrence in its scalar preview.
type Session struct {
	ID            uuid.UUID
	Text          string
	CaseSensitive bool

	hits   []Hit
	byNode map[nodeKey][]Match
}

// NewSession searches nodes for text.
func NewSession(nodes iter.Seq[tree.Node], text string, caseSensitive bool) *Session {
	s := &Session{
		ID:            uuid.New(),
		Text:          text,
		CaseSensitive: caseSensitive,
		byNode:        make(map[nodeKey][]Match),
	}
	if text == "" {
		return s
	}

	for node := range nodes {
		if node.IsKey && len(FindAll(node.Name, text, caseSensitive)) > 0 {
			s.add(node, true)
		}
		if node.Kind().IsContainer() {
			continue
		}
		for range FindAll(node.Preview, text, caseSensitive) {
			s.add(node, false)
		}
	}

	return s
}

func (s *Session) add(node tree.Node, isKey bool) {
	hit := Hit{
		Index:       len(s.hits),
		DocID:       node.DocID,
		Name:        node.Name,
		Preview:     node.Preview,
		DisplayPath: node.DisplayPath,
		DataPath:    node.DataPath,
		IsKey:       isKey,
	}
	s.hits = append(s.hits, hit)

	key := nodeKey{docID: node.DocID, path: node.DataPath}
	s.byNode[key] = append(s.byNode[key], Match{Index: hit.Index, IsKey: isKey})
}

// Len returns the number of hits.
func (s *Session) Len() int {
	return len(s.hits)
}

// Hits returns every hit in global index order.
func (s *Session) Hits() []Hit {
	return s.hits
}

// MatchesFor returns the matches recorded for one node.
func (s *Session) MatchesFor(docID int64, dataPath string) []Match {
	return s.byNode[nodeKey{docID: docID, path: dataPath}]
}

// Highlight returns the hit with the given global index and, for value hits,
// the span of its preview to highlight.
func (s *Session) Highlight(index int) (Hit, Occurrence, bool) {
	if index < 0 || index >= len(s.hits) {
		return Hit{}, Occurrence{}, false
	}

	hit := s.hits[index]
	occ, ok := Resolve(s.MatchesFor(hit.DocID, hit.DataPath), index, hit.Preview, s.Text, s.CaseSensitive)
	return hit, occ, ok
}
