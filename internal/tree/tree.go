// Package tree walks a stored document and produces one record per node,
// carrying everything a renderer needs: name, preview, display path, data path
// and document id. Rendering itself lives elsewhere.
package tree

import (
	"fmt"
	"iter"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/jsonpath"
	"github.com/arjunguha/slopjson/internal/preview"
	"github.com/arjunguha/slopjson/internal/stack"
	"github.com/arjunguha/slopjson/internal/store"
)

// Source describes the document being walked.
type Source struct {
	// Name labels the root node, usually the file name.
	Name string
	// DisplayRoot prefixes display paths. Defaults to "$".
	DisplayRoot string
	// ID is copied to every node.
	ID int64
	// PreviewRunes bounds node previews; see preview.Format.
	PreviewRunes int
}

// Node is one visited node.
type Node struct {
	Name        string
	Preview     string
	DisplayPath string
	DataPath    string
	DocID       int64
	Depth       int
	// IsKey is set when Name is an object member key.
	IsKey bool
	Value document.Value
}

// Kind returns the kind of the node's value.
func (n Node) Kind() document.Kind {
	if n.Value == nil {
		return document.KindNull
	}
	return n.Value.Kind()
}

type frame struct {
	name        string
	value       document.Value
	displayPath string
	dataPath    string
	depth       int
	isKey       bool
}

// Walk visits doc in pre-order: a node, then its children in document order.
// For a line collection the root is a synthetic node whose value is the
// summary, followed by one "Line N" node per line.
func Walk(doc *store.Document, src Source) iter.Seq[Node] {
	displayRoot := src.DisplayRoot
	if displayRoot == "" {
		displayRoot = jsonpath.Root
	}

	return func(yield func(Node) bool) {
		frames := stack.New[frame](16)

		if doc.IsLines() {
			root := Node{
				Name:        src.Name + " (JSONL)",
				Preview:     fmt.Sprintf("%d objects", doc.Len()),
				DisplayPath: displayRoot,
				DataPath:    jsonpath.Root,
				DocID:       src.ID,
				Value:       doc.Summary(),
			}
			if !yield(root) {
				return
			}

			lines := doc.Lines()
			lineFrames := make([]frame, len(lines))
			for i, line := range lines {
				lineFrames[i] = frame{
					name:        fmt.Sprintf("Line %d", i+1),
					value:       line,
					displayPath: jsonpath.BuildArrayPath(displayRoot, i),
					dataPath:    jsonpath.BuildArrayPath(jsonpath.Root, i),
					depth:       1,
				}
			}
			frames.PushReverse(lineFrames...)
		} else {
			frames.Push(frame{
				name:        src.Name,
				value:       doc.Root(),
				displayPath: displayRoot,
				dataPath:    jsonpath.Root,
			})
		}

		for f := range frames.Drain() {
			node := Node{
				Name:        f.name,
				Preview:     preview.Format(f.value, src.PreviewRunes),
				DisplayPath: f.displayPath,
				DataPath:    f.dataPath,
				DocID:       src.ID,
				Depth:       f.depth,
				IsKey:       f.isKey,
				Value:       f.value,
			}
			if !yield(node) {
				return
			}

			frames.PushReverse(children(f)...)
		}
	}
}

// Chain concatenates node sequences, e.g. the walks of several documents.
func Chain(seqs ...iter.Seq[Node]) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, seq := range seqs {
			for node := range seq {
				if !yield(node) {
					return
				}
			}
		}
	}
}

func children(parent frame) []frame {
	switch v := parent.value.(type) {
	case *document.Object:
		out := make([]frame, 0, v.Len())
		for key, child := range v.Members() {
			out = append(out, frame{
				name:        key,
				value:       child,
				displayPath: jsonpath.BuildObjectPath(parent.displayPath, key),
				dataPath:    jsonpath.BuildObjectPath(parent.dataPath, key),
				depth:       parent.depth + 1,
				isKey:       true,
			})
		}
		return out
	case document.Array:
		out := make([]frame, 0, len(v))
		for i, child := range v {
			out = append(out, frame{
				name:        fmt.Sprintf("[%d]", i),
				value:       child,
				displayPath: jsonpath.BuildArrayPath(parent.displayPath, i),
				dataPath:    jsonpath.BuildArrayPath(parent.dataPath, i),
				depth:       parent.depth + 1,
			})
		}
		return out
	default:
		return nil
	}
}
