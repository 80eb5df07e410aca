// Package lookup resolves slopjson paths against decoded documents.
//
// Every function is total: a malformed path, a missing member, an index out of
// range or a segment applied to the wrong kind of node reports false.
package lookup

import (
	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/jsonpath"
)

// Value returns the node of root addressed by path.
func Value(root document.Value, path string) (document.Value, bool) {
	segs, ok := jsonpath.Parse(path)
	if !ok {
		return nil, false
	}
	return Segments(root, segs)
}

// Segments walks segs from root.
func Segments(root document.Value, segs []jsonpath.Segment) (document.Value, bool) {
	if root == nil {
		return nil, false
	}

	current := root
	for _, seg := range segs {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// InCollection resolves path against line-delimited values. The first segment
// must be an index selecting the line; the empty path has no value here.
func InCollection(values []document.Value, path string) (document.Value, bool) {
	segs, ok := jsonpath.Parse(path)
	if !ok || len(segs) == 0 {
		return nil, false
	}

	first := segs[0]
	if !first.IsIndex() {
		return nil, false
	}

	i := first.Position()
	if i < 0 || i >= len(values) {
		return nil, false
	}

	return Segments(values[i], segs[1:])
}

func step(v document.Value, seg jsonpath.Segment) (document.Value, bool) {
	if seg.IsIndex() {
		arr, ok := v.(document.Array)
		if !ok {
			return nil, false
		}
		i := seg.Position()
		if i < 0 || i >= len(arr) {
			return nil, false
		}
		return arr[i], true
	}

	obj, ok := v.(*document.Object)
	if !ok {
		return nil, false
	}
	return obj.Get(seg.Name())
}
