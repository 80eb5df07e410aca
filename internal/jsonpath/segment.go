package jsonpath

import "strconv"

// Root is the path of the document root.
const Root = "$"

// Segment is one step of a path: either an object key or an array index.
type Segment struct {
	name    string
	index   int
	isIndex bool
}

// Key returns a segment selecting the object member named name.
func Key(name string) Segment {
	return Segment{name: name}
}

// Index returns a segment selecting the array element at position i.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

// IsIndex reports whether the segment selects an array element.
func (s Segment) IsIndex() bool {
	return s.isIndex
}

// Name returns the member name of a key segment.
func (s Segment) Name() string {
	return s.name
}

// Position returns the element position of an index segment.
func (s Segment) Position() int {
	return s.index
}

// String renders the segment as a single path component.
func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return FormatComponent(s.name)
}
