package lookup

import (
	"testing"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/document/documenttest"
	"github.com/arjunguha/slopjson/internal/jsonpath"
)

const sample = `{
  "foo": [{"bar": 1}, {"bar": 2, "my key": "spaced"}],
  "obj": {"x": {"y": "deep"}, "0": "zero key"},
  "quote\"d": true,
  "empty": {},
  "nothing": null
}`

func TestValue(t *testing.T) {
	t.Parallel()

	root := documenttest.Decode(t, sample)

	tests := []struct {
		name string
		path string
		want document.Value
	}{
		{name: "nested index", path: "$.foo[0].bar", want: document.Number("1")},
		{name: "bracket key", path: `$.foo[1]["my key"]`, want: document.String("spaced")},
		{name: "deep", path: "$.obj.x.y", want: document.String("deep")},
		{name: "numeric looking key", path: `$.obj["0"]`, want: document.String("zero key")},
		{name: "numeric dot key", path: "$.obj.0", want: document.String("zero key")},
		{name: "escaped key", path: `$["quote\"d"]`, want: document.Bool(true)},
		{name: "null member", path: "$.nothing", want: document.Null{}},
		{name: "empty object", path: "$.empty", want: document.NewObject()},
		{name: "root", path: "$", want: root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Value(root, tt.path)
			if !ok {
				t.Fatalf("Value(%q) not found", tt.path)
			}
			if !document.Equal(got, tt.want) {
				t.Fatalf("Value(%q) = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}
}

func TestValueNotFound(t *testing.T) {
	t.Parallel()

	root := documenttest.Decode(t, sample)

	tests := []struct {
		name string
		path string
	}{
		{name: "malformed", path: "$.foo[x]"},
		{name: "no root sigil", path: "foo"},
		{name: "missing key", path: "$.missing"},
		{name: "index out of range", path: "$.foo[2]"},
		{name: "key on array", path: "$.foo.bar"},
		{name: "index on object", path: "$.obj[0]"},
		{name: "key on scalar", path: "$.foo[0].bar.baz"},
		{name: "index on scalar", path: "$.obj.x.y[0]"},
		{name: "index on null", path: "$.nothing[0]"},
		{name: "key on empty object", path: "$.empty.a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got, ok := Value(root, tt.path); ok {
				t.Fatalf("Value(%q) = %#v, want not found", tt.path, got)
			}
		})
	}
}

func TestSegmentsOnArrayRoot(t *testing.T) {
	t.Parallel()

	root := documenttest.Decode(t, `[[10, 20], {"k": [30]}]`)

	got, ok := Segments(root, []jsonpath.Segment{jsonpath.Index(1), jsonpath.Key("k"), jsonpath.Index(0)})
	if !ok || got != document.Number("30") {
		t.Fatalf("Segments() = %#v, %v, want 30", got, ok)
	}

	if _, ok := Segments(root, []jsonpath.Segment{jsonpath.Key("k")}); ok {
		t.Fatal("Segments() with key on array root found a value")
	}

	if _, ok := Segments(nil, nil); ok {
		t.Fatal("Segments(nil) found a value")
	}
}

func TestInCollection(t *testing.T) {
	t.Parallel()

	values := []document.Value{
		documenttest.Decode(t, `{"name": "first"}`),
		documenttest.Decode(t, `{"name": "second", "value": 42}`),
	}

	tests := []struct {
		name  string
		path  string
		want  document.Value
		found bool
	}{
		{name: "line member", path: "$[1].value", want: document.Number("42"), found: true},
		{name: "whole line", path: "$[0]", want: values[0], found: true},
		{name: "root has no value", path: "$", found: false},
		{name: "leading key", path: "$.name", found: false},
		{name: "leading quoted key", path: `$["0"]`, found: false},
		{name: "line out of range", path: "$[2]", found: false},
		{name: "missing member", path: "$[0].value", found: false},
		{name: "malformed", path: "$[0", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := InCollection(values, tt.path)
			if ok != tt.found {
				t.Fatalf("InCollection(%q) found = %v, want %v", tt.path, ok, tt.found)
			}
			if tt.found && !document.Equal(got, tt.want) {
				t.Fatalf("InCollection(%q) = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}
}
