package structured

import (
	"bytes"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/document/documenttest"
	"github.com/arjunguha/slopjson/internal/formatter"
	"github.com/arjunguha/slopjson/internal/lookup"
	"github.com/arjunguha/slopjson/internal/search"
	"github.com/arjunguha/slopjson/internal/tree"
)

func TestLookupJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	results := []formatter.LookupResult{
		{File: "a.json", Path: "$.o", Value: documenttest.Decode(t, `{"z": 1, "a": [true, null], "m": "s"}`)},
	}
	if err := New(&buf, JSON).Lookup(results); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	out := documenttest.Decode(t, buf.String())
	value, ok := lookup.Value(out, "$[0].value")
	if !ok {
		t.Fatalf("output %s has no value", buf.String())
	}
	if got := value.(*document.Object).Keys(); !slices.Equal(got, []string{"z", "a", "m"}) {
		t.Fatalf("Keys() = %v, want z a m", got)
	}
	if file, _ := lookup.Value(out, "$[0].file"); file != document.String("a.json") {
		t.Fatalf("file = %#v", file)
	}
}

func TestLookupYAMLKeepsOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	results := []formatter.LookupResult{
		{File: "a.json", Path: "$.o", Value: documenttest.Decode(t, `{"z": 1, "a": 2.5, "m": {"k": "v"}}`)},
	}
	if err := New(&buf, YAML).Lookup(results); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	var decoded []struct {
		File  string        `yaml:"file"`
		Path  string        `yaml:"path"`
		Value yaml.MapSlice `yaml:"value"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal(%s) error = %v", buf.String(), err)
	}
	if len(decoded) != 1 || decoded[0].File != "a.json" || decoded[0].Path != "$.o" {
		t.Fatalf("decoded = %+v", decoded)
	}

	var keys []string
	for _, item := range decoded[0].Value {
		keys = append(keys, item.Key.(string))
	}
	if !slices.Equal(keys, []string{"z", "a", "m"}) {
		t.Fatalf("keys = %v, want z a m", keys)
	}
}

func TestSearchJSON(t *testing.T) {
	t.Parallel()

	report := formatter.SearchReport{
		SessionID: "3f1c",
		Text:      "x",
		Hits: []formatter.SearchHit{
			{Hit: search.Hit{Index: 0, Name: "x", DisplayPath: "$.x", DataPath: "$.x", IsKey: true}, File: "a.json"},
			{Hit: search.Hit{Index: 1, Name: "x", Preview: "axb", DisplayPath: "$.x", DataPath: "$.x"}, File: "a.json", Highlight: &search.Occurrence{Start: 1, End: 2}},
		},
	}

	var buf bytes.Buffer
	if err := New(&buf, JSON).Search(report); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	out := documenttest.Decode(t, buf.String())
	checks := map[string]document.Value{
		"$.session":                 document.String("3f1c"),
		"$.case_sensitive":          document.Bool(false),
		"$.hits[0].key":             document.Bool(true),
		"$.hits[1].preview":         document.String("axb"),
		"$.hits[1].highlight.start": document.Number("1"),
		"$.hits[1].highlight.end":   document.Number("2"),
	}
	for path, want := range checks {
		if got, ok := lookup.Value(out, path); !ok || !document.Equal(got, want) {
			t.Fatalf("%s = %#v, want %#v", path, got, want)
		}
	}
	if _, ok := lookup.Value(out, "$.hits[0].highlight"); ok {
		t.Fatal("key hit should have no highlight")
	}
}

func TestTreeAndQueryJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := New(&buf, JSON)

	nodes := []formatter.TreeEntry{{
		Node: tree.Node{Name: "a", Preview: "{1 key}", DisplayPath: "$.a", DataPath: "$.a", Depth: 1, Value: document.NewObject()},
		File: "doc.json",
	}}
	if err := f.Tree(nodes); err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	out := documenttest.Decode(t, buf.String())
	if kind, _ := lookup.Value(out, "$[0].kind"); kind != document.String("object") {
		t.Fatalf("kind = %#v, want object", kind)
	}

	buf.Reset()
	report := formatter.QueryReport{
		Expr:    "$..id",
		Results: []formatter.QueryResult{{File: "a.jsonl", DataPath: "$[0].id", Value: document.Number("7")}},
	}
	if err := f.Query(report); err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	out = documenttest.Decode(t, buf.String())
	if got, _ := lookup.Value(out, "$.results[0].value"); got != document.Number("7") {
		t.Fatalf("value = %#v, want 7", got)
	}
	if got, _ := lookup.Value(out, "$.expr"); got != document.String("$..id") {
		t.Fatalf("expr = %#v", got)
	}
}

func TestYAMLValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   document.Value
		want any
	}{
		{document.Null{}, nil},
		{document.Bool(true), true},
		{document.Number("12"), int64(12)},
		{document.Number("1.5"), 1.5},
		{document.String("s"), "s"},
	}

	for _, tt := range tests {
		if got := yamlValue(tt.in); got != tt.want {
			t.Fatalf("yamlValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
