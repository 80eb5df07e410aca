// Package structured renders reports as JSON or YAML documents for other
// programs to consume.
package structured

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/formatter"
)

// Encoding selects the document format.
type Encoding int

const (
	JSON Encoding = iota
	YAML
)

// Formatter implements machine-readable output.
type Formatter struct {
	writer   io.Writer
	encoding Encoding
}

// New creates a structured formatter writing to writer.
func New(writer io.Writer, encoding Encoding) formatter.Formatter {
	return &Formatter{
		writer:   writer,
		encoding: encoding,
	}
}

type lookupOutput struct {
	File  string `json:"file" yaml:"file"`
	Path  string `json:"path" yaml:"path"`
	Value any    `json:"value" yaml:"value"`
}

type searchOutput struct {
	Session       string      `json:"session" yaml:"session"`
	Text          string      `json:"text" yaml:"text"`
	CaseSensitive bool        `json:"case_sensitive" yaml:"case_sensitive"`
	Hits          []hitOutput `json:"hits" yaml:"hits"`
}

type hitOutput struct {
	Index     int         `json:"index" yaml:"index"`
	File      string      `json:"file" yaml:"file"`
	Path      string      `json:"path" yaml:"path"`
	DataPath  string      `json:"data_path" yaml:"data_path"`
	Name      string      `json:"name" yaml:"name"`
	Preview   string      `json:"preview" yaml:"preview"`
	Key       bool        `json:"key" yaml:"key"`
	Highlight *spanOutput `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

type spanOutput struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

type nodeOutput struct {
	File     string `json:"file" yaml:"file"`
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	DataPath string `json:"data_path" yaml:"data_path"`
	Depth    int    `json:"depth" yaml:"depth"`
	Kind     string `json:"kind" yaml:"kind"`
	Preview  string `json:"preview" yaml:"preview"`
}

type queryOutput struct {
	Expr    string         `json:"expr" yaml:"expr"`
	Results []lookupOutput `json:"results" yaml:"results"`
}

// Lookup emits a list of {file, path, value} records.
func (f *Formatter) Lookup(results []formatter.LookupResult) error {
	out := make([]lookupOutput, 0, len(results))
	for _, r := range results {
		out = append(out, lookupOutput{File: r.File, Path: r.Path, Value: f.value(r.Value)})
	}
	return f.write(out)
}

// Search emits the session with every hit and its highlight span.
func (f *Formatter) Search(report formatter.SearchReport) error {
	out := searchOutput{
		Session:       report.SessionID,
		Text:          report.Text,
		CaseSensitive: report.CaseSensitive,
		Hits:          make([]hitOutput, 0, len(report.Hits)),
	}
	for _, hit := range report.Hits {
		h := hitOutput{
			Index:    hit.Index,
			File:     hit.File,
			Path:     hit.DisplayPath,
			DataPath: hit.DataPath,
			Name:     hit.Name,
			Preview:  hit.Preview,
			Key:      hit.IsKey,
		}
		if hit.Highlight != nil {
			h.Highlight = &spanOutput{Start: hit.Highlight.Start, End: hit.Highlight.End}
		}
		out.Hits = append(out.Hits, h)
	}
	return f.write(out)
}

// Tree emits a flat list of nodes in walk order.
func (f *Formatter) Tree(nodes []formatter.TreeEntry) error {
	out := make([]nodeOutput, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeOutput{
			File:     n.File,
			Name:     n.Name,
			Path:     n.DisplayPath,
			DataPath: n.DataPath,
			Depth:    n.Depth,
			Kind:     n.Kind().String(),
			Preview:  n.Preview,
		})
	}
	return f.write(out)
}

// Query emits the expression and every selected node.
func (f *Formatter) Query(report formatter.QueryReport) error {
	out := queryOutput{
		Expr:    report.Expr,
		Results: make([]lookupOutput, 0, len(report.Results)),
	}
	for _, r := range report.Results {
		out.Results = append(out.Results, lookupOutput{File: r.File, Path: r.DataPath, Value: f.value(r.Value)})
	}
	return f.write(out)
}

func (f *Formatter) value(v document.Value) any {
	if f.encoding == YAML {
		return yamlValue(v)
	}
	return v
}

func (f *Formatter) write(v any) error {
	var (
		data []byte
		err  error
	)

	switch f.encoding {
	case YAML:
		data, err = yaml.Marshal(v)
	default:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = f.writer.Write(data)
	return err
}

// yamlValue converts v into values go-yaml encodes in block style, keeping
// object member order with MapSlice.
func yamlValue(v document.Value) any {
	switch val := v.(type) {
	case nil, document.Null:
		return nil
	case document.Bool:
		return bool(val)
	case document.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return string(val)
	case document.String:
		return string(val)
	case document.Array:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = yamlValue(elem)
		}
		return out
	case *document.Object:
		out := make(yaml.MapSlice, 0, val.Len())
		for key, elem := range val.Members() {
			out = append(out, yaml.MapItem{Key: key, Value: yamlValue(elem)})
		}
		return out
	default:
		return nil
	}
}
