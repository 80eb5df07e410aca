// Package text renders reports for a terminal, highlighting search matches.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/formatter"
	"github.com/arjunguha/slopjson/internal/search"
)

const indent = "  "

// Formatter implements human-readable output.
type Formatter struct {
	writer io.Writer

	path  *color.Color
	key   *color.Color
	match *color.Color
	muted *color.Color
}

// New creates a text formatter writing to writer. colored forces escape
// sequences on or off regardless of the terminal.
func New(writer io.Writer, colored bool) formatter.Formatter {
	f := &Formatter{
		writer: writer,
		path:   color.New(color.FgCyan),
		key:    color.New(color.FgBlue, color.Bold),
		match:  color.New(color.FgYellow, color.Bold, color.Underline),
		muted:  color.New(color.Faint),
	}

	for _, c := range []*color.Color{f.path, f.key, f.match, f.muted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

// Lookup prints each value as indented JSON, headed by its file name when
// more than one file was searched.
func (f *Formatter) Lookup(results []formatter.LookupResult) error {
	showFiles := len(formatter.Files(results)) > 1

	for _, r := range results {
		if showFiles {
			if _, err := fmt.Fprintf(f.writer, "%s:\n", f.path.Sprint(r.File)); err != nil {
				return err
			}
		}

		data, err := document.Indent(r.Value, indent)
		if err != nil {
			return fmt.Errorf("failed to encode value at %s: %w", r.Path, err)
		}
		if _, err := fmt.Fprintf(f.writer, "%s\n", data); err != nil {
			return err
		}
	}

	return nil
}

// Search prints one line per hit followed by a match count.
func (f *Formatter) Search(report formatter.SearchReport) error {
	showFiles := len(formatter.Files(report.Hits)) > 1

	for _, hit := range report.Hits {
		location := f.path.Sprint(hit.DisplayPath)
		if showFiles {
			location = f.path.Sprint(hit.File+":") + location
		}

		var body string
		if hit.IsKey {
			occurrences := search.FindAll(hit.Name, report.Text, report.CaseSensitive)
			var first *search.Occurrence
			if len(occurrences) > 0 {
				first = &occurrences[0]
			}
			body = f.muted.Sprint("key ") + f.highlight(hit.Name, first, f.key)
		} else {
			body = f.highlight(hit.Preview, hit.Highlight, nil)
		}

		if _, err := fmt.Fprintf(f.writer, "%s %s %s\n", f.muted.Sprintf("%d", hit.Index), location, body); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(f.writer, "%s\n", f.muted.Sprint(plural(len(report.Hits), "match", "matches")))
	return err
}

// Tree prints every node indented by depth.
func (f *Formatter) Tree(nodes []formatter.TreeEntry) error {
	for _, n := range nodes {
		name := n.Name
		if n.IsKey {
			name = f.key.Sprint(name)
		}

		_, err := fmt.Fprintf(f.writer, "%s%s: %s %s\n",
			strings.Repeat(indent, n.Depth), name, n.Preview, f.muted.Sprint(n.DisplayPath))
		if err != nil {
			return err
		}
	}

	return nil
}

// Query prints each selected node as its path and compact JSON value.
func (f *Formatter) Query(report formatter.QueryReport) error {
	showFiles := len(formatter.Files(report.Results)) > 1

	for _, r := range report.Results {
		data, err := r.Value.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to encode value at %s: %w", r.DataPath, err)
		}

		location := f.path.Sprint(r.DataPath)
		if showFiles {
			location = f.path.Sprint(r.File+":") + location
		}
		if _, err := fmt.Fprintf(f.writer, "%s %s\n", location, data); err != nil {
			return err
		}
	}

	return nil
}

// highlight colours the rune span occ of text with f.match, and the rest with
// rest when it is non-nil.
func (f *Formatter) highlight(text string, occ *search.Occurrence, rest *color.Color) string {
	paint := func(s string) string {
		if rest == nil || s == "" {
			return s
		}
		return rest.Sprint(s)
	}

	if occ == nil {
		return paint(text)
	}

	start, end := byteOffset(text, occ.Start), byteOffset(text, occ.End)
	if start >= end {
		return paint(text)
	}

	return paint(text[:start]) + f.match.Sprint(text[start:end]) + paint(text[end:])
}

// byteOffset converts a rune offset into a byte offset, clamped to len(s).
func byteOffset(s string, runes int) int {
	if runes <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runes {
			return i
		}
		n++
	}
	return len(s)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
