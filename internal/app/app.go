// Package app runs one slopjson command over a set of input files.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/arjunguha/slopjson/internal/config"
	"github.com/arjunguha/slopjson/internal/exit"
	"github.com/arjunguha/slopjson/internal/formatter"
	"github.com/arjunguha/slopjson/internal/formatter/structured"
	"github.com/arjunguha/slopjson/internal/formatter/text"
	"github.com/arjunguha/slopjson/internal/jsonpath"
	"github.com/arjunguha/slopjson/internal/loader"
	"github.com/arjunguha/slopjson/internal/query"
	"github.com/arjunguha/slopjson/internal/search"
	"github.com/arjunguha/slopjson/internal/store"
	"github.com/arjunguha/slopjson/internal/tree"
)

// stdinName is how standard input appears in output.
const stdinName = "<stdin>"

var errNothingSelected = errors.New("nothing selected")

// App executes the command described by a Config.
type App struct {
	config    *config.Config
	formatter formatter.Formatter
	stdin     io.Reader
	stderr    io.Writer
	logger    *slog.Logger
}

// input is one loaded file.
type input struct {
	name string
	doc  *store.Document
}

// New creates an App writing results to stdout and diagnostics to stderr.
func New(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *App {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}

	return &App{
		config:    cfg,
		formatter: newFormatter(cfg, stdout),
		stdin:     stdin,
		stderr:    stderr,
		logger:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
}

func newFormatter(cfg *config.Config, stdout io.Writer) formatter.Formatter {
	switch cfg.Format {
	case config.FormatJSON:
		return structured.New(stdout, structured.JSON)
	case config.FormatYAML:
		return structured.New(stdout, structured.YAML)
	}

	var colored bool
	switch cfg.Color {
	case config.ColorAlways:
		colored = true
	case config.ColorNever:
		colored = false
	default:
		colored = !color.NoColor && stdout == io.Writer(os.Stdout)
	}
	return text.New(stdout, colored)
}

// Run loads every input file and executes the configured command. It
// returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	inputs, err := a.load(ctx)
	if err != nil {
		return a.fail(err)
	}

	switch a.config.Command {
	case config.CommandGet:
		err = a.get(inputs)
	case config.CommandSearch:
		err = a.search(inputs)
	case config.CommandTree:
		err = a.tree(inputs)
	case config.CommandQuery:
		err = a.query(inputs)
	default:
		err = fmt.Errorf("%w: %s", config.ErrUnknownCommand, a.config.Command)
	}

	if errors.Is(err, errNothingSelected) {
		a.logger.Debug("no results", "command", a.config.Command, "operand", a.config.Operand)
		return exit.CodeNotFound
	}
	if err != nil {
		return a.fail(err)
	}
	return exit.CodeOK
}

func (a *App) fail(err error) int {
	result := exit.Errorf("Error: %v\n", err).To(a.stderr)
	result.Print()
	return result.ExitCode
}

func (a *App) load(ctx context.Context) ([]input, error) {
	inputs := make([]input, 0, len(a.config.Files))
	opts := loader.Options{Lines: a.config.Lines, Stdin: a.stdin}

	for _, file := range a.config.Files {
		start := time.Now()
		doc, err := loader.Load(ctx, file, opts)
		if err != nil {
			return nil, err
		}

		name := file
		if file == loader.Stdin {
			name = stdinName
		}
		a.logger.Debug("loaded input",
			"file", name, "lines", doc.IsLines(), "documents", doc.Len(), "duration", time.Since(start))
		inputs = append(inputs, input{name: name, doc: doc})
	}

	return inputs, nil
}

func (a *App) get(inputs []input) error {
	segments, err := jsonpath.Compile(a.config.Operand)
	if err != nil {
		return err
	}
	path := jsonpath.Format(segments)

	var results []formatter.LookupResult
	for _, in := range inputs {
		value, ok := in.doc.Lookup(a.config.Operand)
		if !ok {
			a.logger.Debug("path not found", "file", in.name, "path", path)
			continue
		}
		results = append(results, formatter.LookupResult{File: in.name, Path: path, Value: value})
	}

	if len(results) == 0 {
		exit.NotFound("%s: no value at %s\n", a.config.Operand, path).To(a.stderr).Print()
		return errNothingSelected
	}
	return a.formatter.Lookup(results)
}

func (a *App) search(inputs []input) error {
	session := search.NewSession(a.walk(inputs), a.config.Operand, a.config.CaseSensitive())
	a.logger.Debug("search complete", "session", session.ID, "hits", session.Len())

	report := formatter.SearchReport{
		SessionID:     session.ID.String(),
		Text:          session.Text,
		CaseSensitive: session.CaseSensitive,
		Hits:          make([]formatter.SearchHit, 0, session.Len()),
	}
	for i := range session.Len() {
		hit, occ, ok := session.Highlight(i)
		entry := formatter.SearchHit{Hit: hit, File: inputs[hit.DocID].name}
		if ok {
			entry.Highlight = &occ
		}
		report.Hits = append(report.Hits, entry)
	}

	if err := a.formatter.Search(report); err != nil {
		return err
	}
	if session.Len() == 0 {
		return errNothingSelected
	}
	return nil
}

func (a *App) tree(inputs []input) error {
	var entries []formatter.TreeEntry
	for node := range a.walk(inputs) {
		entries = append(entries, formatter.TreeEntry{Node: node, File: inputs[node.DocID].name})
	}
	return a.formatter.Tree(entries)
}

func (a *App) query(inputs []input) error {
	if err := query.Validate(a.config.Operand); err != nil {
		return err
	}

	report := formatter.QueryReport{Expr: a.config.Operand}
	for _, in := range inputs {
		selected, err := query.Select(in.doc, a.config.Operand)
		if err != nil {
			return err
		}
		for _, r := range selected {
			report.Results = append(report.Results, formatter.QueryResult{File: in.name, DataPath: r.DataPath, Value: r.Value})
		}
	}

	if err := a.formatter.Query(report); err != nil {
		return err
	}
	if len(report.Results) == 0 {
		return errNothingSelected
	}
	return nil
}

// walk chains the trees of every input, using the input position as the
// document id.
func (a *App) walk(inputs []input) iter.Seq[tree.Node] {
	seqs := make([]iter.Seq[tree.Node], 0, len(inputs))
	for i, in := range inputs {
		seqs = append(seqs, tree.Walk(in.doc, tree.Source{
			Name:         in.name,
			ID:           int64(i),
			PreviewRunes: a.config.PreviewRunes,
		}))
	}
	return tree.Chain(seqs...)
}
