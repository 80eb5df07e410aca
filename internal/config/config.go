package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/arjunguha/slopjson/internal/exit"
	"github.com/arjunguha/slopjson/internal/preview"
)

// Command selects what slopjson does with its input files.
type Command string

const (
	CommandGet    Command = "get"
	CommandSearch Command = "search"
	CommandTree   Command = "tree"
	CommandQuery  Command = "query"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ColorMode controls highlighting in text output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// StdinFile is used when no input files are named.
const StdinFile = "-"

var (
	ErrNoArguments     = errors.New("no arguments provided")
	ErrNoCommand       = errors.New("no command specified")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingOperand  = errors.New("missing operand")
	ErrInvalidFormat   = errors.New("format must be one of text, json, yaml")
	ErrInvalidColor    = errors.New("color must be one of auto, always, never")
	ErrNegativePreview = errors.New("preview length cannot be negative")
)

// Config represents the complete configuration for the slopjson tool.
type Config struct {
	Command Command
	// Operand is the path for get, the text for search and the expression
	// for query. Tree takes none.
	Operand string
	Files   []string

	CaseInsensitive bool
	Lines           bool
	Format          Format
	Color           ColorMode
	PreviewRunes    int
	Debug           bool

	ConfigFile string
}

// Default returns the configuration used before any file or flag applies.
func Default() *Config {
	return &Config{
		Format:       FormatText,
		Color:        ColorAuto,
		PreviewRunes: preview.DefaultMaxRunes,
	}
}

// CaseSensitive reports whether search compares text exactly.
func (c *Config) CaseSensitive() bool {
	return !c.CaseInsensitive
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	switch c.Command {
	case "":
		return ErrNoCommand
	case CommandGet, CommandSearch, CommandQuery:
		if c.Operand == "" {
			return fmt.Errorf("%w: %s needs an operand", ErrMissingOperand, c.Command)
		}
	case CommandTree:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, c.Command)
	}

	if !slices.Contains([]Format{FormatText, FormatJSON, FormatYAML}, c.Format) {
		return fmt.Errorf("%w, got: %s", ErrInvalidFormat, c.Format)
	}
	if !slices.Contains([]ColorMode{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("%w, got: %s", ErrInvalidColor, c.Color)
	}
	if c.PreviewRunes < 0 {
		return ErrNegativePreview
	}

	return nil
}

// fileConfig is the YAML shape of a -config file. Pointer fields tell unset
// keys apart from zero values.
type fileConfig struct {
	CaseInsensitive *bool   `yaml:"case_insensitive"`
	Lines           *bool   `yaml:"lines"`
	Format          *string `yaml:"format"`
	Color           *string `yaml:"color"`
	Preview         *int    `yaml:"preview"`
	Debug           *bool   `yaml:"debug"`
}

// LoadFile applies the settings in a YAML config file on top of c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if fc.CaseInsensitive != nil {
		c.CaseInsensitive = *fc.CaseInsensitive
	}
	if fc.Lines != nil {
		c.Lines = *fc.Lines
	}
	if fc.Format != nil {
		c.Format = Format(*fc.Format)
	}
	if fc.Color != nil {
		c.Color = ColorMode(*fc.Color)
	}
	if fc.Preview != nil {
		c.PreviewRunes = *fc.Preview
	}
	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}
	c.ConfigFile = filename

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
// Settings resolve as defaults, then the -config file, then explicit flags.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	defaults := Default()
	var (
		configFile      = fs.String("config", "", "Path to a YAML file with default settings")
		caseInsensitive = fs.Bool("i", defaults.CaseInsensitive, "Search without regard to case")
		lines           = fs.Bool("lines", defaults.Lines, "Read every input as JSON Lines")
		format          = fs.String("format", string(defaults.Format), "Output format: text, json or yaml")
		color           = fs.String("color", string(defaults.Color), "Highlight matches: auto, always or never")
		previewRunes    = fs.Int("preview", defaults.PreviewRunes, "Maximum preview length in characters (0 for unlimited)")
		debug           = fs.Bool("debug", defaults.Debug, "Enable debug logging on stderr")
	)

	positional, err := parseInterspersed(fs, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	cfg := defaults
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			return nil, exit.Errorf("Error: %v\n", err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.CaseInsensitive = *caseInsensitive
		case "lines":
			cfg.Lines = *lines
		case "format":
			cfg.Format = Format(*format)
		case "color":
			cfg.Color = ColorMode(*color)
		case "preview":
			cfg.PreviewRunes = *previewRunes
		case "debug":
			cfg.Debug = *debug
		}
	})

	if len(positional) > 0 {
		cfg.Command = Command(positional[0])
		positional = positional[1:]
	}
	if cfg.Command != CommandTree && len(positional) > 0 {
		cfg.Operand = positional[0]
		positional = positional[1:]
	}
	cfg.Files = positional
	if len(cfg.Files) == 0 {
		cfg.Files = []string{StdinFile}
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return cfg, nil
}

// parseInterspersed lets flags follow positional arguments, so
// "slopjson search needle data.json -i" works. Everything after "--" is
// positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		consumed := args[:len(args)-fs.NArg()]
		args = fs.Args()
		if len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			return append(positional, args...), nil
		}
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `slopjson - explore JSON and JSON Lines documents

Usage: slopjson [options] <command> [operand] [file ...]

Commands:
  get PATH       Print the value at a slopjson path such as $.items[0]["a b"]
  search TEXT    List every key and value containing TEXT
  tree           Print every node with its path and preview
  query EXPR     Evaluate an RFC 9535 JSONPath expression

Files ending in .jsonl or .ndjson are read as JSON Lines; .gz and .zst files
are decompressed. With no files, standard input is read.

Options:
  -config FILE      YAML file with default settings
  -i                Case-insensitive search
  -lines            Read every input as JSON Lines
  -format FORMAT    Output format: text, json, yaml (default: text)
  -color MODE       Highlight matches: auto, always, never (default: auto)
  -preview N        Maximum preview length in characters, 0 for unlimited (default: 200)
  -debug            Enable debug logging on stderr
  -h, -help         Show this help message

Examples:
  slopjson get '$.store.book[0].title' store.json
  slopjson search -i fiction store.json
  slopjson query '$..book[?@.price < 10]' store.json
  slopjson tree events.jsonl.gz`
}
