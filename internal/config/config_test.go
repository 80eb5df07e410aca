package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/arjunguha/slopjson/internal/exit"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "slopjson.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	configFile := writeConfig(t, "format: yaml\ncase_insensitive: true\npreview: 40\n")

	withDefaults := func(c Config) *Config {
		cfg := Default()
		cfg.Command = c.Command
		cfg.Operand = c.Operand
		cfg.Files = c.Files
		if c.Format != "" {
			cfg.Format = c.Format
		}
		if c.Color != "" {
			cfg.Color = c.Color
		}
		if c.PreviewRunes != 0 {
			cfg.PreviewRunes = c.PreviewRunes
		}
		cfg.CaseInsensitive = c.CaseInsensitive
		cfg.Lines = c.Lines
		cfg.Debug = c.Debug
		cfg.ConfigFile = c.ConfigFile
		return cfg
	}

	tests := []struct {
		name string
		args []string
		want *Config
	}{
		{
			name: "get single file",
			args: []string{"slopjson", "get", "$.a", "doc.json"},
			want: withDefaults(Config{Command: CommandGet, Operand: "$.a", Files: []string{"doc.json"}}),
		},
		{
			name: "search multiple files",
			args: []string{"slopjson", "search", "needle", "a.json", "b.jsonl"},
			want: withDefaults(Config{Command: CommandSearch, Operand: "needle", Files: []string{"a.json", "b.jsonl"}}),
		},
		{
			name: "tree has no operand",
			args: []string{"slopjson", "tree", "a.json"},
			want: withDefaults(Config{Command: CommandTree, Files: []string{"a.json"}}),
		},
		{
			name: "stdin when no files",
			args: []string{"slopjson", "query", "$..id"},
			want: withDefaults(Config{Command: CommandQuery, Operand: "$..id", Files: []string{StdinFile}}),
		},
		{
			name: "flags before and after positionals",
			args: []string{"slopjson", "-format", "json", "search", "needle", "a.json", "-i", "-lines", "-color", "never"},
			want: withDefaults(Config{
				Command: CommandSearch, Operand: "needle", Files: []string{"a.json"},
				Format: FormatJSON, Color: ColorNever, CaseInsensitive: true, Lines: true,
			}),
		},
		{
			name: "double dash keeps dashed operand",
			args: []string{"slopjson", "-debug", "search", "--", "-x", "a.json"},
			want: withDefaults(Config{Command: CommandSearch, Operand: "-x", Files: []string{"a.json"}, Debug: true}),
		},
		{
			name: "config file",
			args: []string{"slopjson", "-config", configFile, "search", "x", "a.json"},
			want: withDefaults(Config{
				Command: CommandSearch, Operand: "x", Files: []string{"a.json"},
				Format: FormatYAML, CaseInsensitive: true, PreviewRunes: 40, ConfigFile: configFile,
			}),
		},
		{
			name: "flags override config file",
			args: []string{"slopjson", "-config", configFile, "-format", "text", "-i=false", "-preview", "10", "search", "x"},
			want: withDefaults(Config{
				Command: CommandSearch, Operand: "x", Files: []string{StdinFile},
				Format: FormatText, PreviewRunes: 10, ConfigFile: configFile,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, result := Parse(tt.args)
			if result != nil {
				t.Fatalf("Parse() result = %+v", result)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	badConfig := writeConfig(t, "format: json\nunknown: 1\n")

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "no arguments", args: nil, wantMsg: ErrNoArguments.Error()},
		{name: "no command", args: []string{"slopjson"}, wantMsg: ErrNoCommand.Error()},
		{name: "unknown command", args: []string{"slopjson", "find", "x"}, wantMsg: ErrUnknownCommand.Error()},
		{name: "get without path", args: []string{"slopjson", "get"}, wantMsg: ErrMissingOperand.Error()},
		{name: "search without text", args: []string{"slopjson", "search"}, wantMsg: ErrMissingOperand.Error()},
		{name: "search with empty text", args: []string{"slopjson", "search", "", "a.json"}, wantMsg: ErrMissingOperand.Error()},
		{name: "query without expression", args: []string{"slopjson", "-i", "query"}, wantMsg: ErrMissingOperand.Error()},
		{name: "bad format", args: []string{"slopjson", "-format", "xml", "tree"}, wantMsg: ErrInvalidFormat.Error()},
		{name: "bad color", args: []string{"slopjson", "-color", "sometimes", "tree"}, wantMsg: ErrInvalidColor.Error()},
		{name: "negative preview", args: []string{"slopjson", "-preview", "-1", "tree"}, wantMsg: ErrNegativePreview.Error()},
		{name: "unknown flag", args: []string{"slopjson", "-x", "tree"}, wantMsg: "failed to parse arguments"},
		{name: "missing config file", args: []string{"slopjson", "-config", "/does/not/exist.yaml", "tree"}, wantMsg: "failed to read config file"},
		{name: "unknown config key", args: []string{"slopjson", "-config", badConfig, "tree"}, wantMsg: "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, result := Parse(tt.args)
			if cfg != nil {
				t.Fatalf("Parse() config = %+v, want nil", cfg)
			}
			if result == nil || result.ExitCode != exit.CodeError {
				t.Fatalf("Parse() result = %+v, want exit code %d", result, exit.CodeError)
			}
			if !strings.Contains(result.Message, tt.wantMsg) {
				t.Fatalf("Parse() message = %q, want it to contain %q", result.Message, tt.wantMsg)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	for _, flagName := range []string{"-h", "-help"} {
		cfg, result := Parse([]string{"slopjson", flagName})
		if cfg != nil || result == nil {
			t.Fatalf("Parse(%s) = %v, %v", flagName, cfg, result)
		}
		if result.ExitCode != exit.CodeOK || result.Message != Usage() {
			t.Fatalf("Parse(%s) result = %+v, want usage", flagName, result)
		}
	}
}

func TestCaseSensitive(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if !cfg.CaseSensitive() {
		t.Fatal("default config should search case-sensitively")
	}
	cfg.CaseInsensitive = true
	if cfg.CaseSensitive() {
		t.Fatal("CaseSensitive() = true with -i")
	}
}
