// Package config turns command line flags and environment variables into the
// settings the shapegrid command runs with.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/term"

	"shapegrid/export"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvFormat   = "SHAPEGRID_FORMAT"
	EnvLogLevel = "SHAPEGRID_LOG_LEVEL"
)

// Size of the canvas used when neither flags, scene nor terminal give one.
const (
	DefaultWidth  = 100
	DefaultHeight = 40
)

// ErrUsage is returned when the arguments cannot be understood. The flag set
// has already printed the problem and the usage text.
var ErrUsage = errors.New("invalid usage")

// Config holds everything the command needs to know.
type Config struct {
	// SceneFile is the optional positional argument. Empty means the demo scene.
	SceneFile string
	// Block selects the shape block of a markdown scene file, 1-based.
	Block int

	// Width and Height override the scene size when non-zero.
	Width  int
	Height int
	// Fill overrides the scene fill character when non-empty.
	Fill string

	Format      export.Format
	Output      string
	Interactive bool
	ListFormats bool

	Export   export.Options
	LogLevel slog.Level
}

// Load parses args (without the program name). Values from getenv are used
// for settings whose flag was not given explicitly.
func Load(args []string, getenv func(string) string, usage io.Writer) (*Config, error) {
	cfg := &Config{Export: export.DefaultOptions()}

	fs := flag.NewFlagSet("shapegrid", flag.ContinueOnError)
	fs.SetOutput(usage)

	var format, logLevel string
	fs.IntVar(&cfg.Width, "width", 0, "Grid width (default: scene width, then terminal width)")
	fs.IntVar(&cfg.Height, "height", 0, "Grid height (default: scene height, then terminal height)")
	fs.StringVar(&cfg.Fill, "fill", "", "Fill character for empty cells (default: scene fill or space)")
	fs.StringVar(&format, "format", string(export.FormatText), "Export format: "+formatList())
	fs.StringVar(&cfg.Output, "o", "", "Output file (default: stdout)")
	fs.BoolVar(&cfg.Interactive, "i", false, "Show the grid in an interactive terminal viewer")
	fs.IntVar(&cfg.Block, "block", 0, "Which shape block of a markdown file to draw (1-based, 0 = the only one)")
	fs.BoolVar(&cfg.ListFormats, "formats", false, "List export formats and exit")
	fs.StringVar(&cfg.Export.Foreground, "fg", cfg.Export.Foreground, "PNG glyph colour")
	fs.StringVar(&cfg.Export.Background, "bg", cfg.Export.Background, "PNG background colour")
	fs.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintf(usage, "Usage: shapegrid [options] [scene.json|scene.shapes|doc.md]\n\n")
		fmt.Fprintf(usage, "Draws lines, polygons, rectangles and n-gons on a character grid.\n")
		fmt.Fprintf(usage, "Without a scene file the built-in demo scene is drawn.\n\n")
		fmt.Fprintf(usage, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(usage, "\nEnvironment:\n")
		fmt.Fprintf(usage, "  %s     default for -format\n", EnvFormat)
		fmt.Fprintf(usage, "  %s  default for -log-level\n", EnvLogLevel)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["format"] {
		if v := getenv(EnvFormat); v != "" {
			format = v
		}
	}
	if !set["log-level"] {
		if v := getenv(EnvLogLevel); v != "" {
			logLevel = v
		}
	}

	var err error
	if cfg.Format, err = export.ParseFormat(format); err != nil {
		return nil, fmt.Errorf("%w: %v (available: %s)", ErrUsage, err, formatList())
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrUsage, logLevel)
	}
	if cfg.Block < 0 {
		return nil, fmt.Errorf("%w: negative block index %d", ErrUsage, cfg.Block)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: negative grid size %dx%d", ErrUsage, cfg.Width, cfg.Height)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.SceneFile = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: expected at most one scene file, got %d", ErrUsage, fs.NArg())
	}

	return cfg, nil
}

// GridSize resolves the final canvas size. Explicit flags win, then the
// scene's own size; whatever is still unset comes from termSize.
func (c *Config) GridSize(sceneWidth, sceneHeight int, termSize func() (int, int)) (width, height int) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = sceneWidth
	}
	if height == 0 {
		height = sceneHeight
	}
	if width == 0 || height == 0 {
		tw, th := termSize()
		if width == 0 {
			width = tw
		}
		if height == 0 {
			height = th
		}
	}
	return width, height
}

// TerminalSize returns the size of the terminal attached to fd, leaving one
// line for the shell prompt. It falls back to DefaultWidth x DefaultHeight
// when fd is not a terminal.
func TerminalSize(fd int) (width, height int) {
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 1 {
		return DefaultWidth, DefaultHeight
	}
	return w, h - 1
}

func formatList() string {
	formats := export.GetAvailableFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
