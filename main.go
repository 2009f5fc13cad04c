package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"shapegrid/config"
	"shapegrid/export"
	"shapegrid/markdown"
	"shapegrid/raster"
	"shapegrid/scene"
	"shapegrid/terminal"
)

// termSize is replaced in tests.
var termSize = func() (int, int) {
	return config.TerminalSize(int(os.Stdout.Fd()))
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	raster.SetLogger(logger)

	if cfg.ListFormats {
		descriptions := export.GetFormatDescriptions()
		for _, f := range export.GetAvailableFormats() {
			fmt.Fprintf(stdout, "  %-6s %s\n", f, descriptions[f])
		}
		return 0
	}

	if err := render(cfg, getenv, stdout, stderr, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// render loads the scene, draws it and hands the grid to the exporter or
// the interactive viewer.
func render(cfg *config.Config, getenv func(string) string, stdout, stderr io.Writer, logger *slog.Logger) error {
	s, title, err := loadScene(cfg.SceneFile, cfg.Block)
	if err != nil {
		return err
	}

	s.Width, s.Height = cfg.GridSize(s.Width, s.Height, termSize)
	if cfg.Fill != "" {
		s.Fill = cfg.Fill
	}

	grid, err := s.Render()
	if err != nil {
		return fmt.Errorf("rendering %s: %w", title, err)
	}
	logger.Info("scene rendered", "scene", title, "width", s.Width, "height", s.Height, "shapes", len(s.Shapes))

	caps := terminal.DetectCapabilities(getenv)
	if cfg.Interactive {
		return terminal.Show(grid, title, caps)
	}

	exporter, err := export.NewExporter(cfg.Format, cfg.Export)
	if err != nil {
		return fmt.Errorf("creating exporter: %w", err)
	}
	output, err := exporter.Export(grid)
	if err != nil {
		return fmt.Errorf("exporting grid: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, output, 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Fprintf(stderr, "Successfully exported to %s\n", cfg.Output)
		return nil
	}

	if cfg.Format != export.FormatPNG && cfg.Format != export.FormatJSON && !caps.CanShow(grid.Rows()) {
		logger.Warn("grid contains characters this terminal may not display", "terminal", caps.Name)
	}
	_, err = stdout.Write(output)
	return err
}

func loadScene(path string, block int) (*scene.Scene, string, error) {
	if path == "" {
		return scene.Demo(), "demo", nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return loadMarkdownScene(path, block)
	}
	s, err := scene.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading scene: %w", err)
	}
	return s, filepath.Base(path), nil
}

// loadMarkdownScene parses a shape block embedded in a markdown document.
func loadMarkdownScene(path string, block int) (*scene.Scene, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading markdown file: %w", err)
	}

	b, err := markdown.NewScanner(string(content)).SelectBlock(block)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	title := fmt.Sprintf("%s:%d", filepath.Base(path), b.StartLine+1)
	s, err := scene.ParseScript(title, strings.NewReader(b.Content))
	if err != nil {
		return nil, "", fmt.Errorf("loading scene: %w", err)
	}
	return s, title, nil
}
