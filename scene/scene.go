// Package scene describes a composition of shapes as data and draws it onto
// a grid. Scenes are read from JSON documents or from the line-oriented
// shape script understood by ParseScript.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shapegrid/canvas"
	"shapegrid/core"
	"shapegrid/raster"
)

// Kind names a shape generator.
type Kind string

const (
	KindLine      Kind = "line"
	KindPolygon   Kind = "polygon"
	KindRectangle Kind = "rectangle"
	KindNGon      Kind = "ngon"
)

// DefaultFill is the fill character of a scene that does not name one.
const DefaultFill = " "

// ErrUnknownKind is returned for shapes whose kind has no generator.
var ErrUnknownKind = errors.New("unknown shape kind")

// Scene is a grid size plus the shapes to draw on it, in order.
// Later shapes overwrite earlier ones where they overlap.
type Scene struct {
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Fill   string  `json:"fill,omitempty"`
	Shapes []Shape `json:"shapes"`
}

// Shape is one drawing instruction. Which fields apply depends on Kind:
//   - line: Points holds start and end
//   - polygon: Points holds the vertices; Open leaves the last edge out
//   - rectangle: Points holds the upper-left and lower-right corners
//   - ngon: Center, Radius, Sides and Rotation (degrees)
type Shape struct {
	Kind     Kind         `json:"kind"`
	Points   []core.Point `json:"points,omitempty"`
	Open     bool         `json:"open,omitempty"`
	Center   core.Point   `json:"center"`
	Radius   int          `json:"radius,omitempty"`
	Sides    int          `json:"sides,omitempty"`
	Rotation int          `json:"rotation,omitempty"`
	Char     string       `json:"char,omitempty"`
}

// FillChar returns the parsed fill character.
func (s *Scene) FillChar() (rune, error) {
	if s.Fill == "" {
		return canvas.ParseChar(DefaultFill)
	}
	return canvas.ParseChar(s.Fill)
}

// NewGrid allocates an empty grid of the scene's size and fill.
func (s *Scene) NewGrid() (*canvas.Grid, error) {
	fill, err := s.FillChar()
	if err != nil {
		return nil, fmt.Errorf("scene fill: %w", err)
	}
	return canvas.New(s.Width, s.Height, fill)
}

// Render creates a grid and draws every shape onto it.
func (s *Scene) Render() (*canvas.Grid, error) {
	g, err := s.NewGrid()
	if err != nil {
		return nil, err
	}
	if err := s.Draw(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Draw draws every shape onto surf, stopping at the first failure.
func (s *Scene) Draw(surf canvas.Surface) error {
	for i, shape := range s.Shapes {
		if err := shape.Draw(surf); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i+1, shape.Kind, err)
		}
	}
	return nil
}

// PaintChar returns the parsed paint character, raster.DefaultChar if unset.
func (sh Shape) PaintChar() (rune, error) {
	if sh.Char == "" {
		return raster.DefaultChar, nil
	}
	return canvas.ParseChar(sh.Char)
}

// Draw draws the shape onto surf.
func (sh Shape) Draw(surf canvas.Surface) error {
	ch, err := sh.PaintChar()
	if err != nil {
		return err
	}

	switch sh.Kind {
	case KindLine:
		if len(sh.Points) != 2 {
			return fmt.Errorf("line needs 2 points, got %d", len(sh.Points))
		}
		return raster.DrawLine(surf, sh.Points[0], sh.Points[1], ch)
	case KindPolygon:
		return raster.DrawPolygon(surf, sh.Points, !sh.Open, ch)
	case KindRectangle:
		if len(sh.Points) != 2 {
			return fmt.Errorf("rectangle needs 2 corners, got %d", len(sh.Points))
		}
		return raster.DrawRectangle(surf, sh.Points[0], sh.Points[1], ch)
	case KindNGon:
		return raster.DrawNGon(surf, sh.Center, sh.Radius, sh.Sides, sh.Rotation, ch)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, sh.Kind)
	}
}

// ParseJSON reads a JSON scene document.
func ParseJSON(r io.Reader) (*Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing JSON scene: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("parsing JSON scene: unexpected data after the document")
	}
	return &s, nil
}

// Load reads a scene from path. Files ending in .json are JSON documents;
// anything else is parsed as a shape script.
func Load(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(file)
	}
	return ParseScript(filepath.Base(path), file)
}
