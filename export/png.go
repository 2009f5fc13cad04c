package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PNGExporter draws each cell as one glyph of basicfont.Face7x13.
type PNGExporter struct {
	fg, bg color.RGBA
	face   *basicfont.Face
}

// NewPNGExporter creates a PNG exporter with the given hex colours.
func NewPNGExporter(foreground, background string) (*PNGExporter, error) {
	fg, err := parseHex(foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := parseHex(background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return &PNGExporter{fg: fg, bg: bg, face: basicfont.Face7x13}, nil
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// CellSize returns the pixel size of one grid cell.
func (e *PNGExporter) CellSize() (width, height int) {
	return e.face.Advance, e.face.Ascent + e.face.Descent
}

// Render draws the grid into a new RGBA image.
func (e *PNGExporter) Render(src Source) *image.RGBA {
	cw, ch := e.CellSize()
	width, height := src.Size()

	img := image.NewRGBA(image.Rect(0, 0, width*cw, height*ch))
	draw.Draw(img, img.Bounds(), image.NewUniform(e.bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(e.fg),
		Face: e.face,
	}
	for y, row := range src.Rows() {
		for x, r := range row {
			if r == ' ' {
				continue
			}
			// Glyphs outside the font fall back to its replacement glyph.
			d.Dot = fixed.P(x*cw, y*ch+e.face.Ascent)
			d.DrawString(string(r))
		}
	}
	return img
}

// Export converts the grid to PNG bytes.
func (e *PNGExporter) Export(src Source) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, e.Render(src)); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// GetFileExtension returns the recommended file extension
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name
func (e *PNGExporter) GetFormatName() string {
	return "PNG Image"
}
