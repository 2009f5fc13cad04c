package scene

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"shapegrid/core"
)

// A shape script lists one shape per line after an optional grid header:
//
//	# comments start with '#' or '//'
//	grid 100 x 40 fill " "
//	line (10,4) (92,19) char "+"
//	polygon (7,12) (24,29) (42,15) (37,32) (15,35)
//	polygon open (0,0) (5,5) (9,0)
//	rectangle (45,2) (80,27) char "#"
//	ngon (72,25) radius 12 sides 20 rotation 80 char "-"
var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Int", Pattern: `[-+]?(?:0|[1-9][0-9]*)`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[(),]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

// Script is the AST of a shape script.
type Script struct {
	Grid       *GridDecl    `parser:"@@?"`
	Statements []*Statement `parser:"@@*"`
}

// GridDecl sets the grid size and optional fill character.
type GridDecl struct {
	Width  int     `parser:"'grid' @Int 'x'"`
	Height int     `parser:"@Int"`
	Fill   *string `parser:"( 'fill' @String )?"`
}

// Statement is one shape.
type Statement struct {
	Pos       lexer.Position `parser:"" json:"-"`
	Line      *LineStmt      `parser:"  'line' @@"`
	Polygon   *PolygonStmt   `parser:"| 'polygon' @@"`
	Rectangle *RectangleStmt `parser:"| 'rectangle' @@"`
	NGon      *NGonStmt      `parser:"| 'ngon' @@"`
}

// Coord is a parenthesised "(x, y)" pair.
type Coord struct {
	X int `parser:"'(' @Int ','"`
	Y int `parser:"@Int ')'"`
}

// LineStmt: line (x1,y1) (x2,y2) [char "c"]
type LineStmt struct {
	From *Coord  `parser:"@@"`
	To   *Coord  `parser:"@@"`
	Char *string `parser:"( 'char' @String )?"`
}

// PolygonStmt: polygon [open] (x,y)... [char "c"]
type PolygonStmt struct {
	Open   bool     `parser:"@'open'?"`
	Points []*Coord `parser:"@@+"`
	Char   *string  `parser:"( 'char' @String )?"`
}

// RectangleStmt: rectangle (x1,y1) (x2,y2) [char "c"]
type RectangleStmt struct {
	UpperLeft  *Coord  `parser:"@@"`
	LowerRight *Coord  `parser:"@@"`
	Char       *string `parser:"( 'char' @String )?"`
}

// NGonStmt: ngon (x,y) radius r sides n [rotation deg] [char "c"]
type NGonStmt struct {
	Center   *Coord  `parser:"@@"`
	Radius   int     `parser:"'radius' @Int"`
	Sides    int     `parser:"'sides' @Int"`
	Rotation int     `parser:"( 'rotation' @Int )?"`
	Char     *string `parser:"( 'char' @String )?"`
}

// ParseScript parses a shape script and converts it to a Scene. The name
// is only used in error positions.
func ParseScript(name string, r io.Reader) (*Scene, error) {
	script, err := scriptParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parsing shape script: %w", err)
	}
	return script.Scene(), nil
}

// ParseScriptString parses a shape script held in a string.
func ParseScriptString(src string) (*Scene, error) {
	script, err := scriptParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("parsing shape script: %w", err)
	}
	return script.Scene(), nil
}

// Scene converts the AST into a Scene.
func (s *Script) Scene() *Scene {
	sc := &Scene{}
	if s.Grid != nil {
		sc.Width, sc.Height = s.Grid.Width, s.Grid.Height
		if s.Grid.Fill != nil {
			sc.Fill = *s.Grid.Fill
		}
	}

	for _, st := range s.Statements {
		sc.Shapes = append(sc.Shapes, st.shape())
	}
	return sc
}

func (st *Statement) shape() Shape {
	switch {
	case st.Line != nil:
		return Shape{
			Kind:   KindLine,
			Points: []core.Point{st.Line.From.point(), st.Line.To.point()},
			Char:   deref(st.Line.Char),
		}
	case st.Polygon != nil:
		pts := make([]core.Point, 0, len(st.Polygon.Points))
		for _, c := range st.Polygon.Points {
			pts = append(pts, c.point())
		}
		return Shape{
			Kind:   KindPolygon,
			Points: pts,
			Open:   st.Polygon.Open,
			Char:   deref(st.Polygon.Char),
		}
	case st.Rectangle != nil:
		return Shape{
			Kind:   KindRectangle,
			Points: []core.Point{st.Rectangle.UpperLeft.point(), st.Rectangle.LowerRight.point()},
			Char:   deref(st.Rectangle.Char),
		}
	default:
		return Shape{
			Kind:     KindNGon,
			Center:   st.NGon.Center.point(),
			Radius:   st.NGon.Radius,
			Sides:    st.NGon.Sides,
			Rotation: st.NGon.Rotation,
			Char:     deref(st.NGon.Char),
		}
	}
}

func (c *Coord) point() core.Point {
	return core.Point{X: c.X, Y: c.Y}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
