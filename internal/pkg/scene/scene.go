// Package scene builds card artwork from typed drawing primitives.
//
// A Scene is an ordered list of primitives over a solid background. The
// same scene can be rasterized onto an image (Render) or serialized as SVG
// (EncodeSVG), with user text escaped once, centrally, by the encoder.
package scene

import "image/color"

// FontStyle selects one of the embedded Go faces
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
	Italic
)

// Anchor controls horizontal text alignment relative to X
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
)

// TextRun is a single line of text. Y is the baseline, SVG-style.
type TextRun struct {
	X, Y   float64
	Text   string
	Size   float64
	Style  FontStyle
	Fill   color.NRGBA
	Anchor Anchor
}

// Rect is an axis-aligned filled rectangle
type Rect struct {
	X, Y, W, H float64
	Fill       color.NRGBA
}

// Polygon is a filled closed path. Opacity is carried in Fill's alpha.
type Polygon struct {
	Points []Point
	Fill   color.NRGBA
}

// Point is a 2D coordinate
type Point struct {
	X, Y float64
}

type primitive interface {
	isPrimitive()
}

func (TextRun) isPrimitive() {}
func (Rect) isPrimitive()    {}
func (Polygon) isPrimitive() {}

// Scene is a fixed-size canvas with an ordered primitive list
type Scene struct {
	Width, Height int
	Background    color.NRGBA
	prims         []primitive
}

// New creates an empty scene
func New(width, height int, background color.NRGBA) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Background: background,
	}
}

// AddText appends a text run
func (s *Scene) AddText(t TextRun) {
	s.prims = append(s.prims, t)
}

// AddRect appends a rectangle
func (s *Scene) AddRect(r Rect) {
	s.prims = append(s.prims, r)
}

// AddPolygon appends a polygon
func (s *Scene) AddPolygon(p Polygon) {
	s.prims = append(s.prims, p)
}
