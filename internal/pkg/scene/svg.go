package scene

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// EscapeText replaces the five reserved XML characters so arbitrary user
// input cannot corrupt the generated markup. All serialization goes through
// this single function.
func EscapeText(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

// EncodeSVG serializes the scene as an SVG document
func (s *Scene) EncodeSVG(w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		s.Width, s.Height); err != nil {
		return err
	}

	if s.Background.A > 0 {
		fmt.Fprintf(w, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
			s.Width, s.Height, hexColor(s.Background))
	}

	for _, p := range s.prims {
		switch prim := p.(type) {
		case Rect:
			fmt.Fprintf(w, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"%s/>`+"\n",
				prim.X, prim.Y, prim.W, prim.H, hexColor(prim.Fill), opacityAttr(prim.Fill))
		case Polygon:
			points := make([]string, 0, len(prim.Points))
			for _, pt := range prim.Points {
				points = append(points, fmt.Sprintf("%g,%g", pt.X, pt.Y))
			}
			fmt.Fprintf(w, `<polygon points="%s" fill="%s"%s/>`+"\n",
				strings.Join(points, " "), hexColor(prim.Fill), opacityAttr(prim.Fill))
		case TextRun:
			fmt.Fprintf(w, `<text x="%g" y="%g" font-family="sans-serif" font-size="%g"%s%s fill="%s">%s</text>`+"\n",
				prim.X, prim.Y, prim.Size, styleAttrs(prim.Style), anchorAttr(prim.Anchor),
				hexColor(prim.Fill), EscapeText(prim.Text))
		}
	}

	_, err := io.WriteString(w, "</svg>\n")
	return err
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func opacityAttr(c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` fill-opacity="%.2f"`, float64(c.A)/255)
}

func styleAttrs(s FontStyle) string {
	switch s {
	case Bold:
		return ` font-weight="bold"`
	case Italic:
		return ` font-style="italic"`
	default:
		return ""
	}
}

func anchorAttr(a Anchor) string {
	if a == AnchorMiddle {
		return ` text-anchor="middle"`
	}
	return ""
}
