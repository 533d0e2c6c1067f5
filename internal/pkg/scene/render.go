package scene

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Render rasterizes the scene onto a fresh NRGBA canvas
func (s *Scene) Render() (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)

	for _, p := range s.prims {
		switch prim := p.(type) {
		case Rect:
			drawRect(dst, prim)
		case Polygon:
			drawPolygon(dst, prim)
		case TextRun:
			if err := drawText(dst, prim); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown primitive %T", p)
		}
	}

	return dst, nil
}

func drawRect(dst *image.NRGBA, r Rect) {
	bounds := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
	draw.Draw(dst, bounds, image.NewUniform(r.Fill), image.Point{}, draw.Over)
}

func drawPolygon(dst *image.NRGBA, p Polygon) {
	if len(p.Points) < 3 {
		return
	}

	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	z.MoveTo(float32(p.Points[0].X), float32(p.Points[0].Y))
	for _, pt := range p.Points[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(p.Fill), image.Point{})
}

func drawText(dst *image.NRGBA, t TextRun) error {
	face, err := newFace(t.Style, t.Size)
	if err != nil {
		return err
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.Fill),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(t.X * 64),
			Y: fixed.Int26_6(t.Y * 64),
		},
	}

	if t.Anchor == AnchorMiddle {
		d.Dot.X -= d.MeasureString(t.Text) / 2
	}

	d.DrawString(t.Text)
	return nil
}
