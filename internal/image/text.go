package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Point sizes are converted at 96 DPI; pixel sizes use 72 so that one unit is one pixel.
const (
	dpiPoints = 96
	dpiPixels = 72
)

func newFace(f *opentype.Font, size, dpi float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// Measure returns a MeasureFunc reporting advance widths in pixels for face.
func Measure(face font.Face) MeasureFunc {
	return func(s string) float64 {
		return float64(font.MeasureString(face, s)) / 64
	}
}

// drawCentered draws s with its horizontal center at x and baseline at y.
func drawCentered(dst draw.Image, face font.Face, c color.Color, s string, x, y int) {
	w := font.MeasureString(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x) - w/2, Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// drawLeft draws s starting at x with baseline y.
func drawLeft(dst draw.Image, face font.Face, c color.Color, s string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
