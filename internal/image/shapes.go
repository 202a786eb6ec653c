package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so a quarter curve approximates a circular arc.
const kappa = 0.5522847498

// fillRoundRect fills a w×h rectangle at (x,y) with corners of radius r.
// The radius is clamped to half the shorter side.
func fillRoundRect(dst draw.Image, x, y, w, h, r float32, c color.Color) {
	if w < 2*r {
		r = w / 2
	}
	if h < 2*r {
		r = h / 2
	}
	k := r * kappa
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	z.MoveTo(x+r, y)
	z.LineTo(x+w-r, y)
	z.CubeTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	z.LineTo(x+w, y+h-r)
	z.CubeTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	z.LineTo(x+r, y+h)
	z.CubeTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	z.LineTo(x, y+r)
	z.CubeTo(x, y+r-k, x+r-k, y, x+r, y)
	z.ClosePath()

	z.Draw(dst, b, image.NewUniform(c), b.Min)
}
