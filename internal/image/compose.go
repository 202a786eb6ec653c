package imagepkg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/youruser/horoscopecard/internal/horoscope"
)

// Card layout, in pixels.
const (
	CardSize = 1200

	emblemX, emblemY = 150, 150
	emblemW, emblemH = 400, 450

	headerX = 825 // center column for the header and extras text

	MaxLineWidth   = 900
	MaxLines       = 8
	messageX       = 150
	messageY       = 700
	messageLeading = 50
)

var (
	panelColor  = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	signColor   = color.NRGBA{R: 0xcc, G: 0x2c, B: 0x18, A: 0xff}
	datesColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	extrasColor = color.NRGBA{R: 0x70, G: 0x80, B: 0x90, A: 0xff} // slategray
)

// Renderer composes horoscope cards from a shared asset set.
type Renderer struct {
	assets *Assets
	rnd    horoscope.Source
}

// NewRenderer returns a renderer drawing backgrounds with rnd.
// A nil rnd uses horoscope.DefaultSource.
func NewRenderer(assets *Assets, rnd horoscope.Source) *Renderer {
	if rnd == nil {
		rnd = horoscope.DefaultSource
	}
	return &Renderer{assets: assets, rnd: rnd}
}

// Assets returns the renderer's asset set.
func (r *Renderer) Assets() *Assets { return r.assets }

// Render composes the card for rec and returns it PNG-encoded.
func (r *Renderer) Render(rec horoscope.Record, emblem image.Image) ([]byte, error) {
	img, err := r.Compose(rec, emblem)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Compose draws the card for rec onto a fresh CardSize×CardSize canvas.
func (r *Renderer) Compose(rec horoscope.Record, emblem image.Image) (*image.NRGBA, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if emblem == nil {
		return nil, errors.New("imagepkg: nil emblem")
	}
	if len(r.assets.Backgrounds) == 0 {
		return nil, ErrNoBackgrounds
	}

	faces, err := r.newFaces()
	if err != nil {
		return nil, err
	}
	defer faces.close()

	bg := r.assets.Backgrounds[r.rnd.IntN(len(r.assets.Backgrounds))]
	canvas := imaging.New(CardSize, CardSize, color.NRGBA{})
	canvas = imaging.Paste(canvas, fitTo(bg, CardSize, CardSize), image.Pt(0, 0))

	fillRoundRect(canvas, 100, 100, 1000, 1000, 100, panelColor)
	canvas = imaging.Overlay(canvas, fitTo(emblem, emblemW, emblemH), image.Pt(emblemX, emblemY), 1.0)

	drawCentered(canvas, faces.sign, signColor, rec.Sign, headerX, 225)
	drawCentered(canvas, faces.dates, datesColor, rec.Birthdates, headerX, 263)
	drawCentered(canvas, faces.date, color.Black, rec.Date, headerX, 315)

	fillRoundRect(canvas, 600, 350, 450, 240, 10, extrasColor)
	drawCentered(canvas, faces.extras, color.White, rec.Match, headerX, 400)
	drawCentered(canvas, faces.extras, color.White, rec.Number, headerX, 450)
	drawCentered(canvas, faces.extras, color.White, "Today's Color: "+rec.Color, headerX, 500)
	drawCentered(canvas, faces.extras, color.White, "Lucky Time: "+rec.Time, headerX, 550)

	// Lines past MaxLines are dropped.
	i := 0
	for line := range Lines(Measure(faces.body), rec.Message, MaxLineWidth) {
		if i == MaxLines {
			break
		}
		drawLeft(canvas, faces.body, color.Black, line, messageX, messageY+i*messageLeading)
		i++
	}
	return canvas, nil
}

// MessageLines wraps msg exactly as Compose does, without the line cap.
func (r *Renderer) MessageLines(msg string) ([]string, error) {
	face, err := newFace(r.assets.BodyFont, 50, dpiPixels)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	var out []string
	for line := range Lines(Measure(face), msg, MaxLineWidth) {
		out = append(out, line)
	}
	return out, nil
}

// cardFaces holds the per-render font faces; opentype faces must not be
// shared across goroutines.
type cardFaces struct {
	sign, dates, date, extras, body font.Face
}

func (r *Renderer) newFaces() (*cardFaces, error) {
	f := &cardFaces{}
	var err error
	if f.sign, err = newFace(r.assets.DisplayFont, 70, dpiPoints); err != nil {
		return nil, err
	}
	if f.dates, err = newFace(r.assets.DisplayFont, 18, dpiPoints); err != nil {
		f.close()
		return nil, err
	}
	if f.date, err = newFace(r.assets.DisplayFont, 38, dpiPoints); err != nil {
		f.close()
		return nil, err
	}
	if f.extras, err = newFace(r.assets.DisplayFont, 20, dpiPoints); err != nil {
		f.close()
		return nil, err
	}
	if f.body, err = newFace(r.assets.BodyFont, 50, dpiPixels); err != nil {
		f.close()
		return nil, err
	}
	return f, nil
}

func (f *cardFaces) close() {
	for _, face := range []font.Face{f.sign, f.dates, f.date, f.extras, f.body} {
		if face != nil {
			face.Close()
		}
	}
}
