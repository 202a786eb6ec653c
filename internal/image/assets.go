package imagepkg

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"
)

var ErrNoBackgrounds = errors.New("imagepkg: no background images")

// Assets is everything a render reads. It is built once and never modified,
// so a single value is shared by all requests.
type Assets struct {
	DisplayFont *opentype.Font
	BodyFont    *opentype.Font
	// Backgrounds are pre-stretched to CardSize×CardSize.
	Backgrounds []image.Image
	// Emblems are keyed by sign slug and pre-scaled to the emblem box.
	Emblems map[string]image.Image
}

type AssetOptions struct {
	DisplayFont    string
	BodyFont       string
	BackgroundsDir string
	BackgroundURLs []string
	SignsDir       string
	Signs          []string // slugs whose <slug>.png emblem is loaded
}

// NewAssets parses the font data and normalizes image sizes.
func NewAssets(displayFont, bodyFont []byte, backgrounds []image.Image, emblems map[string]image.Image) (*Assets, error) {
	if len(backgrounds) == 0 {
		return nil, ErrNoBackgrounds
	}
	display, err := opentype.Parse(displayFont)
	if err != nil {
		return nil, fmt.Errorf("parsing display font: %w", err)
	}
	body, err := opentype.Parse(bodyFont)
	if err != nil {
		return nil, fmt.Errorf("parsing body font: %w", err)
	}
	a := &Assets{
		DisplayFont: display,
		BodyFont:    body,
		Backgrounds: make([]image.Image, len(backgrounds)),
		Emblems:     make(map[string]image.Image, len(emblems)),
	}
	for i, bg := range backgrounds {
		a.Backgrounds[i] = fitTo(bg, CardSize, CardSize)
	}
	for slug, e := range emblems {
		a.Emblems[slug] = fitTo(e, emblemW, emblemH)
	}
	return a, nil
}

// Emblem returns the emblem for a sign slug.
func (a *Assets) Emblem(slug string) (image.Image, bool) {
	e, ok := a.Emblems[slug]
	return e, ok
}

// LoadAssets reads fonts, backgrounds and emblems from disk (and remote
// background URLs) in parallel. Any failure aborts the whole load.
func LoadAssets(ctx context.Context, opts AssetOptions) (*Assets, error) {
	displayFont, err := os.ReadFile(opts.DisplayFont)
	if err != nil {
		return nil, fmt.Errorf("reading display font: %w", err)
	}
	bodyFont, err := os.ReadFile(opts.BodyFont)
	if err != nil {
		return nil, fmt.Errorf("reading body font: %w", err)
	}

	bgPaths, err := listImages(opts.BackgroundsDir)
	if err != nil {
		return nil, err
	}

	backgrounds := make([]image.Image, len(bgPaths)+len(opts.BackgroundURLs))
	emblems := make([]image.Image, len(opts.Signs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range bgPaths {
		g.Go(func() error {
			img, err := imaging.Open(p)
			if err != nil {
				return fmt.Errorf("loading background %s: %w", p, err)
			}
			backgrounds[i] = img
			return nil
		})
	}
	for i, u := range opts.BackgroundURLs {
		g.Go(func() error {
			img, err := DownloadImage(gctx, u)
			if err != nil {
				return fmt.Errorf("loading background %s: %w", u, err)
			}
			backgrounds[len(bgPaths)+i] = img
			return nil
		})
	}
	for i, slug := range opts.Signs {
		g.Go(func() error {
			p := filepath.Join(opts.SignsDir, strings.ToLower(slug)+".png")
			img, err := imaging.Open(p)
			if err != nil {
				return fmt.Errorf("loading emblem %s: %w", p, err)
			}
			emblems[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bySlug := make(map[string]image.Image, len(opts.Signs))
	for i, slug := range opts.Signs {
		bySlug[strings.ToLower(slug)] = emblems[i]
	}
	return NewAssets(displayFont, bodyFont, backgrounds, bySlug)
}

// listImages returns the image files directly under dir, skipping anything
// imaging does not recognize by extension.
func listImages(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing backgrounds: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if _, err := imaging.FormatFromFilename(e.Name()); err != nil {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

func fitTo(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h && b.Min == (image.Point{}) {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
