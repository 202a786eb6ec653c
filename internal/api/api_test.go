package api

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/horoscopecard/internal/config"
	"github.com/youruser/horoscopecard/internal/horoscope"
	imagepkg "github.com/youruser/horoscopecard/internal/image"
)

func newTestEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	assets, err := imagepkg.NewAssets(goregular.TTF, goregular.TTF,
		[]image.Image{imaging.New(32, 32, color.NRGBA{B: 0xff, A: 0xff})},
		map[string]image.Image{"scorpio": imaging.New(32, 32, color.NRGBA{R: 0xff, A: 0xff})},
	)
	if err != nil {
		t.Fatalf("new assets: %v", err)
	}
	gen := horoscope.NewGenerator([]horoscope.Record{{Message: "A short day ahead."}}, nil, nil)
	s := NewServer(cfg, gen, imagepkg.NewRenderer(assets, nil), nil)
	return NewEngine(s)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCardRoute(t *testing.T) {
	r := newTestEngine(t, config.Default())

	w := get(r, "/scorpio")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("unexpected content type %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != imagepkg.CardSize || b.Dy() != imagepkg.CardSize {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestCardRouteUnknownOrDisabledSign(t *testing.T) {
	r := newTestEngine(t, config.Default())
	for _, path := range []string{"/leo", "/ophiuchus"} {
		if w := get(r, path); w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestCardRouteMissingEmblem(t *testing.T) {
	cfg := config.Default()
	cfg.EnabledSigns = []string{"scorpio", "leo"}
	r := newTestEngine(t, cfg)
	if w := get(r, "/leo"); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestQRRoute(t *testing.T) {
	cfg := config.Default()
	cfg.PublicURL = "https://cards.example.com/"
	r := newTestEngine(t, cfg)

	w := get(r, "/scorpio/qr?size=200")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	c, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if c.Width != 200 {
		t.Fatalf("expected width 200, got %d", c.Width)
	}
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t, config.Default())
	if w := get(r, "/api/health"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	r := newTestEngine(t, cfg)

	if w := get(r, "/api/health"); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := get(r, "/api/health"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
}
