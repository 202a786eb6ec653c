package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/horoscopecard/internal/config"
	"github.com/youruser/horoscopecard/internal/horoscope"
	imagepkg "github.com/youruser/horoscopecard/internal/image"
)

// Server holds the read-only state shared by every request.
type Server struct {
	cfg      *config.Config
	gen      *horoscope.Generator
	renderer *imagepkg.Renderer
	log      *slog.Logger
}

func NewServer(cfg *config.Config, gen *horoscope.Generator, renderer *imagepkg.Renderer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, gen: gen, renderer: renderer, log: logger}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// lookupSign resolves the :sign param to an enabled sign or writes a 404.
func (s *Server) lookupSign(c *gin.Context) (horoscope.Sign, bool) {
	sign, ok := horoscope.LookupSign(c.Param("sign"))
	if !ok || !s.cfg.Enabled(sign.Slug) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown sign " + strconv.Quote(c.Param("sign"))})
		return horoscope.Sign{}, false
	}
	return sign, true
}

// cardHandler renders a fresh horoscope card for the requested sign.
func (s *Server) cardHandler(c *gin.Context) {
	sign, ok := s.lookupSign(c)
	if !ok {
		return
	}
	emblem, ok := s.renderer.Assets().Emblem(sign.Slug)
	if !ok {
		s.log.Error("emblem not loaded", "sign", sign.Slug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "emblem not loaded for " + sign.Name})
		return
	}
	rec, err := s.gen.Generate(sign)
	if err != nil {
		s.log.Error("generate horoscope", "sign", sign.Slug, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	b, err := s.renderer.Render(rec, emblem)
	if err != nil {
		s.log.Error("render card", "sign", sign.Slug, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// qrHandler returns a PNG QR code linking to the sign's card.
func (s *Server) qrHandler(c *gin.Context) {
	sign, ok := s.lookupSign(c)
	if !ok {
		return
	}
	size := imagepkg.DefaultQRSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(s.cardURL(c, sign), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (s *Server) cardURL(c *gin.Context, sign horoscope.Sign) string {
	base := strings.TrimRight(s.cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + "/" + sign.Slug
}
