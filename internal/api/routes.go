package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
	}
	r.GET("/:sign", s.cardHandler)
	r.GET("/:sign/qr", s.qrHandler)
}

// NewEngine builds the gin engine with default middleware, the optional
// rate limit and all routes.
func NewEngine(s *Server) *gin.Engine {
	r := gin.Default()
	if s.cfg.RateLimit > 0 {
		r.Use(RateLimit(rate.NewLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst)))
	}
	RegisterRoutes(r, s)
	return r
}
