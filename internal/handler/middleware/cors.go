package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"stelwing-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers the booking API always needs across origins, whatever the env says.
var (
	bookingRequestHeaders = []string{"Authorization", "Content-Type", "Idempotency-Key", requestIDHeader}
	bookingExposedHeaders = []string{"Location", "Idempotent-Replayed", requestIDHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     mergeHeaders(cfg.AllowHeaders, bookingRequestHeaders),
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, bookingExposedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func mergeHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(c string) bool { return strings.EqualFold(c, h) }) {
			out = append(out, h)
		}
	}
	return out
}
