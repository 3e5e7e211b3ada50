package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stelwing-booking/internal/handler/api"
	"stelwing-booking/internal/handler/middleware"
	"stelwing-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Options *api.OptionsHandler
	Auth    *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// request logger first so even a recovered panic has a request id
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		booking := apiGroup.Group("/flight-booking")
		{
			addRoutes(booking, []route{
				{Method: http.MethodGet, Path: "/seat-options", Handler: h.Options.Seats},
				{Method: http.MethodGet, Path: "/meal-options", Handler: h.Options.Meals},
				{Method: http.MethodGet, Path: "/baggage-options", Handler: h.Options.Baggage},
				{Method: http.MethodGet, Path: "/:pnr", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{h.Auth.OptionalAuth()}},
				{Method: http.MethodPost, Path: "/:pnr/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{h.Auth.RequireAuth()}},
			})
		}

		members := apiGroup.Group("/members/me")
		{
			addRoutes(members, []route{
				{Method: http.MethodGet, Path: "/flight-bookings", Handler: h.Booking.ListMine, Mw: []gin.HandlerFunc{h.Auth.RequireAuth()}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
