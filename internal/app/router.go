package app

import (
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"workorder.io/engine/internal/api/handlers"
	"workorder.io/engine/internal/api/middleware"
	"workorder.io/engine/internal/config"
)

// newRouter wires the engine's HTTP surface: the order/item
// operations plus liveness/readiness probes. Actor identity travels on
// X-Actor-Type/X-Actor-ID headers (middleware.ActorFromRequest) and is
// audit-only — there is no authentication or authorization layer here.
func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)

	v1 := router.Group("/v1")
	{
		v1.POST("/orders", server.ProposeOrder)
		v1.GET("/orders", server.ListOrders)
		v1.GET("/orders/:id", server.GetOrder)
		v1.POST("/orders/:id/approve", server.ApproveOrder)
		v1.POST("/orders/:id/reject", server.RejectOrder)

		v1.POST("/items/checkout", server.CheckoutItem)
		v1.POST("/items/:id/heartbeat", server.HeartbeatItem)
		v1.POST("/items/:id/release", server.ReleaseItem)
		v1.POST("/items/:id/submit", server.SubmitItem)
		v1.POST("/items/:id/submit-part", server.SubmitItemPart)
		v1.POST("/items/:id/finalize", server.FinalizeItem)
		v1.GET("/items/:id/parts", server.ListItemParts)
	}

	return router
}

func buildCORSConfig(cfg *config.Config) cors.Config {
	allowAllOrigins := cfg.Server.UnsafeAllowAllOrigins
	allowedOrigins := sanitizeAllowedOrigins(cfg.Server.AllowedOrigins)

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Idempotency-Key", "X-Actor-Type", "X-Actor-ID", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: cfg.Server.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}

	if allowAllOrigins {
		corsCfg.AllowAllOrigins = true
		// gin-contrib/cors docs: AllowAllOrigins cannot be used with credentials.
		corsCfg.AllowCredentials = false
		return corsCfg
	}

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsCfg.AllowOrigins = allowedOrigins
	return corsCfg
}

func sanitizeAllowedOrigins(origins []string) []string {
	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		cleaned = append(cleaned, origin)
	}
	return slices.Compact(cleaned)
}
