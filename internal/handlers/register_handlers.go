package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/walletapp/wallet_ledger_app/internal/core/services"
	"github.com/walletapp/wallet_ledger_app/internal/middleware"
	"github.com/walletapp/wallet_ledger_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public authentication routes
	registerAuthRoutes(r, cfg, svcs)

	// Everything under /api/v1 requires a bearer token
	setupAPIV1Routes(r, cfg, svcs)
}

func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, svcs.User)
	registerAccountRoutes(v1, svcs.Account)
	registerBalanceRoutes(v1, svcs.Balance)
	registerTransactionRoutes(v1, svcs.Ledger)
}
