package handlers

import (
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/middleware"
	"github.com/atlaserp/ledger_engine/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServicesContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	// Setup API v1 routes with tenant auth, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServicesContainer,
) {
	// Every v1 route runs behind the tenant claims middleware
	v1 := r.Group("/api/v1", middleware.TenantAuthMiddleware(cfg.JWTSecret))

	registerPostingRoutes(v1, services.Posting, services.Reversal)
	registerEntryRoutes(v1, services.Ledger)
	registerAccountRoutes(v1, services.Account)
	registerBalanceRoutes(v1, services.Balance)
	registerPeriodRoutes(v1, services.Period)
	registerAuditRoutes(v1, services.Audit)
}
