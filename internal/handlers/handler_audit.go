package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests that read the audit log.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// listEntityEvents retrieves the audit trail of one entity, newest first.
func (h *auditHandler) listEntityEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityType := c.Param("entityType")
	entityID := c.Param("entityID")

	tenantID, ok := middleware.TenantIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	params := dto.ListAuditEventsParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.auditService.ListForEntity(c.Request.Context(), tenantID, entityType, entityID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list audit events",
			slog.String("error", err.Error()),
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit events"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerAuditRoutes registers audit log read routes
func registerAuditRoutes(group *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	handler := newAuditHandler(auditService)

	audit := group.Group("/audit")
	{
		audit.GET("/:entityType/:entityID", handler.listEntityEvents)
	}
}
