package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/core/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler handles HTTP requests for posting and reversing entries.
type postingHandler struct {
	postingService  portssvc.PostingSvcFacade
	reversalService portssvc.ReversalSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(postingService portssvc.PostingSvcFacade, reversalService portssvc.ReversalSvcFacade) *postingHandler {
	return &postingHandler{
		postingService:  postingService,
		reversalService: reversalService,
	}
}

// postEntry turns a source document into a posted journal entry. Retries with
// identical content succeed idempotently.
func (h *postingHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.PostingRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, ok := middleware.TenantIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	actorID, ok := middleware.ActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.postingService.Post(c.Request.Context(), tenantID, actorID, req)
	if err != nil {
		var valErr *services.ValidationError
		switch {
		case errors.As(err, &valErr):
			logger.Warn("Posting rejected by validation gate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "posting validation failed", "violations": valErr.Violations})
		case errors.Is(err, apperrors.ErrSourceAlreadyPosted):
			logger.Warn("Source document already posted with different lines", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error posting entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post entry"})
		}
		return
	}

	status := http.StatusCreated
	if result.Idempotent {
		status = http.StatusOK
	}
	logger.Info("Entry posted",
		slog.String("entry_id", result.JournalEntryID),
		slog.Bool("idempotent", result.Idempotent),
	)
	c.JSON(status, result)
}

// reverseEntry produces the exact mirror of a posted entry.
func (h *postingHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.ReversalRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ReverseEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, ok := middleware.TenantIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	actorID, ok := middleware.ActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.reversalService.Reverse(c.Request.Context(), tenantID, actorID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Entry to reverse not found", slog.String("entry_id", req.OriginalEntryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, apperrors.ErrAlreadyReversed):
			logger.Warn("Entry already reversed", slog.String("entry_id", req.OriginalEntryID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotPosted):
			logger.Warn("Entry not in a reversible state", slog.String("entry_id", req.OriginalEntryID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrClosedPeriod),
			errors.Is(err, apperrors.ErrUnknownAccount),
			errors.Is(err, apperrors.ErrInactiveAccount):
			logger.Warn("Reversal rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reverse entry", slog.String("error", err.Error()), slog.String("entry_id", req.OriginalEntryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse entry"})
		}
		return
	}

	logger.Info("Entry reversed",
		slog.String("original_entry_id", result.OriginalEntryID),
		slog.String("reversal_entry_id", result.ReversalEntryID),
	)
	c.JSON(http.StatusCreated, result)
}

// registerPostingRoutes registers posting and reversal routes
func registerPostingRoutes(group *gin.RouterGroup, postingService portssvc.PostingSvcFacade, reversalService portssvc.ReversalSvcFacade) {
	handler := newPostingHandler(postingService, reversalService)

	postings := group.Group("/postings")
	{
		postings.POST("/", handler.postEntry)
		postings.POST("/reversals", handler.reverseEntry)
	}
}
