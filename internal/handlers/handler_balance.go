package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// balanceHandler handles HTTP requests for account balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(balanceService portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: balanceService}
}

// getBalance returns an account's signed balance as of a date (defaults to today).
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	tenantID, ok := middleware.TenantIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	balance, err := h.balanceService.BalanceAsOf(c.Request.Context(), tenantID, accountID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownAccount) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to compute balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		AsOf:      asOf.Format(dateLayout),
		Balance:   balance,
	})
}

// getRangeBalances returns signed balances for a batch of accounts over a date range.
func (h *balanceHandler) getRangeBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.RangeBalancesRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, ok := middleware.TenantIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, err := time.Parse(dateLayout, req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dateLayout, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	balances, err := h.balanceService.BalancesForRange(c.Request.Context(), tenantID, req.AccountIDs, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownAccount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute range balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.RangeBalancesResponse{Balances: balances})
}

// registerBalanceRoutes registers balance read routes
func registerBalanceRoutes(group *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	handler := newBalanceHandler(balanceService)

	balances := group.Group("/balances")
	{
		balances.GET("/:accountID", handler.getBalance)
		balances.POST("/range", handler.getRangeBalances)
	}
}
