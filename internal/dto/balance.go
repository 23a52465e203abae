package dto

import (
	"github.com/shopspring/decimal"
)

// BalanceResponse is the signed balance of one account as of a date.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      string          `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// RangeBalancesRequest asks for batched balances over a date range.
type RangeBalancesRequest struct {
	AccountIDs []string `json:"accountIDs" binding:"required,min=1"`
	From       string   `json:"from" binding:"required"`
	To         string   `json:"to" binding:"required"`
}

// RangeBalancesResponse maps account IDs to their signed balances.
type RangeBalancesResponse struct {
	Balances map[string]decimal.Decimal `json:"balances"`
}
