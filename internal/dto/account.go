package dto

import (
	"github.com/atlaserp/ledger_engine/internal/core/domain"
)

// CreateAccountRequest carries the fields for a new chart-of-accounts node.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required"`
	ParentAccountID string             `json:"parentAccountID"`
	Description     string             `json:"description"`
}

// AccountResponse is the API shape of an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	ParentAccountID string             `json:"parentAccountID,omitempty"`
	IsActive        bool               `json:"isActive"`
}

// ToAccountResponse maps a domain account to its API shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     a.AccountType,
		ParentAccountID: a.ParentAccountID,
		IsActive:        a.IsActive,
	}
}
