package strategies

import (
	"fmt"

	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// MovementDirection distinguishes stock coming in from stock going out.
type MovementDirection string

const (
	MovementReceipt MovementDirection = "RECEIPT"
	MovementIssue   MovementDirection = "ISSUE"
)

// InventoryMovement is the slice of a stock movement the posting strategy needs.
// UnitCost of zero falls back to ProductDefaultCost; if that is zero too, the
// movement is blocked rather than posted at zero value.
type InventoryMovement struct {
	MovementRef        string
	Direction          MovementDirection
	Quantity           decimal.Decimal
	UnitCost           decimal.Decimal
	ProductDefaultCost decimal.Decimal
}

// InventoryAccounts names the accounts a stock movement touches.
type InventoryAccounts struct {
	Inventory string
	Clearing  string
}

// BuildInventoryMovementLines derives the posting lines for a stock movement
// at cost basis: receipts debit inventory against the clearing account, issues
// do the opposite.
func BuildInventoryMovementLines(m InventoryMovement, accounts InventoryAccounts) ([]dto.PostingLineRequest, error) {
	if !m.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: movement %s quantity is %s", ErrNonPositiveAmount, m.MovementRef, m.Quantity)
	}

	cost := m.UnitCost
	if cost.IsZero() {
		cost = m.ProductDefaultCost
	}
	if cost.IsZero() {
		return nil, fmt.Errorf("%w: movement %s", ErrZeroCost, m.MovementRef)
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: movement %s unit cost is %s", ErrNonPositiveAmount, m.MovementRef, cost)
	}

	value := m.Quantity.Mul(cost)
	desc := "Movement " + m.MovementRef

	switch m.Direction {
	case MovementReceipt:
		return []dto.PostingLineRequest{
			{AccountID: accounts.Inventory, Debit: value, Description: desc},
			{AccountID: accounts.Clearing, Credit: value, Description: desc},
		}, nil
	case MovementIssue:
		return []dto.PostingLineRequest{
			{AccountID: accounts.Clearing, Debit: value, Description: desc},
			{AccountID: accounts.Inventory, Credit: value, Description: desc},
		}, nil
	default:
		return nil, fmt.Errorf("unknown movement direction %q for movement %s", m.Direction, m.MovementRef)
	}
}
