package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PayComponentMode selects how an earning or deduction amount is computed.
type PayComponentMode string

const (
	FixedAmount    PayComponentMode = "FIXED_AMOUNT"
	PercentOfBasis PayComponentMode = "PERCENT_OF_BASIS"
)

// EarningOrDeduction is one payroll component. The amount is resolved exactly
// once, at posting time; the resolved value is what gets persisted, never the
// percent.
type EarningOrDeduction struct {
	Name    string           `json:"name"`
	Mode    PayComponentMode `json:"mode"`
	Amount  decimal.Decimal  `json:"amount"`  // Used when Mode is FIXED_AMOUNT
	Percent decimal.Decimal  `json:"percent"` // Used when Mode is PERCENT_OF_BASIS
}

// Resolve computes the component's monetary value against the given basis.
func (e EarningOrDeduction) Resolve(basis decimal.Decimal) (decimal.Decimal, error) {
	switch e.Mode {
	case FixedAmount:
		return e.Amount, nil
	case PercentOfBasis:
		return basis.Mul(e.Percent).Div(decimal.NewFromInt(100)), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown pay component mode %q for %q", e.Mode, e.Name)
	}
}
