// Package strategies holds the amount-derivation helpers domain modules use to
// turn their business documents into balanced posting lines. Each builder's
// only contract with the posting engine is a balanced line set; the engine
// never special-cases source types.
package strategies

import "errors"

// Source type tags the domain modules post under.
const (
	SourceSalesDoc          = "sales_doc"
	SourcePayment           = "payment"
	SourceInventoryMovement = "inventory_movement"
	SourcePayrollRun        = "payroll_run"
)

// ErrZeroCost is returned when an inventory movement has no unit cost and the
// product carries no default cost either. Zero-value legs are blocked pending
// cost entry rather than posted with no financial impact.
var ErrZeroCost = errors.New("inventory movement has no unit cost and no product default cost")

// ErrNonPositiveAmount is returned when a document's monetary amount is zero
// or negative.
var ErrNonPositiveAmount = errors.New("document amount must be positive")
