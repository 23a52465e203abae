package models

import "time"

// PeriodStatus mirrors the domain period statuses at the storage layer.
type PeriodStatus string

// AccountingPeriod is the accounting_periods table row.
type AccountingPeriod struct {
	PeriodID  string       `db:"period_id"`
	TenantID  string       `db:"tenant_id"`
	Name      string       `db:"name"`
	StartDate time.Time    `db:"start_date"`
	EndDate   time.Time    `db:"end_date"`
	Status    PeriodStatus `db:"status"`
	AuditFields
}
