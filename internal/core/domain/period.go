package domain

import "time"

// PeriodStatus indicates whether an accounting period accepts postings.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// AccountingPeriod is a tenant-scoped date range that can be locked against
// further postings. The validation gate consults periods before any write.
type AccountingPeriod struct {
	PeriodID  string       `json:"periodID"` // Primary Key (UUID)
	TenantID  string       `json:"tenantID"`
	Name      string       `json:"name"` // e.g. "2026-08"
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"` // Inclusive
	Status    PeriodStatus `json:"status"`
	AuditFields
}

// Contains reports whether d falls inside the period's date range.
func (p AccountingPeriod) Contains(d time.Time) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}
