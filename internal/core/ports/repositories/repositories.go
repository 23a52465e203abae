package repositories

// RepositoryProvider bundles the repository facades for service wiring.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	EntryRepo       EntryRepositoryFacade
	PostingLinkRepo PostingLinkRepositoryFacade
	AuditRepo       AuditRepositoryFacade
	PeriodRepo      PeriodRepositoryFacade
	ReportingRepo   ReportingRepositoryFacade
}
