package pgsql

import (
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)
	postingLinkRepo := newPgxPostingLinkRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	periodRepo := newPgxPeriodRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		EntryRepo:       entryRepo,
		PostingLinkRepo: postingLinkRepo,
		AuditRepo:       auditRepo,
		PeriodRepo:      periodRepo,
		ReportingRepo:   reportingRepo,
	}
}
