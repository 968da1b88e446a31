package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		JournalRepo:    newPgxJournalRepository(dbPool),
		ReportingRepo:  newPgxReportingRepository(dbPool),
		AuditRepo:      newPgxAuditRepository(dbPool),
		CommissionRepo: newPgxCommissionRepository(dbPool),
	}
}
