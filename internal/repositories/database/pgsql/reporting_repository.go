package pgsql

import (
	"context"
	"fmt"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// NewPgxReportingRepository creates a new repository for report aggregates.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountTypeTotals sums posted debits and credits per account type.
// Amounts stay NUMERIC end to end; the sums never pass through binary
// floating point.
func (r *PgxReportingRepository) GetAccountTypeTotals(ctx context.Context) (map[domain.AccountType]domain.AccountTypeTotal, error) {
	query := `
		SELECT
			a.type,
			COALESCE(SUM(l.debit), 0)  AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		GROUP BY a.type;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate account type totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[domain.AccountType]domain.AccountTypeTotal)
	for rows.Next() {
		var accountType string
		var totalDebit, totalCredit decimal.Decimal
		if err := rows.Scan(&accountType, &totalDebit, &totalCredit); err != nil {
			return nil, fmt.Errorf("failed to scan account type total row: %w", err)
		}
		t := domain.AccountType(accountType)
		totals[t] = domain.AccountTypeTotal{
			AccountType: t,
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account type total rows: %w", err)
	}
	return totals, nil
}
