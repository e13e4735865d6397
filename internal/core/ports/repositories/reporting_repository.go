package repositories

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// ReportingRepository aggregates posted journal lines for reports.
type ReportingRepository interface {
	// GetAccountTypeTotals returns summed debits and credits per account
	// type, keyed by type. Types with no posted lines are simply absent.
	GetAccountTypeTotals(ctx context.Context) (map[domain.AccountType]domain.AccountTypeTotal, error)
}
