package repositories

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// AccountRepository defines persistence operations for ledger accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account and populates its generated ID.
	SaveAccount(ctx context.Context, account *domain.Account) error
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	// FindAccounts returns all accounts ordered by code.
	FindAccounts(ctx context.Context) ([]domain.Account, error)
	// FindAccountsByIDs returns the subset of the given IDs that exist,
	// keyed by account ID.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)
}
