package repositories

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// CurrencyRepository defines persistence operations for the currency catalog.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency *domain.Currency) error
	FindCurrencies(ctx context.Context) ([]domain.Currency, error)
}
