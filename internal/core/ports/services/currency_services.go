package services

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	"github.com/hqasem/small-biz-erp/internal/dto"
)

// CurrencySvcFacade defines currency catalog operations.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
