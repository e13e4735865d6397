package services

import (
	"context"
	"fmt"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
	"github.com/hqasem/small-biz-erp/internal/dto"
)

// currencyService implements CurrencySvcFacade.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency persists a new currency.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	currency := &domain.Currency{
		Code:   req.Code,
		Name:   req.Name,
		Symbol: req.Symbol,
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to save currency: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.FindCurrencies(ctx)
}
