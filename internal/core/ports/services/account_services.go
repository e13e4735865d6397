package services

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	"github.com/hqasem/small-biz-erp/internal/dto"
)

// AccountSvcFacade defines ledger account operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
