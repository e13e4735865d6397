package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hqasem/small-biz-erp/internal/apperrors"
	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
	"github.com/hqasem/small-biz-erp/internal/dto"
	"github.com/hqasem/small-biz-erp/internal/middleware"
)

// accountService implements AccountSvcFacade.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates and persists a new ledger account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountType := domain.AccountType(req.Type)
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.Type)
	}

	account := &domain.Account{
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     accountType,
		ParentAccountID: req.ParentID,
		CurrencyID:      req.CurrencyID,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.Int64("account_id", account.AccountID), slog.String("code", account.Code))
	return account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves all accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.FindAccounts(ctx)
}
