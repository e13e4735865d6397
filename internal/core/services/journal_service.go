package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hqasem/small-biz-erp/internal/apperrors"
	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
	"github.com/hqasem/small-biz-erp/internal/dto"
	"github.com/hqasem/small-biz-erp/internal/middleware"
	"github.com/shopspring/decimal"
)

// journalService implements JournalSvcFacade. It owns the double-entry
// invariant: an entry's debit lines must sum to exactly its credit lines
// before anything is persisted.
type journalService struct {
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines checks structural line validity: non-negative amounts and
// exactly one nonzero side per line.
func (s *journalService) validateLines(lines []dto.CreateJournalLineRequest) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: at least one line is required", apperrors.ErrValidation)
	}
	for i, line := range lines {
		if line.AccountID == 0 {
			return fmt.Errorf("%w: account_id required on line %d", apperrors.ErrValidation, i)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: amounts must be non-negative on line %d", apperrors.ErrValidation, i)
		}
		if line.Debit.IsZero() == line.Credit.IsZero() {
			return fmt.Errorf("%w: exactly one of debit or credit must be positive on line %d", apperrors.ErrValidation, i)
		}
	}
	return nil
}

// PostEntry validates the balance invariant with exact decimal arithmetic
// and persists the entry and its lines as one atomic unit. On any failure
// nothing is persisted.
func (s *journalService) PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateLines(req.Lines); err != nil {
		return nil, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	accountIDs := make([]int64, 0, len(req.Lines))
	for _, line := range req.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
		accountIDs = append(accountIDs, line.AccountID)
	}

	if !totalDebit.Equal(totalCredit) {
		return nil, fmt.Errorf("%w: debit total %s, credit total %s",
			apperrors.ErrUnbalancedEntry, totalDebit.String(), totalCredit.String())
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueInt64s(accountIDs))
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, found := accounts[id]; !found {
			return nil, fmt.Errorf("%w: unknown account %d", apperrors.ErrValidation, id)
		}
	}

	entry := &domain.JournalEntry{
		Ref:        req.Ref,
		Memo:       req.Memo,
		CurrencyID: req.CurrencyID,
		PostedAt:   time.Now().UTC(),
		Lines:      make([]domain.JournalLine, len(req.Lines)),
	}
	for i, line := range req.Lines {
		entry.Lines[i] = domain.JournalLine{
			AccountID:   line.AccountID,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry posted",
		slog.Int64("entry_id", entry.EntryID),
		slog.String("total", totalDebit.String()))
	return entry, nil
}

// GetEntryByID retrieves a posted entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, entryID)
}

// ListEntries retrieves all posted entries, newest first.
func (s *journalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.journalRepo.FindEntries(ctx)
}

// uniqueInt64s returns a slice containing only the unique values from the
// input, preserving first-seen order.
func uniqueInt64s(input []int64) []int64 {
	seen := make(map[int64]struct{}, len(input))
	result := make([]int64, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
