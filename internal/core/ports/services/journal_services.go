package services

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	"github.com/hqasem/small-biz-erp/internal/dto"
)

// JournalSvcFacade defines journal posting and retrieval operations.
type JournalSvcFacade interface {
	// PostEntry validates the double-entry invariant and persists the entry
	// with all its lines atomically. Unbalanced requests fail with
	// apperrors.ErrUnbalancedEntry and persist nothing.
	PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}
