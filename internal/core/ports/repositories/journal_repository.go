package repositories

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// JournalRepository defines persistence operations for journal entries and
// their lines.
type JournalRepository interface {
	// SaveEntry persists the entry and all of its lines inside a single
	// database transaction; either everything commits or nothing does.
	// Generated IDs and the posting timestamp are written back into entry.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry) error
	// FindEntryByID returns the entry with its lines in insertion order.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)
	// FindEntries returns entries newest-first, each with its lines.
	FindEntries(ctx context.Context) ([]domain.JournalEntry, error)
}
