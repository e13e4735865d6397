package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hqasem/small-biz-erp/internal/apperrors"
	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// NewPgxJournalRepository creates a new repository for journal entry and
// line data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveEntry persists the entry and all of its lines within one database
// transaction. A failure on any line rolls back the whole entry, so a
// partially written posting is never visible to other readers.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO journal_entries (ref, memo, currency_id, posted_at)
		VALUES (NULLIF($1, ''), NULLIF($2, ''), $3, $4)
		RETURNING entry_id;
	`
	err = tx.QueryRow(ctx, entryQuery,
		entry.Ref,
		entry.Memo,
		entry.CurrencyID,
		entry.PostedAt,
	).Scan(&entry.EntryID)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	lineQuery := `
		INSERT INTO journal_lines (entry_id, account_id, description, debit, credit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING line_id;
	`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		batch.Queue(lineQuery,
			entry.EntryID,
			line.AccountID,
			line.Description,
			line.Debit,
			line.Credit,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range entry.Lines {
		entry.Lines[i].EntryID = entry.EntryID
		if err := br.QueryRow().Scan(&entry.Lines[i].LineID); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert journal line %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute journal line batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry with its lines in insertion order.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, COALESCE(ref, ''), COALESCE(memo, ''), currency_id, posted_at
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var entry domain.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&entry.EntryID,
		&entry.Ref,
		&entry.Memo,
		&entry.CurrencyID,
		&entry.PostedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, []int64{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return &entry, nil
}

// FindEntries retrieves all journal entries newest-first, each with its
// lines.
func (r *PgxJournalRepository) FindEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, COALESCE(ref, ''), COALESCE(memo, ''), currency_id, posted_at
		FROM journal_entries
		ORDER BY posted_at DESC, entry_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	var entryIDs []int64
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.EntryID,
			&entry.Ref,
			&entry.Memo,
			&entry.CurrencyID,
			&entry.PostedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, entry)
		entryIDs = append(entryIDs, entry.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entry rows: %w", err)
	}

	if len(entries) == 0 {
		return entries, nil
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}
	return entries, nil
}

// findLinesByEntryIDs fetches lines for a set of entries in one query,
// keyed by entry ID, ordered by line ID so callers see posting order.
func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, COALESCE(description, ''), debit, credit
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal lines: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(
			&line.LineID,
			&line.EntryID,
			&line.AccountID,
			&line.Description,
			&line.Debit,
			&line.Credit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		result[line.EntryID] = append(result[line.EntryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal line rows: %w", err)
	}
	return result, nil
}
