package dto

import (
	"time"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one line of a posting request. Debit and
// credit default to zero when omitted.
type CreateJournalLineRequest struct {
	AccountID   int64           `json:"account_id" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest defines the data required to post an entry.
type CreateJournalEntryRequest struct {
	Ref        string                     `json:"ref"`
	Memo       string                     `json:"memo"`
	CurrencyID *int64                     `json:"currency_id"`
	Lines      []CreateJournalLineRequest `json:"lines" binding:"required"`
}

// JournalLineResponse defines the line data returned to callers.
type JournalLineResponse struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntryResponse defines the entry data returned to callers, lines in
// posting order.
type JournalEntryResponse struct {
	ID         int64                 `json:"id"`
	Ref        string                `json:"ref,omitempty"`
	Memo       string                `json:"memo,omitempty"`
	CurrencyID *int64                `json:"currency_id,omitempty"`
	PostedAt   time.Time             `json:"posted_at"`
	Lines      []JournalLineResponse `json:"lines"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			ID:          l.LineID,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return JournalEntryResponse{
		ID:         e.EntryID,
		Ref:        e.Ref,
		Memo:       e.Memo,
		CurrencyID: e.CurrencyID,
		PostedAt:   e.PostedAt,
		Lines:      lines,
	}
}

// ToJournalEntryResponses converts a slice of domain entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
