package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is an immutable-once-posted financial record. An entry is
// either absent or posted; there is no draft or amend state, so correcting
// a mistake means posting a new offsetting entry.
type JournalEntry struct {
	EntryID    int64         `json:"entryID"`
	Ref        string        `json:"ref,omitempty"`
	Memo       string        `json:"memo,omitempty"`
	CurrencyID *int64        `json:"currencyID,omitempty"`
	PostedAt   time.Time     `json:"postedAt"`
	Lines      []JournalLine `json:"lines"`
}

// JournalLine belongs to exactly one entry and references exactly one
// account. Amounts are non-negative and exactly one of Debit/Credit is
// nonzero for a well-formed line.
type JournalLine struct {
	LineID      int64           `json:"lineID"`
	EntryID     int64           `json:"entryID"`
	AccountID   int64           `json:"accountID"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
