package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// IsValid reports whether t is one of the five closed account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is a ledger node. Accounts form a tree through ParentAccountID
// for report rollups; the type determines which side of a report the
// account's postings land on.
type Account struct {
	AccountID       int64       `json:"accountID"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID *int64      `json:"parentAccountID,omitempty"`
	CurrencyID      *int64      `json:"currencyID,omitempty"`
}
