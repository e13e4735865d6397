package domain

import "github.com/shopspring/decimal"

// AccountTypeTotal aggregates posted debits and credits across all accounts
// of a single type. Totals are zero, not absent, when no lines match.
type AccountTypeTotal struct {
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// ProfitAndLossReport summarises revenue and expense activity.
// Profit = Revenue - Expenses.
type ProfitAndLossReport struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// BalanceSheetReport summarises the balance-sheet account types.
// Each figure is Sum(debit) - Sum(credit) over accounts of that type.
type BalanceSheetReport struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}
