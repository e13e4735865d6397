package dto

import (
	"github.com/hqasem/small-biz-erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitAndLossResponse is the payload for GET /reports/pl.
type ProfitAndLossResponse struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// BalanceSheetResponse is the payload for GET /reports/balance_sheet.
type BalanceSheetResponse struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// ToProfitAndLossResponse converts the domain report to its DTO.
func ToProfitAndLossResponse(r *domain.ProfitAndLossReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		Revenue:  r.Revenue,
		Expenses: r.Expenses,
		Profit:   r.Profit,
	}
}

// ToBalanceSheetResponse converts the domain report to its DTO.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:      r.Assets,
		Liabilities: r.Liabilities,
		Equity:      r.Equity,
	}
}
