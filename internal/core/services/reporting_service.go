package services

import (
	"context"
	"fmt"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements ReportingSvcFacade on top of per-type
// debit/credit aggregates. Account types with no posted lines contribute
// zero, never an error.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// creditBalance is Sum(credit) - Sum(debit) for the given type; the natural
// balance of revenue accounts.
func creditBalance(totals map[domain.AccountType]domain.AccountTypeTotal, t domain.AccountType) decimal.Decimal {
	total, ok := totals[t]
	if !ok {
		return decimal.Zero
	}
	return total.TotalCredit.Sub(total.TotalDebit)
}

// debitBalance is Sum(debit) - Sum(credit) for the given type; the natural
// balance of asset and expense accounts.
func debitBalance(totals map[domain.AccountType]domain.AccountTypeTotal, t domain.AccountType) decimal.Decimal {
	total, ok := totals[t]
	if !ok {
		return decimal.Zero
	}
	return total.TotalDebit.Sub(total.TotalCredit)
}

// ProfitAndLoss computes revenue, expenses, and profit from posted lines.
func (s *reportingService) ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error) {
	totals, err := s.reportingRepo.GetAccountTypeTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve account type totals: %w", err)
	}

	revenue := creditBalance(totals, domain.Revenue)
	expenses := debitBalance(totals, domain.Expense)

	return &domain.ProfitAndLossReport{
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue.Sub(expenses),
	}, nil
}

// BalanceSheet computes assets, liabilities, and equity from posted lines.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	totals, err := s.reportingRepo.GetAccountTypeTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve account type totals: %w", err)
	}

	return &domain.BalanceSheetReport{
		Assets:      debitBalance(totals, domain.Asset),
		Liabilities: debitBalance(totals, domain.Liability),
		Equity:      debitBalance(totals, domain.Equity),
	}, nil
}
