package services

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// ReportingSvcFacade derives financial reports from posted journal lines.
type ReportingSvcFacade interface {
	ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error)
	BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)
}
