package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	"github.com/hqasem/small-biz-erp/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetAccountTypeTotals(ctx context.Context) (map[domain.AccountType]domain.AccountTypeTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountType]domain.AccountTypeTotal), args.Error(1)
}

func TestProfitAndLoss(t *testing.T) {
	repo := new(MockReportingRepository)
	repo.On("GetAccountTypeTotals", mock.Anything).Return(map[domain.AccountType]domain.AccountTypeTotal{
		domain.Revenue: {AccountType: domain.Revenue, TotalDebit: dec("50.00"), TotalCredit: dec("1250.00")},
		domain.Expense: {AccountType: domain.Expense, TotalDebit: dec("400.00"), TotalCredit: dec("0")},
	}, nil)
	svc := services.NewReportingService(repo)

	report, err := svc.ProfitAndLoss(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Revenue.Equal(dec("1200.00")), "revenue = credits - debits")
	assert.True(t, report.Expenses.Equal(dec("400.00")))
	assert.True(t, report.Profit.Equal(dec("800.00")))
}

func TestProfitAndLossEmptyLedger(t *testing.T) {
	repo := new(MockReportingRepository)
	repo.On("GetAccountTypeTotals", mock.Anything).Return(map[domain.AccountType]domain.AccountTypeTotal{}, nil)
	svc := services.NewReportingService(repo)

	report, err := svc.ProfitAndLoss(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Revenue.IsZero())
	assert.True(t, report.Expenses.IsZero())
	assert.True(t, report.Profit.IsZero())
}

func TestBalanceSheet(t *testing.T) {
	repo := new(MockReportingRepository)
	repo.On("GetAccountTypeTotals", mock.Anything).Return(map[domain.AccountType]domain.AccountTypeTotal{
		domain.Asset:     {AccountType: domain.Asset, TotalDebit: dec("900.00"), TotalCredit: dec("100.00")},
		domain.Liability: {AccountType: domain.Liability, TotalDebit: dec("50.00"), TotalCredit: dec("350.00")},
	}, nil)
	svc := services.NewReportingService(repo)

	report, err := svc.BalanceSheet(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Assets.Equal(dec("800.00")))
	assert.True(t, report.Liabilities.Equal(dec("-300.00")))
	assert.True(t, report.Equity.IsZero(), "no equity postings yet")
}

func TestReportsPropagateRepositoryError(t *testing.T) {
	repo := new(MockReportingRepository)
	repo.On("GetAccountTypeTotals", mock.Anything).Return(nil, errors.New("connection reset"))
	svc := services.NewReportingService(repo)

	_, err := svc.ProfitAndLoss(context.Background())
	assert.Error(t, err)

	_, err = svc.BalanceSheet(context.Background())
	assert.Error(t, err)
}
