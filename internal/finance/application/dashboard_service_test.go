package application

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	"github.com/gesteasy/GestEasy/internal/finance/infrastructure"
)

const dashboardTestUser = "user-1"

func newDashboardService(transactions []domain.Transaction) *DashboardService {
	repo := &infrastructure.MockDashboardRepository{Transactions: transactions}
	clock := fixedClock{now: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)}
	return NewDashboardService(repo, clock)
}

func TestGetSummary_SingleExpense(t *testing.T) {
	service := newDashboardService([]domain.Transaction{
		{UserID: dashboardTestUser, Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("50.00"), Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	})

	summary, err := service.GetSummary(dashboardTestUser, 3, 2024)
	assert.NoError(t, err)
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("-50.00")))
	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, 2024, summary.Year)
}

func TestGetSummary_EmptyPeriodIsAllZeros(t *testing.T) {
	service := newDashboardService(nil)

	summary, err := service.GetSummary(dashboardTestUser, 7, 2024)
	assert.NoError(t, err)
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestGetSummary_DefaultsToCurrentPeriod(t *testing.T) {
	service := newDashboardService([]domain.Transaction{
		{UserID: dashboardTestUser, Type: domain.TransactionTypeIncome, Amount: decimal.RequireFromString("100.00"), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: dashboardTestUser, Type: domain.TransactionTypeIncome, Amount: decimal.RequireFromString("999.00"), Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	})

	summary, err := service.GetSummary(dashboardTestUser, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, 2024, summary.Year)
	assert.True(t, summary.Income.Equal(decimal.RequireFromString("100.00")))
}

func TestGetExpensesByCategory_SortedDescending(t *testing.T) {
	service := newDashboardService([]domain.Transaction{
		{UserID: dashboardTestUser, Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("30.00"), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), CategoryName: "Transport", CategoryColor: "#007bff"},
		{UserID: dashboardTestUser, Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("80.00"), Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), CategoryName: "Food", CategoryColor: "#fd7e14"},
		{UserID: dashboardTestUser, Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("20.00"), Date: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), CategoryName: "Food", CategoryColor: "#fd7e14"},
	})

	totals, err := service.GetExpensesByCategory(dashboardTestUser, 3, 2024)
	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, "Food", totals[0].Category)
	assert.True(t, totals[0].Total.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "Transport", totals[1].Category)
}

func TestGetMonthlySeries_TwelveZeroFilledEntries(t *testing.T) {
	service := newDashboardService([]domain.Transaction{
		{UserID: dashboardTestUser, Type: domain.TransactionTypeIncome, Amount: decimal.RequireFromString("100.00"), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: dashboardTestUser, Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("40.00"), Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	})

	series, err := service.GetMonthlySeries(dashboardTestUser, 2024)
	assert.NoError(t, err)
	assert.Len(t, series, 12)

	for i, total := range series {
		assert.Equal(t, i+1, total.Month)
	}
	assert.True(t, series[2].Income.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, series[6].Expense.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, series[0].Income.IsZero())
	assert.True(t, series[11].Expense.IsZero())
}

func TestGetBalanceEvolution_IsCumulative(t *testing.T) {
	service := newDashboardService([]domain.Transaction{
		{UserID: dashboardTestUser, Type: domain.TransactionTypeIncome, Amount: decimal.RequireFromString("100.00"), Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: dashboardTestUser, Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("30.00"), Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: dashboardTestUser, Type: domain.TransactionTypeIncome, Amount: decimal.RequireFromString("50.00"), Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
	})

	evolution, err := service.GetBalanceEvolution(dashboardTestUser, 2024)
	assert.NoError(t, err)
	assert.Len(t, evolution, 12)

	assert.True(t, evolution[0].Balance.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, evolution[1].Balance.Equal(decimal.RequireFromString("70.00")))
	// Months without activity carry the balance forward.
	assert.True(t, evolution[2].Balance.Equal(decimal.RequireFromString("70.00")))
	assert.True(t, evolution[3].Balance.Equal(decimal.RequireFromString("70.00")))
	assert.True(t, evolution[4].Balance.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, evolution[11].Balance.Equal(decimal.RequireFromString("120.00")))

	// The invariant: each entry equals the previous plus the month's net.
	series, err := service.GetMonthlySeries(dashboardTestUser, 2024)
	assert.NoError(t, err)
	balance := decimal.Zero
	for i := range series {
		balance = balance.Add(series[i].Income.Sub(series[i].Expense))
		assert.True(t, evolution[i].Balance.Equal(balance))
	}
}

func TestGetRecentTransactions_DefaultLimit(t *testing.T) {
	var transactions []domain.Transaction
	for i := 1; i <= 15; i++ {
		transactions = append(transactions, domain.Transaction{
			ID:     i,
			UserID: dashboardTestUser,
			Type:   domain.TransactionTypeExpense,
			Amount: decimal.RequireFromString("1.00"),
			Date:   time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC),
		})
	}
	service := newDashboardService(transactions)

	recent, err := service.GetRecentTransactions(dashboardTestUser, 0)
	assert.NoError(t, err)
	assert.Len(t, recent, 10)
	// Newest first.
	assert.Equal(t, 15, recent[0].ID)
}
