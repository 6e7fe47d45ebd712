package application

import (
	"github.com/gesteasy/GestEasy/internal/finance/domain"
	"github.com/shopspring/decimal"
)

const defaultRecentLimit = 10

type DashboardService struct {
	repo  domain.DashboardRepository
	clock domain.Clock
}

func NewDashboardService(repo domain.DashboardRepository, clock domain.Clock) *DashboardService {
	return &DashboardService{repo: repo, clock: clock}
}

func (s *DashboardService) defaultPeriod(month, year int) (int, int) {
	if month == 0 || year == 0 {
		now := s.clock.Now()
		return int(now.Month()), now.Year()
	}
	return month, year
}

func (s *DashboardService) defaultYear(year int) int {
	if year == 0 {
		return s.clock.Now().Year()
	}
	return year
}

// GetSummary returns the income/expense totals and balance of a period. A
// period without transactions yields zeros.
func (s *DashboardService) GetSummary(userID string, month, year int) (*domain.PeriodSummary, error) {
	month, year = s.defaultPeriod(month, year)
	income, expense, err := s.repo.SumByType(userID, month, year)
	if err != nil {
		return nil, err
	}
	return &domain.PeriodSummary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
		Month:   month,
		Year:    year,
	}, nil
}

func (s *DashboardService) GetExpensesByCategory(userID string, month, year int) ([]domain.CategoryTotal, error) {
	month, year = s.defaultPeriod(month, year)
	totals, err := s.repo.ExpenseTotalsByCategory(userID, month, year)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		return []domain.CategoryTotal{}, nil
	}
	return totals, nil
}

// GetMonthlySeries returns exactly 12 entries, one per month, zero-filled
// where the year has no transactions.
func (s *DashboardService) GetMonthlySeries(userID string, year int) ([]domain.MonthlyTotal, error) {
	totals, err := s.repo.MonthlyTotals(userID, s.defaultYear(year))
	if err != nil {
		return nil, err
	}

	series := make([]domain.MonthlyTotal, 12)
	for i := range series {
		series[i] = domain.MonthlyTotal{Month: i + 1, Income: decimal.Zero, Expense: decimal.Zero}
	}
	for _, total := range totals {
		if total.Month >= 1 && total.Month <= 12 {
			series[total.Month-1] = total
		}
	}
	return series, nil
}

// GetBalanceEvolution returns 12 entries of cumulative balance. A month
// without transactions carries the previous balance forward unchanged.
func (s *DashboardService) GetBalanceEvolution(userID string, year int) ([]domain.MonthlyBalance, error) {
	series, err := s.GetMonthlySeries(userID, year)
	if err != nil {
		return nil, err
	}

	evolution := make([]domain.MonthlyBalance, 12)
	balance := decimal.Zero
	for i, total := range series {
		balance = balance.Add(total.Income.Sub(total.Expense))
		evolution[i] = domain.MonthlyBalance{Month: i + 1, Balance: balance}
	}
	return evolution, nil
}

func (s *DashboardService) GetRecentTransactions(userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	transactions, err := s.repo.FindRecent(userID, limit)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}
