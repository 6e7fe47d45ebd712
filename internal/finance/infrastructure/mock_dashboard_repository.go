package infrastructure

import (
	"sort"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// MockDashboardRepository computes the read-side aggregates from an in-memory
// transaction slice.
type MockDashboardRepository struct {
	Transactions []domain.Transaction
	Err          error
}

func (m *MockDashboardRepository) SumByType(userID string, month, year int) (decimal.Decimal, decimal.Decimal, error) {
	if m.Err != nil {
		return decimal.Zero, decimal.Zero, m.Err
	}
	income, expense := decimal.Zero, decimal.Zero
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID ||
			int(transaction.Date.Month()) != month || transaction.Date.Year() != year {
			continue
		}
		if transaction.Type == domain.TransactionTypeIncome {
			income = income.Add(transaction.Amount)
		} else {
			expense = expense.Add(transaction.Amount)
		}
	}
	return income, expense, nil
}

func (m *MockDashboardRepository) ExpenseTotalsByCategory(userID string, month, year int) ([]domain.CategoryTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	totalsByName := map[string]*domain.CategoryTotal{}
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID ||
			transaction.Type != domain.TransactionTypeExpense ||
			int(transaction.Date.Month()) != month || transaction.Date.Year() != year {
			continue
		}
		total, ok := totalsByName[transaction.CategoryName]
		if !ok {
			total = &domain.CategoryTotal{
				Category: transaction.CategoryName,
				Color:    transaction.CategoryColor,
				Total:    decimal.Zero,
			}
			totalsByName[transaction.CategoryName] = total
		}
		total.Total = total.Total.Add(transaction.Amount)
	}

	var totals []domain.CategoryTotal
	for _, total := range totalsByName {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Total.GreaterThan(totals[j].Total) })
	return totals, nil
}

func (m *MockDashboardRepository) MonthlyTotals(userID string, year int) ([]domain.MonthlyTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	totalsByMonth := map[int]*domain.MonthlyTotal{}
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID || transaction.Date.Year() != year {
			continue
		}
		month := int(transaction.Date.Month())
		total, ok := totalsByMonth[month]
		if !ok {
			total = &domain.MonthlyTotal{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
			totalsByMonth[month] = total
		}
		if transaction.Type == domain.TransactionTypeIncome {
			total.Income = total.Income.Add(transaction.Amount)
		} else {
			total.Expense = total.Expense.Add(transaction.Amount)
		}
	}

	var totals []domain.MonthlyTotal
	for _, total := range totalsByMonth {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals, nil
}

func (m *MockDashboardRepository) FindRecent(userID string, limit int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].ID > transactions[j].ID
	})
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}
