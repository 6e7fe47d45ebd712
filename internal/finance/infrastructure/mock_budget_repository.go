package infrastructure

import (
	"time"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// MockBudgetRepository keeps budgets in memory and computes spent amounts
// from the Transactions slice, the way the SQL join would.
type MockBudgetRepository struct {
	Budgets      []domain.Budget
	Categories   []domain.Category
	Transactions []domain.Transaction
	Err          error

	nextID int
}

func (m *MockBudgetRepository) spentFor(budget domain.Budget) decimal.Decimal {
	spent := decimal.Zero
	for _, transaction := range m.Transactions {
		if transaction.UserID != budget.UserID ||
			transaction.CategoryID != budget.CategoryID ||
			transaction.Type != domain.TransactionTypeExpense {
			continue
		}
		if int(transaction.Date.Month()) != budget.Month || transaction.Date.Year() != budget.Year {
			continue
		}
		spent = spent.Add(transaction.Amount)
	}
	return spent
}

func (m *MockBudgetRepository) statusFor(budget domain.Budget) domain.BudgetStatus {
	status := domain.BudgetStatus{Budget: budget, SpentAmount: m.spentFor(budget)}
	for _, category := range m.Categories {
		if category.ID == budget.CategoryID {
			status.CategoryName = category.Name
			status.CategoryColor = category.Color
			break
		}
	}
	return status
}

func (m *MockBudgetRepository) FindByPeriod(userID string, month, year int) ([]domain.BudgetStatus, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var statuses []domain.BudgetStatus
	for _, budget := range m.Budgets {
		if budget.UserID == userID && budget.Month == month && budget.Year == year {
			statuses = append(statuses, m.statusFor(budget))
		}
	}
	return statuses, nil
}

func (m *MockBudgetRepository) FindByID(userID string, budgetID int) (*domain.BudgetStatus, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, budget := range m.Budgets {
		if budget.ID == budgetID && budget.UserID == userID {
			status := m.statusFor(budget)
			return &status, nil
		}
	}
	return nil, financeErrors.NewNotFoundError("Budget")
}

func (m *MockBudgetRepository) ExistsForPeriod(userID string, categoryID, month, year, excludeID int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, budget := range m.Budgets {
		if budget.UserID == userID && budget.CategoryID == categoryID &&
			budget.Month == month && budget.Year == year && budget.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockBudgetRepository) Save(budget *domain.Budget) error {
	if m.Err != nil {
		return m.Err
	}
	// Mirrors the unique index on (user_id, category_id, month, year).
	exists, _ := m.ExistsForPeriod(budget.UserID, budget.CategoryID, budget.Month, budget.Year, 0)
	if exists {
		return financeErrors.ErrDuplicateBudgetPeriod
	}
	m.nextID++
	budget.ID = m.nextID
	budget.CreatedAt = time.Now()
	budget.UpdatedAt = budget.CreatedAt
	m.Budgets = append(m.Budgets, *budget)
	return nil
}

func (m *MockBudgetRepository) Update(userID string, budgetID int, patch domain.BudgetPatch) error {
	if m.Err != nil {
		return m.Err
	}
	for i, budget := range m.Budgets {
		if budget.ID != budgetID || budget.UserID != userID {
			continue
		}
		updated := budget
		if patch.LimitAmount != nil {
			updated.LimitAmount = *patch.LimitAmount
		}
		if patch.Month != nil {
			updated.Month = *patch.Month
		}
		if patch.Year != nil {
			updated.Year = *patch.Year
		}
		exists, _ := m.ExistsForPeriod(userID, updated.CategoryID, updated.Month, updated.Year, budgetID)
		if exists {
			return financeErrors.ErrDuplicateBudgetPeriod
		}
		updated.UpdatedAt = time.Now()
		m.Budgets[i] = updated
		return nil
	}
	return financeErrors.NewNotFoundError("Budget")
}

func (m *MockBudgetRepository) Delete(userID string, budgetID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, budget := range m.Budgets {
		if budget.ID == budgetID && budget.UserID == userID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewNotFoundError("Budget")
}
