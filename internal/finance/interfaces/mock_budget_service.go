package interfaces

import (
	"errors"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

type MockBudgetService struct {
	budgets    []domain.BudgetStatus
	lastMonth  int
	lastYear   int
	err        error
	shouldFail bool
}

func (m *MockBudgetService) failure() error {
	if m.err != nil {
		return m.err
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

func (m *MockBudgetService) ListBudgets(userID string, month, year int) ([]domain.BudgetStatus, error) {
	m.lastMonth = month
	m.lastYear = year
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.budgets, nil
}

func (m *MockBudgetService) GetBudget(userID string, budgetID int) (*domain.BudgetStatus, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	for i := range m.budgets {
		if m.budgets[i].ID == budgetID {
			return &m.budgets[i], nil
		}
	}
	return nil, errors.New("unexpected budget id")
}

func (m *MockBudgetService) CreateBudget(budget *domain.Budget) error {
	if err := m.failure(); err != nil {
		return err
	}
	budget.ID = len(m.budgets) + 1
	m.budgets = append(m.budgets, domain.BudgetStatus{Budget: *budget})
	return nil
}

func (m *MockBudgetService) UpdateBudget(userID string, budgetID int, patch domain.BudgetPatch) (*domain.BudgetStatus, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.GetBudget(userID, budgetID)
}

func (m *MockBudgetService) DeleteBudget(userID string, budgetID int) error {
	return m.failure()
}
