package interfaces

import (
	"errors"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

type MockDashboardService struct {
	summary      *domain.PeriodSummary
	totals       []domain.CategoryTotal
	series       []domain.MonthlyTotal
	evolution    []domain.MonthlyBalance
	transactions []domain.Transaction
	lastLimit    int
	shouldFail   bool
}

func (m *MockDashboardService) failure() error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

func (m *MockDashboardService) GetSummary(userID string, month, year int) (*domain.PeriodSummary, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.summary, nil
}

func (m *MockDashboardService) GetExpensesByCategory(userID string, month, year int) ([]domain.CategoryTotal, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.totals, nil
}

func (m *MockDashboardService) GetMonthlySeries(userID string, year int) ([]domain.MonthlyTotal, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.series, nil
}

func (m *MockDashboardService) GetBalanceEvolution(userID string, year int) ([]domain.MonthlyBalance, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.evolution, nil
}

func (m *MockDashboardService) GetRecentTransactions(userID string, limit int) ([]domain.Transaction, error) {
	m.lastLimit = limit
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.transactions, nil
}
