package interfaces

import (
	"errors"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

type MockTransactionService struct {
	transactions []domain.Transaction
	pageInfo     domain.PageInfo
	lastFilter   domain.TransactionFilter
	lastSort     domain.TransactionSort
	lastPage     domain.Page
	err          error
	shouldFail   bool
}

func (m *MockTransactionService) failure() error {
	if m.err != nil {
		return m.err
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

func (m *MockTransactionService) ListTransactions(userID string, filter domain.TransactionFilter, sort domain.TransactionSort, page domain.Page) ([]domain.Transaction, domain.PageInfo, error) {
	m.lastFilter = filter
	m.lastSort = sort
	m.lastPage = page
	if err := m.failure(); err != nil {
		return nil, domain.PageInfo{}, err
	}
	return m.transactions, m.pageInfo, nil
}

func (m *MockTransactionService) GetTransaction(userID string, transactionID int) (*domain.Transaction, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID {
			return &m.transactions[i], nil
		}
	}
	return nil, errors.New("unexpected transaction id")
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if err := m.failure(); err != nil {
		return err
	}
	transaction.ID = len(m.transactions) + 1
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *MockTransactionService) UpdateTransaction(userID string, transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.GetTransaction(userID, transactionID)
}

func (m *MockTransactionService) DeleteTransaction(userID string, transactionID int) error {
	return m.failure()
}

func (m *MockTransactionService) ExportTransactions(userID string, filter domain.TransactionFilter, sort domain.TransactionSort) ([]domain.Transaction, error) {
	m.lastFilter = filter
	m.lastSort = sort
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.transactions, nil
}
