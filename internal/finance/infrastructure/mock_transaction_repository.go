package infrastructure

import (
	"sort"
	"strings"
	"time"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

// MockTransactionRepository replays filters, sorting and pagination in
// memory, so tests can check that the page and the total count agree.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Err          error

	nextID int
}

func matchesFilter(transaction domain.Transaction, userID string, filter domain.TransactionFilter) bool {
	if transaction.UserID != userID {
		return false
	}
	if filter.DateFrom != nil && transaction.Date.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && transaction.Date.After(*filter.DateTo) {
		return false
	}
	if filter.CategoryID != nil && transaction.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.Type != "" && transaction.Type != filter.Type {
		return false
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(transaction.Description), strings.ToLower(filter.Search)) {
		return false
	}
	return true
}

func sortTransactions(transactions []domain.Transaction, sortBy domain.TransactionSort) {
	sortBy = sortBy.Normalize()
	less := func(a, b domain.Transaction) bool {
		switch sortBy.Field {
		case domain.SortFieldAmount:
			if cmp := a.Amount.Cmp(b.Amount); cmp != 0 {
				return cmp < 0
			}
		case domain.SortFieldType:
			if a.Type != b.Type {
				return a.Type < b.Type
			}
		default:
			if !a.Date.Equal(b.Date) {
				return a.Date.Before(b.Date)
			}
		}
		return a.ID < b.ID
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		if sortBy.Direction == domain.SortDirectionAsc {
			return less(transactions[i], transactions[j])
		}
		return less(transactions[j], transactions[i])
	})
}

func (m *MockTransactionRepository) filtered(userID string, filter domain.TransactionFilter) []domain.Transaction {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if matchesFilter(transaction, userID, filter) {
			filtered = append(filtered, transaction)
		}
	}
	return filtered
}

func (m *MockTransactionRepository) Find(userID string, filter domain.TransactionFilter, sortBy domain.TransactionSort, page domain.Page) ([]domain.Transaction, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	filtered := m.filtered(userID, filter)
	sortTransactions(filtered, sortBy)

	total := len(filtered)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Size
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

func (m *MockTransactionRepository) FindAll(userID string, filter domain.TransactionFilter, sortBy domain.TransactionSort) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	filtered := m.filtered(userID, filter)
	sortTransactions(filtered, sortBy)
	return filtered, nil
}

func (m *MockTransactionRepository) FindByID(userID string, transactionID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.NewNotFoundError("Transaction")
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	transaction.ID = m.nextID
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) Update(userID string, transactionID int, patch domain.TransactionPatch) error {
	if m.Err != nil {
		return m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.ID != transactionID || transaction.UserID != userID {
			continue
		}
		if patch.Type != nil {
			m.Transactions[i].Type = *patch.Type
		}
		if patch.Amount != nil {
			m.Transactions[i].Amount = *patch.Amount
		}
		if patch.Date != nil {
			m.Transactions[i].Date = *patch.Date
		}
		if patch.CategoryID != nil {
			m.Transactions[i].CategoryID = *patch.CategoryID
		}
		if patch.Description != nil {
			m.Transactions[i].Description = *patch.Description
		}
		m.Transactions[i].UpdatedAt = time.Now()
		return nil
	}
	return financeErrors.NewNotFoundError("Transaction")
}

func (m *MockTransactionRepository) Delete(userID string, transactionID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewNotFoundError("Transaction")
}
