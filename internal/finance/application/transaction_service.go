package application

import (
	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

type CategoryServiceInterface interface {
	DoesCategoryExist(categoryID int, userID string) (bool, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService}
}

func (s *TransactionService) ListTransactions(userID string, filter domain.TransactionFilter, sort domain.TransactionSort, page domain.Page) ([]domain.Transaction, domain.PageInfo, error) {
	if filter.Type != "" && !domain.IsValidTransactionType(filter.Type) {
		return nil, domain.PageInfo{}, financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	page = page.Normalize()

	transactions, total, err := s.repo.Find(userID, filter, sort.Normalize(), page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, domain.NewPageInfo(page, total), nil
}

func (s *TransactionService) GetTransaction(userID string, transactionID int) (*domain.Transaction, error) {
	return s.repo.FindByID(userID, transactionID)
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryService.DoesCategoryExist(transaction.CategoryID, transaction.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}
	return s.repo.Save(transaction)
}

func (s *TransactionService) UpdateTransaction(userID string, transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(userID, transactionID); err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		exists, err := s.categoryService.DoesCategoryExist(*patch.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, financeErrors.ErrInvalidCategory
		}
	}

	if err := s.repo.Update(userID, transactionID, patch); err != nil {
		return nil, err
	}
	return s.repo.FindByID(userID, transactionID)
}

func (s *TransactionService) DeleteTransaction(userID string, transactionID int) error {
	return s.repo.Delete(userID, transactionID)
}

// ExportTransactions returns every transaction matching the filter, in sort
// order, without pagination. Feeds the CSV export.
func (s *TransactionService) ExportTransactions(userID string, filter domain.TransactionFilter, sort domain.TransactionSort) ([]domain.Transaction, error) {
	if filter.Type != "" && !domain.IsValidTransactionType(filter.Type) {
		return nil, financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	transactions, err := s.repo.FindAll(userID, filter, sort.Normalize())
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}
