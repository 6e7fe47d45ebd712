package application

import (
	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// defaultCategories is the set seeded for every new user at registration.
var defaultCategories = []domain.Category{
	{Name: "Salary", Type: domain.CategoryTypeIncome, Color: "#28a745", Icon: "fa-money-bill"},
	{Name: "Food", Type: domain.CategoryTypeExpense, Color: "#fd7e14", Icon: "fa-utensils"},
	{Name: "Transport", Type: domain.CategoryTypeExpense, Color: "#007bff", Icon: "fa-bus"},
	{Name: "Housing", Type: domain.CategoryTypeExpense, Color: "#6f42c1", Icon: "fa-home"},
	{Name: "Health", Type: domain.CategoryTypeExpense, Color: "#dc3545", Icon: "fa-heartbeat"},
	{Name: "Leisure", Type: domain.CategoryTypeExpense, Color: "#20c997", Icon: "fa-gamepad"},
	{Name: "Other", Type: domain.CategoryTypeBoth, Color: domain.DefaultCategoryColor, Icon: domain.DefaultCategoryIcon},
}

func (s *CategoryService) ListCategories(userID, categoryType string) ([]domain.Category, error) {
	if categoryType != "" && categoryType != domain.CategoryTypeIncome && categoryType != domain.CategoryTypeExpense {
		return nil, financeErrors.NewValidationError("Type filter must be 'income' or 'expense'")
	}
	categories, err := s.repo.FindByUser(userID, categoryType)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(userID string, categoryID int) (*domain.Category, error) {
	return s.repo.FindByID(userID, categoryID)
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	if category.Type == "" {
		category.Type = domain.CategoryTypeBoth
	}
	if category.Color == "" {
		category.Color = domain.DefaultCategoryColor
	}
	if category.Icon == "" {
		category.Icon = domain.DefaultCategoryIcon
	}
	if err := category.Validate(); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByName(category.UserID, category.Name, 0)
	if err != nil {
		return err
	}
	if exists {
		return financeErrors.ErrDuplicateCategoryName
	}
	return s.repo.Save(category)
}

func (s *CategoryService) UpdateCategory(userID string, categoryID int, patch domain.CategoryPatch) (*domain.Category, error) {
	if patch.Empty() {
		return nil, financeErrors.NewValidationError("No fields to update")
	}
	if patch.Type != nil && !domain.IsValidCategoryType(*patch.Type) {
		return nil, financeErrors.NewValidationError("Type must be 'income', 'expense' or 'both'")
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, financeErrors.NewValidationError("Category name is required")
	}

	if _, err := s.repo.FindByID(userID, categoryID); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		exists, err := s.repo.ExistsByName(userID, *patch.Name, categoryID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, financeErrors.ErrDuplicateCategoryName
		}
	}

	if err := s.repo.Update(userID, categoryID, patch); err != nil {
		return nil, err
	}
	return s.repo.FindByID(userID, categoryID)
}

func (s *CategoryService) DeleteCategory(userID string, categoryID int) error {
	if _, err := s.repo.FindByID(userID, categoryID); err != nil {
		return err
	}

	transactions, budgets, err := s.repo.CountReferences(categoryID)
	if err != nil {
		return err
	}
	if transactions > 0 || budgets > 0 {
		return financeErrors.NewCategoryInUseError(transactions, budgets)
	}
	return s.repo.Delete(userID, categoryID)
}

// DoesCategoryExist tells whether the category belongs to the user. Used by
// the transaction and budget services before attaching a category id.
func (s *CategoryService) DoesCategoryExist(categoryID int, userID string) (bool, error) {
	return s.repo.ExistsByID(categoryID, userID)
}

// CreateDefaultCategories seeds the standard category set for a new user.
// Already-existing names are skipped.
func (s *CategoryService) CreateDefaultCategories(userID string) error {
	for _, category := range defaultCategories {
		category.UserID = userID
		if err := s.repo.Save(&category); err != nil {
			if financeErrors.IsConflictError(err) {
				continue
			}
			return err
		}
	}
	return nil
}
