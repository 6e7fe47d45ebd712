package infrastructure

import (
	"sort"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

// MockCategoryRepository is an in-memory CategoryRepository for service tests.
// Transactions and Budgets only feed CountReferences.
type MockCategoryRepository struct {
	Categories   []domain.Category
	Transactions []domain.Transaction
	Budgets      []domain.Budget
	Err          error

	nextID int
}

func (m *MockCategoryRepository) FindByUser(userID, categoryType string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID != userID {
			continue
		}
		if categoryType != "" && category.Type != categoryType && category.Type != domain.CategoryTypeBoth {
			continue
		}
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(userID string, categoryID int) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.NewNotFoundError("Category")
}

func (m *MockCategoryRepository) ExistsByID(categoryID int, userID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) ExistsByName(userID, name string, excludeID int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.UserID == userID && category.Name == name && category.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	// Mirrors the unique index on (user_id, name).
	exists, _ := m.ExistsByName(category.UserID, category.Name, 0)
	if exists {
		return financeErrors.ErrDuplicateCategoryName
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) Update(userID string, categoryID int, patch domain.CategoryPatch) error {
	if m.Err != nil {
		return m.Err
	}
	for i, category := range m.Categories {
		if category.ID != categoryID || category.UserID != userID {
			continue
		}
		if patch.Name != nil {
			m.Categories[i].Name = *patch.Name
		}
		if patch.Type != nil {
			m.Categories[i].Type = *patch.Type
		}
		if patch.Color != nil {
			m.Categories[i].Color = *patch.Color
		}
		if patch.Icon != nil {
			m.Categories[i].Icon = *patch.Icon
		}
		return nil
	}
	return financeErrors.NewNotFoundError("Category")
}

func (m *MockCategoryRepository) Delete(userID string, categoryID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewNotFoundError("Category")
}

func (m *MockCategoryRepository) CountReferences(categoryID int) (int, int, error) {
	if m.Err != nil {
		return 0, 0, m.Err
	}
	var transactions, budgets int
	for _, transaction := range m.Transactions {
		if transaction.CategoryID == categoryID {
			transactions++
		}
	}
	for _, budget := range m.Budgets {
		if budget.CategoryID == categoryID {
			budgets++
		}
	}
	return transactions, budgets, nil
}
