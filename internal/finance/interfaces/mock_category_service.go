package interfaces

import (
	"errors"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	err        error
	shouldFail bool
}

func (m *MockCategoryService) failure() error {
	if m.err != nil {
		return m.err
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

func (m *MockCategoryService) ListCategories(userID, categoryType string) ([]domain.Category, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.categories, nil
}

func (m *MockCategoryService) GetCategory(userID string, categoryID int) (*domain.Category, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			return &m.categories[i], nil
		}
	}
	return nil, errors.New("unexpected category id")
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if err := m.failure(); err != nil {
		return err
	}
	category.ID = len(m.categories) + 1
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MockCategoryService) UpdateCategory(userID string, categoryID int, patch domain.CategoryPatch) (*domain.Category, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	return m.GetCategory(userID, categoryID)
}

func (m *MockCategoryService) DeleteCategory(userID string, categoryID int) error {
	return m.failure()
}
