package domain

import (
	"time"

	"github.com/gesteasy/GestEasy/internal/finance/errors"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
	CategoryTypeBoth    = "both"
)

const (
	DefaultCategoryColor = "#6c757d"
	DefaultCategoryIcon  = "fa-folder"
)

type CategoryRepository interface {
	FindByUser(userID, categoryType string) ([]Category, error)
	FindByID(userID string, categoryID int) (*Category, error)
	ExistsByID(categoryID int, userID string) (bool, error)
	ExistsByName(userID, name string, excludeID int) (bool, error)
	Save(category *Category) error
	Update(userID string, categoryID int, patch CategoryPatch) error
	Delete(userID string, categoryID int) error
	CountReferences(categoryID int) (transactions, budgets int, err error)
}

type Category struct {
	ID        int       `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidCategoryType(categoryType string) bool {
	return categoryType == CategoryTypeIncome ||
		categoryType == CategoryTypeExpense ||
		categoryType == CategoryTypeBoth
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.NewValidationError("Category name is required")
	}
	if len(c.Name) > 100 {
		return errors.NewValidationError("Category name must be of length less than 100")
	}
	if !IsValidCategoryType(c.Type) {
		return errors.NewValidationError("Type must be 'income', 'expense' or 'both'")
	}
	return nil
}

// CategoryPatch carries the fields of a partial update. Nil means "leave as is".
type CategoryPatch struct {
	Name  *string
	Type  *string
	Color *string
	Icon  *string
}

func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Type == nil && p.Color == nil && p.Icon == nil
}
