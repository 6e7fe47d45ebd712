package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindByUser(userID, categoryType string) ([]domain.Category, error) {
	query := "SELECT id, user_id, name, type, color, icon, created_at FROM categories WHERE user_id = $1"
	args := []interface{}{userID}

	if categoryType != "" {
		query += " AND (type = $2 OR type = 'both')"
		args = append(args, categoryType)
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Type,
			&category.Color, &category.Icon, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(userID string, categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		"SELECT id, user_id, name, type, color, icon, created_at FROM categories WHERE id = $1 AND user_id = $2",
		categoryID, userID,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Type,
		&category.Color, &category.Icon, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.NewNotFoundError("Category")
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ExistsByID(categoryID int, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)"
	err := r.db.QueryRow(query, categoryID, userID).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) ExistsByName(userID, name string, excludeID int) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE user_id = $1 AND name = $2 AND id <> $3)"
	err := r.db.QueryRow(query, userID, name, excludeID).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	err := r.db.QueryRow(
		`INSERT INTO categories (user_id, name, type, color, icon)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		category.UserID, category.Name, category.Type, category.Color, category.Icon,
	).Scan(&category.ID, &category.CreatedAt)
	if isUniqueViolation(err) {
		return financeErrors.ErrDuplicateCategoryName
	}
	return err
}

func (r *CategoryRepository) Update(userID string, categoryID int, patch domain.CategoryPatch) error {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Type != nil {
		addSet("type", *patch.Type)
	}
	if patch.Color != nil {
		addSet("color", *patch.Color)
	}
	if patch.Icon != nil {
		addSet("icon", *patch.Icon)
	}

	args = append(args, categoryID, userID)
	query := fmt.Sprintf(
		"UPDATE categories SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	result, err := r.db.Exec(query, args...)
	if isUniqueViolation(err) {
		return financeErrors.ErrDuplicateCategoryName
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("Category")
	}
	return nil
}

func (r *CategoryRepository) Delete(userID string, categoryID int) error {
	result, err := r.db.Exec("DELETE FROM categories WHERE id = $1 AND user_id = $2", categoryID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("Category")
	}
	return nil
}

func (r *CategoryRepository) CountReferences(categoryID int) (int, int, error) {
	var transactions, budgets int
	err := r.db.QueryRow(
		`SELECT
			(SELECT COUNT(*) FROM transactions WHERE category_id = $1),
			(SELECT COUNT(*) FROM budgets WHERE category_id = $1)`,
		categoryID,
	).Scan(&transactions, &budgets)
	return transactions, budgets, err
}
