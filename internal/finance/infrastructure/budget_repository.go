package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

// budgetStatusSelect joins each budget with its category and the sum of
// expense transactions inside the budget's period. Percent and alert status
// are derived in application code from these raw columns.
const budgetStatusSelect = `SELECT b.id, b.user_id, b.category_id, b.month, b.year, b.limit_amount,
	b.created_at, b.updated_at, c.name, c.color,
	COALESCE((SELECT SUM(t.amount) FROM transactions t
		WHERE t.user_id = b.user_id
			AND t.category_id = b.category_id
			AND t.type = 'expense'
			AND EXTRACT(MONTH FROM t.date) = b.month
			AND EXTRACT(YEAR FROM t.date) = b.year), 0) AS spent_amount
	FROM budgets b
	INNER JOIN categories c ON b.category_id = c.id
	WHERE `

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func scanBudgetStatus(scanner interface{ Scan(...interface{}) error }) (domain.BudgetStatus, error) {
	var status domain.BudgetStatus
	err := scanner.Scan(&status.ID, &status.UserID, &status.CategoryID, &status.Month, &status.Year,
		&status.LimitAmount, &status.CreatedAt, &status.UpdatedAt,
		&status.CategoryName, &status.CategoryColor, &status.SpentAmount)
	return status, err
}

func (r *BudgetRepository) FindByPeriod(userID string, month, year int) ([]domain.BudgetStatus, error) {
	query := budgetStatusSelect + "b.user_id = $1 AND b.month = $2 AND b.year = $3"
	rows, err := r.db.Query(query, userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.BudgetStatus
	for rows.Next() {
		status, err := scanBudgetStatus(rows)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, rows.Err()
}

func (r *BudgetRepository) FindByID(userID string, budgetID int) (*domain.BudgetStatus, error) {
	query := budgetStatusSelect + "b.id = $1 AND b.user_id = $2"
	status, err := scanBudgetStatus(r.db.QueryRow(query, budgetID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.NewNotFoundError("Budget")
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *BudgetRepository) ExistsForPeriod(userID string, categoryID, month, year, excludeID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM budgets
		WHERE user_id = $1 AND category_id = $2 AND month = $3 AND year = $4 AND id <> $5)`
	err := r.db.QueryRow(query, userID, categoryID, month, year, excludeID).Scan(&exists)
	return exists, err
}

func (r *BudgetRepository) Save(budget *domain.Budget) error {
	err := r.db.QueryRow(
		`INSERT INTO budgets (user_id, category_id, month, year, limit_amount)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		budget.UserID, budget.CategoryID, budget.Month, budget.Year, budget.LimitAmount,
	).Scan(&budget.ID, &budget.CreatedAt, &budget.UpdatedAt)
	if isUniqueViolation(err) {
		return financeErrors.ErrDuplicateBudgetPeriod
	}
	return err
}

func (r *BudgetRepository) Update(userID string, budgetID int, patch domain.BudgetPatch) error {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.LimitAmount != nil {
		addSet("limit_amount", *patch.LimitAmount)
	}
	if patch.Month != nil {
		addSet("month", *patch.Month)
	}
	if patch.Year != nil {
		addSet("year", *patch.Year)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, budgetID, userID)
	query := fmt.Sprintf(
		"UPDATE budgets SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	result, err := r.db.Exec(query, args...)
	if isUniqueViolation(err) {
		return financeErrors.ErrDuplicateBudgetPeriod
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("Budget")
	}
	return nil
}

func (r *BudgetRepository) Delete(userID string, budgetID int) error {
	result, err := r.db.Exec("DELETE FROM budgets WHERE id = $1 AND user_id = $2", budgetID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("Budget")
	}
	return nil
}
