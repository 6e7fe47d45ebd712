package infrastructure

import (
	"database/sql"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type DashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) SumByType(userID string, month, year int) (decimal.Decimal, decimal.Decimal, error) {
	var income, expense decimal.Decimal
	err := r.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0)
		 FROM transactions
		 WHERE user_id = $1 AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3`,
		userID, month, year,
	).Scan(&income, &expense)
	return income, expense, err
}

func (r *DashboardRepository) ExpenseTotalsByCategory(userID string, month, year int) ([]domain.CategoryTotal, error) {
	rows, err := r.db.Query(
		`SELECT c.name, c.color, SUM(t.amount) AS total
		 FROM transactions t
		 INNER JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = $1
			AND t.type = 'expense'
			AND EXTRACT(MONTH FROM t.date) = $2
			AND EXTRACT(YEAR FROM t.date) = $3
		 GROUP BY c.name, c.color
		 ORDER BY total DESC`,
		userID, month, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var total domain.CategoryTotal
		if err := rows.Scan(&total.Category, &total.Color, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

// MonthlyTotals returns one row per month that has transactions; callers fill
// in the missing months.
func (r *DashboardRepository) MonthlyTotals(userID string, year int) ([]domain.MonthlyTotal, error) {
	rows, err := r.db.Query(
		`SELECT EXTRACT(MONTH FROM date)::int AS month,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0)
		 FROM transactions
		 WHERE user_id = $1 AND EXTRACT(YEAR FROM date) = $2
		 GROUP BY EXTRACT(MONTH FROM date)
		 ORDER BY month`,
		userID, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.MonthlyTotal
	for rows.Next() {
		var total domain.MonthlyTotal
		if err := rows.Scan(&total.Month, &total.Income, &total.Expense); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *DashboardRepository) FindRecent(userID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		transactionSelect+"t.user_id = $1 ORDER BY t.date DESC, t.id DESC LIMIT $2",
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
