package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

// sortColumns is the allow-list behind the sort parameter. Only these tokens
// ever reach the ORDER BY clause; user input never does.
var sortColumns = map[string]string{
	domain.SortFieldDate:   "t.date",
	domain.SortFieldAmount: "t.amount",
	domain.SortFieldType:   "t.type",
}

func orderByClause(sort domain.TransactionSort) string {
	sort = sort.Normalize()
	column := sortColumns[sort.Field]
	direction := "DESC"
	if sort.Direction == domain.SortDirectionAsc {
		direction = "ASC"
	}
	// id is a tie-break so pages are stable under equal sort keys.
	return fmt.Sprintf(" ORDER BY %s %s, t.id %s", column, direction, direction)
}

// transactionFilterClauses builds the AND chain for a filter, always starting
// from the mandatory owner predicate. The same clauses back both the page
// query and the count query.
func transactionFilterClauses(userID string, filter domain.TransactionFilter) ([]string, []interface{}) {
	conditions := []string{"t.user_id = $1"}
	args := []interface{}{userID}
	addCondition := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.DateFrom != nil {
		addCondition("t.date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("t.date <= $%d", *filter.DateTo)
	}
	if filter.CategoryID != nil {
		addCondition("t.category_id = $%d", *filter.CategoryID)
	}
	if filter.Type != "" {
		addCondition("t.type = $%d", filter.Type)
	}
	if filter.Search != "" {
		addCondition("t.description ILIKE '%%' || $%d || '%%'", filter.Search)
	}
	return conditions, args
}

const transactionSelect = `SELECT t.id, t.user_id, t.category_id, t.type, t.amount, t.date, t.description,
	t.created_at, t.updated_at, c.name, c.color, c.icon
	FROM transactions t
	INNER JOIN categories c ON t.category_id = c.id
	WHERE `

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func scanTransaction(scanner interface{ Scan(...interface{}) error }) (domain.Transaction, error) {
	var transaction domain.Transaction
	var description sql.NullString
	err := scanner.Scan(&transaction.ID, &transaction.UserID, &transaction.CategoryID, &transaction.Type,
		&transaction.Amount, &transaction.Date, &description, &transaction.CreatedAt, &transaction.UpdatedAt,
		&transaction.CategoryName, &transaction.CategoryColor, &transaction.CategoryIcon)
	if err != nil {
		return transaction, err
	}
	transaction.Description = description.String
	return transaction, nil
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
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

// Find returns one page of transactions plus the total count for the same
// filter. Both queries share one predicate list, so the count always reflects
// the page's filters.
func (r *TransactionRepository) Find(userID string, filter domain.TransactionFilter, sort domain.TransactionSort, page domain.Page) ([]domain.Transaction, int, error) {
	conditions, args := transactionFilterClauses(userID, filter)
	where := strings.Join(conditions, " AND ")

	pageArgs := append(append([]interface{}{}, args...), page.Size, page.Offset())
	query := transactionSelect + where + orderByClause(sort) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	transactions, err := r.queryTransactions(query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM transactions t WHERE " + where
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (r *TransactionRepository) FindAll(userID string, filter domain.TransactionFilter, sort domain.TransactionSort) ([]domain.Transaction, error) {
	conditions, args := transactionFilterClauses(userID, filter)
	query := transactionSelect + strings.Join(conditions, " AND ") + orderByClause(sort)
	return r.queryTransactions(query, args...)
}

func (r *TransactionRepository) FindByID(userID string, transactionID int) (*domain.Transaction, error) {
	query := transactionSelect + "t.id = $1 AND t.user_id = $2"
	transaction, err := scanTransaction(r.db.QueryRow(query, transactionID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.NewNotFoundError("Transaction")
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	return r.db.QueryRow(
		`INSERT INTO transactions (user_id, category_id, type, amount, date, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		transaction.UserID, transaction.CategoryID, transaction.Type, transaction.Amount,
		transaction.Date, transaction.Description,
	).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
}

func (r *TransactionRepository) Update(userID string, transactionID int, patch domain.TransactionPatch) error {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Type != nil {
		addSet("type", *patch.Type)
	}
	if patch.Amount != nil {
		addSet("amount", *patch.Amount)
	}
	if patch.Date != nil {
		addSet("date", *patch.Date)
	}
	if patch.CategoryID != nil {
		addSet("category_id", *patch.CategoryID)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, transactionID, userID)
	query := fmt.Sprintf(
		"UPDATE transactions SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("Transaction")
	}
	return nil
}

func (r *TransactionRepository) Delete(userID string, transactionID int) error {
	result, err := r.db.Exec("DELETE FROM transactions WHERE id = $1 AND user_id = $2", transactionID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("Transaction")
	}
	return nil
}
