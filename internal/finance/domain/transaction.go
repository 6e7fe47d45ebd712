package domain

import (
	"time"

	"github.com/gesteasy/GestEasy/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Allowed sort fields and directions for transaction listings. Anything else
// silently falls back to the defaults instead of erroring.
const (
	SortFieldDate   = "date"
	SortFieldAmount = "amount"
	SortFieldType   = "type"

	SortDirectionAsc  = "asc"
	SortDirectionDesc = "desc"
)

const DefaultPageSize = 50

type TransactionRepository interface {
	Find(userID string, filter TransactionFilter, sort TransactionSort, page Page) ([]Transaction, int, error)
	FindAll(userID string, filter TransactionFilter, sort TransactionSort) ([]Transaction, error)
	FindByID(userID string, transactionID int) (*Transaction, error)
	Save(transaction *Transaction) error
	Update(userID string, transactionID int, patch TransactionPatch) error
	Delete(userID string, transactionID int) error
}

type Transaction struct {
	ID          int             `json:"id"`
	UserID      string          `json:"-"`
	CategoryID  int             `json:"category_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Display fields joined from the owning category.
	CategoryName  string `json:"category"`
	CategoryColor string `json:"category_color"`
	CategoryIcon  string `json:"category_icon"`
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if !t.Amount.IsPositive() {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if t.CategoryID <= 0 {
		return errors.NewValidationError("Category is required")
	}
	if len(t.Description) > 255 {
		return errors.NewValidationError("Description must be of length less than 255")
	}
	return nil
}

// TransactionFilter is an AND-composition of optional predicates. The date
// range is inclusive on both ends; Search is a case-insensitive substring
// match on the description.
type TransactionFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	CategoryID *int
	Type       string
	Search     string
}

type TransactionSort struct {
	Field     string
	Direction string
}

// Normalize applies the allow-list: unknown fields become date, unknown
// directions become desc.
func (s TransactionSort) Normalize() TransactionSort {
	switch s.Field {
	case SortFieldDate, SortFieldAmount, SortFieldType:
	default:
		s.Field = SortFieldDate
	}
	switch s.Direction {
	case SortDirectionAsc, SortDirectionDesc:
	default:
		s.Direction = SortDirectionDesc
	}
	return s
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

func NewPageInfo(page Page, totalCount int) PageInfo {
	totalPages := (totalCount + page.Size - 1) / page.Size
	return PageInfo{
		Page:       page.Number,
		PageSize:   page.Size,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// TransactionPatch carries the fields of a partial update. Nil means "leave as is".
type TransactionPatch struct {
	Type        *string
	Amount      *decimal.Decimal
	Date        *time.Time
	CategoryID  *int
	Description *string
}

func (p TransactionPatch) Empty() bool {
	return p.Type == nil && p.Amount == nil && p.Date == nil && p.CategoryID == nil && p.Description == nil
}

// Validate checks every provided field with the same rules as a create.
func (p TransactionPatch) Validate() error {
	if p.Empty() {
		return errors.NewValidationError("No fields to update")
	}
	if p.Type != nil && !IsValidTransactionType(*p.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if p.Date != nil && p.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if p.CategoryID != nil && *p.CategoryID <= 0 {
		return errors.NewValidationError("Category is required")
	}
	if p.Description != nil && len(*p.Description) > 255 {
		return errors.NewValidationError("Description must be of length less than 255")
	}
	return nil
}
