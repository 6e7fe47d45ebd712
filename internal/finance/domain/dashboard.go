package domain

import "github.com/shopspring/decimal"

// DashboardRepository is the read side over transactions. It has no storage
// of its own.
type DashboardRepository interface {
	SumByType(userID string, month, year int) (income, expense decimal.Decimal, err error)
	ExpenseTotalsByCategory(userID string, month, year int) ([]CategoryTotal, error)
	MonthlyTotals(userID string, year int) ([]MonthlyTotal, error)
	FindRecent(userID string, limit int) ([]Transaction, error)
}

type PeriodSummary struct {
	Income  decimal.Decimal `json:"total_income"`
	Expense decimal.Decimal `json:"total_expense"`
	Balance decimal.Decimal `json:"balance"`
	Month   int             `json:"month"`
	Year    int             `json:"year"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Color    string          `json:"color"`
	Total    decimal.Decimal `json:"total"`
}

type MonthlyTotal struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type MonthlyBalance struct {
	Month   int             `json:"month"`
	Balance decimal.Decimal `json:"balance"`
}
