package domain

import (
	"time"

	"github.com/gesteasy/GestEasy/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// Alert statuses for budget consumption, from harmless to blown.
const (
	AlertStatusOK      = "ok"
	AlertStatusInfo    = "info"
	AlertStatusWarning = "warning"
	AlertStatusDanger  = "danger"
)

const MinBudgetYear = 2000

type BudgetRepository interface {
	FindByPeriod(userID string, month, year int) ([]BudgetStatus, error)
	FindByID(userID string, budgetID int) (*BudgetStatus, error)
	ExistsForPeriod(userID string, categoryID, month, year, excludeID int) (bool, error)
	Save(budget *Budget) error
	Update(userID string, budgetID int, patch BudgetPatch) error
	Delete(userID string, budgetID int) error
}

type Budget struct {
	ID          int             `json:"id"`
	UserID      string          `json:"-"`
	CategoryID  int             `json:"category_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (b *Budget) Validate() error {
	if b.CategoryID <= 0 {
		return errors.NewValidationError("Category is required")
	}
	if b.Month < 1 || b.Month > 12 {
		return errors.NewValidationError("Month must be between 1 and 12")
	}
	if b.Year < MinBudgetYear {
		return errors.NewValidationError("Year must be 2000 or later")
	}
	if !b.LimitAmount.IsPositive() {
		return errors.NewValidationError("Limit amount must be greater than zero")
	}
	return nil
}

// BudgetStatus is the read-side projection of a budget: the stored row plus
// the derived spent/percent/alert columns. SpentAmount comes from the store,
// PercentUsed and AlertStatus are computed by Derive.
type BudgetStatus struct {
	Budget
	CategoryName  string          `json:"category"`
	CategoryColor string          `json:"category_color"`
	SpentAmount   decimal.Decimal `json:"spent_amount"`
	PercentUsed   decimal.Decimal `json:"percent_used"`
	AlertStatus   string          `json:"alert_status"`
}

// Derive fills PercentUsed and AlertStatus from SpentAmount and LimitAmount.
func (s *BudgetStatus) Derive() {
	s.PercentUsed = PercentUsed(s.SpentAmount, s.LimitAmount)
	s.AlertStatus = AlertStatusFor(s.PercentUsed)
}

// PercentUsed returns spent/limit*100 rounded to two decimal places.
func PercentUsed(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(decimal.NewFromInt(100)).DivRound(limit, 2)
}

// AlertStatusFor maps a consumption percentage to an alert status. The lower
// bound of each band is inclusive.
func AlertStatusFor(percentUsed decimal.Decimal) string {
	switch {
	case percentUsed.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return AlertStatusDanger
	case percentUsed.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return AlertStatusWarning
	case percentUsed.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return AlertStatusInfo
	default:
		return AlertStatusOK
	}
}

// BudgetPatch carries the fields of a partial update. Nil means "leave as is".
type BudgetPatch struct {
	LimitAmount *decimal.Decimal
	Month       *int
	Year        *int
}

func (p BudgetPatch) Empty() bool {
	return p.LimitAmount == nil && p.Month == nil && p.Year == nil
}

func (p BudgetPatch) Validate() error {
	if p.Empty() {
		return errors.NewValidationError("No fields to update")
	}
	if p.Month != nil && (*p.Month < 1 || *p.Month > 12) {
		return errors.NewValidationError("Month must be between 1 and 12")
	}
	if p.Year != nil && *p.Year < MinBudgetYear {
		return errors.NewValidationError("Year must be 2000 or later")
	}
	if p.LimitAmount != nil && !p.LimitAmount.IsPositive() {
		return errors.NewValidationError("Limit amount must be greater than zero")
	}
	return nil
}
