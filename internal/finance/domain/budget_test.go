package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAlertStatusFor_Bands(t *testing.T) {
	cases := []struct {
		percent string
		want    string
	}{
		{"0", AlertStatusOK},
		{"50", AlertStatusOK},
		{"79.99", AlertStatusOK},
		{"80", AlertStatusInfo},
		{"89.99", AlertStatusInfo},
		{"90", AlertStatusWarning},
		{"99.99", AlertStatusWarning},
		{"100", AlertStatusDanger},
		{"150", AlertStatusDanger},
	}

	for _, tc := range cases {
		t.Run(tc.percent, func(t *testing.T) {
			assert.Equal(t, tc.want, AlertStatusFor(decimal.RequireFromString(tc.percent)))
		})
	}
}

func TestPercentUsed(t *testing.T) {
	percent := PercentUsed(decimal.RequireFromString("50.00"), decimal.RequireFromString("100.00"))
	assert.True(t, percent.Equal(decimal.NewFromInt(50)), "got %s", percent)

	percent = PercentUsed(decimal.RequireFromString("33.33"), decimal.RequireFromString("99.99"))
	assert.True(t, percent.Equal(decimal.RequireFromString("33.33")), "got %s", percent)

	percent = PercentUsed(decimal.RequireFromString("150.00"), decimal.RequireFromString("100.00"))
	assert.True(t, percent.Equal(decimal.NewFromInt(150)), "got %s", percent)

	// A non-positive limit never divides.
	percent = PercentUsed(decimal.RequireFromString("50.00"), decimal.Zero)
	assert.True(t, percent.IsZero())
}

func TestBudgetStatusDerive(t *testing.T) {
	status := BudgetStatus{
		Budget:      Budget{LimitAmount: decimal.RequireFromString("100.00")},
		SpentAmount: decimal.RequireFromString("50.00"),
	}
	status.Derive()

	assert.True(t, status.PercentUsed.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, AlertStatusOK, status.AlertStatus)

	status.SpentAmount = decimal.RequireFromString("95.00")
	status.Derive()
	assert.Equal(t, AlertStatusWarning, status.AlertStatus)
}

func TestBudgetValidate(t *testing.T) {
	valid := Budget{CategoryID: 1, Month: 3, Year: 2024, LimitAmount: decimal.RequireFromString("100.00")}
	assert.NoError(t, valid.Validate())

	budget := valid
	budget.CategoryID = 0
	assert.Error(t, budget.Validate())

	budget = valid
	budget.Month = 13
	assert.Error(t, budget.Validate())

	budget = valid
	budget.Year = 1999
	assert.Error(t, budget.Validate())

	budget = valid
	budget.LimitAmount = decimal.Zero
	assert.Error(t, budget.Validate())
}

func TestBudgetPatchValidate(t *testing.T) {
	assert.Error(t, BudgetPatch{}.Validate())

	month := 0
	assert.Error(t, BudgetPatch{Month: &month}.Validate())

	limit := decimal.RequireFromString("-5.00")
	assert.Error(t, BudgetPatch{LimitAmount: &limit}.Validate())

	validMonth := 6
	assert.NoError(t, BudgetPatch{Month: &validMonth}.Validate())
}
