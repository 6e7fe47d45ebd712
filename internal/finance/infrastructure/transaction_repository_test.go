package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

func TestOrderByClause(t *testing.T) {
	cases := []struct {
		name string
		sort domain.TransactionSort
		want string
	}{
		{"defaults", domain.TransactionSort{}, " ORDER BY t.date DESC, t.id DESC"},
		{"amount asc", domain.TransactionSort{Field: domain.SortFieldAmount, Direction: domain.SortDirectionAsc}, " ORDER BY t.amount ASC, t.id ASC"},
		{"type desc", domain.TransactionSort{Field: domain.SortFieldType, Direction: domain.SortDirectionDesc}, " ORDER BY t.type DESC, t.id DESC"},
		{"unknown field falls back", domain.TransactionSort{Field: "t.date; DROP TABLE transactions", Direction: "asc"}, " ORDER BY t.date ASC, t.id ASC"},
		{"unknown direction falls back", domain.TransactionSort{Field: "amount", Direction: "random()"}, " ORDER BY t.amount DESC, t.id DESC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderByClause(tc.sort))
		})
	}
}

func TestTransactionFilterClauses_OwnerOnly(t *testing.T) {
	conditions, args := transactionFilterClauses("user-1", domain.TransactionFilter{})

	assert.Equal(t, []string{"t.user_id = $1"}, conditions)
	assert.Equal(t, []interface{}{"user-1"}, args)
}

func TestTransactionFilterClauses_AllPredicates(t *testing.T) {
	dateFrom := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	dateTo := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	categoryID := 5
	filter := domain.TransactionFilter{
		DateFrom:   &dateFrom,
		DateTo:     &dateTo,
		CategoryID: &categoryID,
		Type:       domain.TransactionTypeExpense,
		Search:     "market",
	}

	conditions, args := transactionFilterClauses("user-1", filter)

	assert.Equal(t, []string{
		"t.user_id = $1",
		"t.date >= $2",
		"t.date <= $3",
		"t.category_id = $4",
		"t.type = $5",
		"t.description ILIKE '%' || $6 || '%'",
	}, conditions)
	assert.Equal(t, []interface{}{"user-1", dateFrom, dateTo, categoryID, domain.TransactionTypeExpense, "market"}, args)
}

func TestTransactionFilterClauses_PlaceholdersStayDense(t *testing.T) {
	// Skipping predicates must not leave gaps in the placeholder numbering.
	categoryID := 5
	filter := domain.TransactionFilter{
		CategoryID: &categoryID,
		Search:     "bus",
	}

	conditions, args := transactionFilterClauses("user-1", filter)

	assert.Equal(t, []string{
		"t.user_id = $1",
		"t.category_id = $2",
		"t.description ILIKE '%' || $3 || '%'",
	}, conditions)
	assert.Len(t, args, 3)
}
