package interfaces

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

func TestListBudgets_ForwardsPeriod(t *testing.T) {
	mockService := &MockBudgetService{
		budgets: []domain.BudgetStatus{
			{
				Budget:      domain.Budget{ID: 1, CategoryID: 3, Month: 3, Year: 2024, LimitAmount: decimal.RequireFromString("100.00")},
				SpentAmount: decimal.RequireFromString("50.00"),
				PercentUsed: decimal.RequireFromString("50.00"),
				AlertStatus: domain.AlertStatusOK,
			},
		},
	}
	handler := NewBudgetHandler(mockService)

	w := httptest.NewRecorder()
	handler.ListBudgets(w, authedRequest(http.MethodGet, "/api/protected/budgets?month=3&year=2024", nil))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 3, mockService.lastMonth)
	assert.Equal(t, 2024, mockService.lastYear)

	payload := decodeResponse(t, res)
	data, ok := payload["data"].([]interface{})
	assert.True(t, ok)
	if assert.Len(t, data, 1) {
		entry := data[0].(map[string]interface{})
		assert.Equal(t, "ok", entry["alert_status"])
		assert.Equal(t, "50", entry["percent_used"])
	}
}

func TestCreateBudget_Success(t *testing.T) {
	mockService := &MockBudgetService{}
	handler := NewBudgetHandler(mockService)

	body := strings.NewReader(`{"categoryId":3,"limitAmount":"100.00","month":3,"year":2024}`)
	w := httptest.NewRecorder()
	handler.CreateBudget(w, authedRequest(http.MethodPost, "/api/protected/budgets", body))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	if assert.Len(t, mockService.budgets, 1) {
		assert.Equal(t, testUserID, mockService.budgets[0].UserID)
	}
}

func TestCreateBudget_DuplicatePeriod(t *testing.T) {
	handler := NewBudgetHandler(&MockBudgetService{
		err: financeErrors.ErrDuplicateBudgetPeriod,
	})

	body := strings.NewReader(`{"categoryId":3,"limitAmount":"100.00","month":3,"year":2024}`)
	w := httptest.NewRecorder()
	handler.CreateBudget(w, authedRequest(http.MethodPost, "/api/protected/budgets", body))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestUpdateBudget_NotFound(t *testing.T) {
	handler := NewBudgetHandler(&MockBudgetService{
		err: financeErrors.NewNotFoundError("Budget"),
	})

	body := strings.NewReader(`{"limitAmount":"200.00"}`)
	req := authedRequest(http.MethodPut, "/api/protected/budgets/9", body)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.UpdateBudget(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteBudget_MissingUser(t *testing.T) {
	handler := NewBudgetHandler(&MockBudgetService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/protected/budgets/9", nil)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.DeleteBudget(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
