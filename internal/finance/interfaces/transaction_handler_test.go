package interfaces

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

func TestListTransactions_ForwardsFiltersAndPagination(t *testing.T) {
	mockService := &MockTransactionService{
		pageInfo: domain.PageInfo{Page: 2, PageSize: 10, TotalCount: 35, TotalPages: 4},
	}
	handler := NewTransactionHandler(mockService)

	target := "/api/protected/transactions?dateFrom=2024-03-01&dateTo=2024-03-31&categoryId=5&type=expense&search=market&sortField=amount&sortDir=asc&page=2&pageSize=10"
	w := httptest.NewRecorder()
	handler.ListTransactions(w, authedRequest(http.MethodGet, target, nil))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "expense", mockService.lastFilter.Type)
	assert.Equal(t, "market", mockService.lastFilter.Search)
	if assert.NotNil(t, mockService.lastFilter.CategoryID) {
		assert.Equal(t, 5, *mockService.lastFilter.CategoryID)
	}
	if assert.NotNil(t, mockService.lastFilter.DateFrom) {
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *mockService.lastFilter.DateFrom)
	}
	assert.Equal(t, "amount", mockService.lastSort.Field)
	assert.Equal(t, "asc", mockService.lastSort.Direction)
	assert.Equal(t, domain.Page{Number: 2, Size: 10}, mockService.lastPage)

	payload := decodeResponse(t, res)
	pagination, ok := payload["pagination"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(35), pagination["total_count"])
}

func TestListTransactions_InvalidDate(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{})

	w := httptest.NewRecorder()
	handler.ListTransactions(w, authedRequest(http.MethodGet, "/api/protected/transactions?dateFrom=03-01-2024", nil))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateTransaction_Success(t *testing.T) {
	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService)

	body := strings.NewReader(`{"type":"expense","amount":"50.00","date":"2024-03-15","categoryId":3,"description":"Supermarket"}`)
	w := httptest.NewRecorder()
	handler.CreateTransaction(w, authedRequest(http.MethodPost, "/api/protected/transactions", body))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	if assert.Len(t, mockService.transactions, 1) {
		created := mockService.transactions[0]
		assert.Equal(t, testUserID, created.UserID)
		assert.True(t, created.Amount.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), created.Date)
	}
}

func TestCreateTransaction_InvalidCategory(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{
		err: financeErrors.ErrInvalidCategory,
	})

	body := strings.NewReader(`{"type":"expense","amount":"50.00","date":"2024-03-15","categoryId":99}`)
	w := httptest.NewRecorder()
	handler.CreateTransaction(w, authedRequest(http.MethodPost, "/api/protected/transactions", body))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	payload := decodeResponse(t, res)
	assert.Equal(t, "Invalid category", payload["message"])
}

func TestUpdateTransaction_InvalidDate(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{})

	body := strings.NewReader(`{"date":"not-a-date"}`)
	req := authedRequest(http.MethodPut, "/api/protected/transactions/1", body)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{
		err: financeErrors.NewNotFoundError("Transaction"),
	})

	req := authedRequest(http.MethodDelete, "/api/protected/transactions/12", nil)
	req.SetPathValue("id", "12")
	w := httptest.NewRecorder()
	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestExportTransactions_WritesCSV(t *testing.T) {
	mockService := &MockTransactionService{
		transactions: []domain.Transaction{
			{
				ID:           1,
				Type:         domain.TransactionTypeExpense,
				Amount:       decimal.RequireFromString("50.00"),
				Date:         time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				CategoryName: "Food",
				Description:  "Supermarket",
			},
		},
	}
	handler := NewTransactionHandler(mockService)

	w := httptest.NewRecorder()
	handler.ExportTransactions(w, authedRequest(http.MethodGet, "/api/protected/transactions/export", nil))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/csv", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "transactions.csv")

	body := w.Body.String()
	assert.Contains(t, body, "date,type,category,description,amount")
	assert.Contains(t, body, "2024-03-15,expense,Food,Supermarket,50.00")
}
