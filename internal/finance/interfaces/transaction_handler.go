package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

const dateLayout = "2006-01-02"

type TransactionServiceInterface interface {
	ListTransactions(userID string, filter domain.TransactionFilter, sort domain.TransactionSort, page domain.Page) ([]domain.Transaction, domain.PageInfo, error)
	GetTransaction(userID string, transactionID int) (*domain.Transaction, error)
	CreateTransaction(transaction *domain.Transaction) error
	UpdateTransaction(userID string, transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error)
	DeleteTransaction(userID string, transactionID int) error
	ExportTransactions(userID string, filter domain.TransactionFilter, sort domain.TransactionSort) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	service TransactionServiceInterface
}

func NewTransactionHandler(service TransactionServiceInterface) *TransactionHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &TransactionHandler{service: service}
}

type transactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CategoryID  int             `json:"categoryId"`
	Description string          `json:"description"`
}

type transactionPatchRequest struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	CategoryID  *int             `json:"categoryId"`
	Description *string          `json:"description"`
}

func transactionFilterFromQuery(r *http.Request) (domain.TransactionFilter, error) {
	query := r.URL.Query()
	filter := domain.TransactionFilter{
		Type:   query.Get("type"),
		Search: query.Get("search"),
	}

	if raw := query.Get("dateFrom"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, financeErrors.NewValidationError("Invalid dateFrom: expected YYYY-MM-DD")
		}
		filter.DateFrom = &parsed
	}
	if raw := query.Get("dateTo"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, financeErrors.NewValidationError("Invalid dateTo: expected YYYY-MM-DD")
		}
		filter.DateTo = &parsed
	}
	if raw := query.Get("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil || categoryID <= 0 {
			return filter, financeErrors.NewValidationError("Invalid categoryId")
		}
		filter.CategoryID = &categoryID
	}
	return filter, nil
}

func transactionSortFromQuery(r *http.Request) domain.TransactionSort {
	query := r.URL.Query()
	return domain.TransactionSort{
		Field:     query.Get("sortField"),
		Direction: query.Get("sortDir"),
	}
}

func pageFromQuery(r *http.Request) domain.Page {
	query := r.URL.Query()
	page := domain.Page{}
	if raw := query.Get("page"); raw != "" {
		if number, err := strconv.Atoi(raw); err == nil {
			page.Number = number
		}
	}
	if raw := query.Get("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			page.Size = size
		}
	}
	return page
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve transactions")
		return
	}

	transactions, pageInfo, err := h.service.ListTransactions(userID, filter, transactionSortFromQuery(r), pageFromQuery(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve transactions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"data":       transactions,
		"pagination": pageInfo,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	transactionID, ok := pathID(w, r)
	if !ok {
		return
	}

	transaction, err := h.service.GetTransaction(userID, transactionID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve transaction")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transaction,
	})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
		return
	}

	transaction := domain.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        date,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}
	if err := h.service.CreateTransaction(&transaction); err != nil {
		respondServiceError(w, err, "Failed to create transaction")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	transactionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req transactionPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := domain.TransactionPatch{
		Type:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
			return
		}
		patch.Date = &date
	}

	transaction, err := h.service.UpdateTransaction(userID, transactionID, patch)
	if err != nil {
		respondServiceError(w, err, "Failed to update transaction")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	transactionID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTransaction(userID, transactionID); err != nil {
		respondServiceError(w, err, "Failed to delete transaction")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully deleted.",
	})
}
