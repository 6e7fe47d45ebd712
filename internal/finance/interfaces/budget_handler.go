package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

type BudgetServiceInterface interface {
	ListBudgets(userID string, month, year int) ([]domain.BudgetStatus, error)
	GetBudget(userID string, budgetID int) (*domain.BudgetStatus, error)
	CreateBudget(budget *domain.Budget) error
	UpdateBudget(userID string, budgetID int, patch domain.BudgetPatch) (*domain.BudgetStatus, error)
	DeleteBudget(userID string, budgetID int) error
}

type BudgetHandler struct {
	service BudgetServiceInterface
}

func NewBudgetHandler(service BudgetServiceInterface) *BudgetHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &BudgetHandler{service: service}
}

type budgetRequest struct {
	CategoryID  int             `json:"categoryId"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

type budgetPatchRequest struct {
	LimitAmount *decimal.Decimal `json:"limitAmount"`
	Month       *int             `json:"month"`
	Year        *int             `json:"year"`
}

func periodFromQuery(r *http.Request) (month, year int) {
	query := r.URL.Query()
	if raw := query.Get("month"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			month = parsed
		}
	}
	if raw := query.Get("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = parsed
		}
	}
	return month, year
}

func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	month, year := periodFromQuery(r)
	budgets, err := h.service.ListBudgets(userID, month, year)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve budgets")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   budgets,
	})
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	budgetID, ok := pathID(w, r)
	if !ok {
		return
	}

	budget, err := h.service.GetBudget(userID, budgetID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve budget")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   budget,
	})
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget := domain.Budget{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		LimitAmount: req.LimitAmount,
		Month:       req.Month,
		Year:        req.Year,
	}
	if err := h.service.CreateBudget(&budget); err != nil {
		respondServiceError(w, err, "Failed to create budget")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully created.",
		"data":    budget,
	})
}

func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	budgetID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req budgetPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget, err := h.service.UpdateBudget(userID, budgetID, domain.BudgetPatch{
		LimitAmount: req.LimitAmount,
		Month:       req.Month,
		Year:        req.Year,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to update budget")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully updated.",
		"data":    budget,
	})
}

func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	budgetID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteBudget(userID, budgetID); err != nil {
		respondServiceError(w, err, "Failed to delete budget")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully deleted.",
	})
}
