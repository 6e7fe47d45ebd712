package interfaces

import (
	"net/http"
	"strconv"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

type DashboardServiceInterface interface {
	GetSummary(userID string, month, year int) (*domain.PeriodSummary, error)
	GetExpensesByCategory(userID string, month, year int) ([]domain.CategoryTotal, error)
	GetMonthlySeries(userID string, year int) ([]domain.MonthlyTotal, error)
	GetBalanceEvolution(userID string, year int) ([]domain.MonthlyBalance, error)
	GetRecentTransactions(userID string, limit int) ([]domain.Transaction, error)
}

type DashboardHandler struct {
	service DashboardServiceInterface
}

func NewDashboardHandler(service DashboardServiceInterface) *DashboardHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	month, year := periodFromQuery(r)
	summary, err := h.service.GetSummary(userID, month, year)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve summary")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

func (h *DashboardHandler) GetExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	month, year := periodFromQuery(r)
	totals, err := h.service.GetExpensesByCategory(userID, month, year)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve expenses by category")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   totals,
	})
}

func (h *DashboardHandler) GetMonthlySeries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	_, year := periodFromQuery(r)
	series, err := h.service.GetMonthlySeries(userID, year)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve monthly series")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   series,
	})
}

func (h *DashboardHandler) GetBalanceEvolution(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	_, year := periodFromQuery(r)
	evolution, err := h.service.GetBalanceEvolution(userID, year)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve balance evolution")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   evolution,
	})
}

func (h *DashboardHandler) GetRecentTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	transactions, err := h.service.GetRecentTransactions(userID, limit)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve recent transactions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transactions,
	})
}
