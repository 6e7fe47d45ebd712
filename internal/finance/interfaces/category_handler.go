package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
)

type CategoryServiceInterface interface {
	ListCategories(userID, categoryType string) ([]domain.Category, error)
	GetCategory(userID string, categoryID int) (*domain.Category, error)
	CreateCategory(category *domain.Category) error
	UpdateCategory(userID string, categoryID int, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(userID string, categoryID int) error
}

type CategoryHandler struct {
	service CategoryServiceInterface
}

func NewCategoryHandler(service CategoryServiceInterface) *CategoryHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &CategoryHandler{service: service}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	categories, err := h.service.ListCategories(userID, r.URL.Query().Get("type"))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve categories")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   categories,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r)
	if !ok {
		return
	}

	category, err := h.service.GetCategory(userID, categoryID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve category")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   category,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category.UserID = userID

	if err := h.service.CreateCategory(&category); err != nil {
		respondServiceError(w, err, "Failed to create category")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch struct {
		Name  *string `json:"name"`
		Type  *string `json:"type"`
		Color *string `json:"color"`
		Icon  *string `json:"icon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(userID, categoryID, domain.CategoryPatch{
		Name:  patch.Name,
		Type:  patch.Type,
		Color: patch.Color,
		Icon:  patch.Icon,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to update category")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(userID, categoryID); err != nil {
		respondServiceError(w, err, "Failed to delete category")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully deleted.",
	})
}
