package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// respondServiceError maps the core error taxonomy to HTTP statuses. Anything
// outside the taxonomy is logged and hidden behind the fallback message.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsConflictError(err):
		respondError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("Unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}
