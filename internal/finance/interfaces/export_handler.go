package interfaces

import (
	"encoding/csv"
	"log"
	"net/http"
)

// ExportTransactions streams the user's transactions as a CSV attachment.
// The same filters as the list endpoint apply, without pagination.
func (h *TransactionHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		respondServiceError(w, err, "Failed to export transactions")
		return
	}

	transactions, err := h.service.ExportTransactions(userID, filter, transactionSortFromQuery(r))
	if err != nil {
		respondServiceError(w, err, "Failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "type", "category", "description", "amount"}); err != nil {
		log.Printf("Error writing CSV header: %v", err)
		return
	}
	for _, transaction := range transactions {
		record := []string{
			transaction.Date.Format(dateLayout),
			transaction.Type,
			transaction.CategoryName,
			transaction.Description,
			transaction.Amount.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			log.Printf("Error writing CSV record: %v", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("Error flushing CSV response: %v", err)
	}
}
