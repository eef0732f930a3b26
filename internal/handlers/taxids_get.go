package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/TN1ck/german-tax-id-validator/internal/middleware"
	"github.com/TN1ck/german-tax-id-validator/internal/utils"
)

type TaxIDGetHandler struct {
	store TaxIDGetter
}

func NewTaxIDGetHandler(store TaxIDGetter) *TaxIDGetHandler {
	return &TaxIDGetHandler{store: store}
}

type TaxIDResponse struct {
	TaxID      string `json:"tax_id"`
	Era        int16  `json:"era"`
	Status     string `json:"status"`
	UploadedAt string `json:"uploaded_at"`
}

func (h *TaxIDGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		log.Printf("Unauthorized: missing user_id in context")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	taxIDs, err := h.store.GetUserTaxIDs(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to get tax-ids for user %d: %v", userID, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(taxIDs) == 0 {
		log.Printf("No tax-ids found for user %d", userID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]TaxIDResponse, len(taxIDs))
	for i, t := range taxIDs {
		response[i] = TaxIDResponse{
			TaxID:      t.Number,
			Era:        t.Era,
			Status:     t.Status,
			UploadedAt: t.UploadedAt.Time.Format(time.RFC3339),
		}
	}

	if err := utils.WriteJSON(w, http.StatusOK, response); err != nil {
		return
	}
	log.Printf("Returned %d tax-ids for user %d", len(taxIDs), userID)
}
