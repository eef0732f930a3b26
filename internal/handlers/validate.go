package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TN1ck/german-tax-id-validator/internal/utils"
	"github.com/TN1ck/german-tax-id-validator/taxid"
)

const maxValidateBody = 1 << 12

type validateRequest struct {
	TaxID       any  `json:"tax_id"`
	Exclude2015 bool `json:"exclude_2015"`
	Exclude2016 bool `json:"exclude_2016"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

// ValidateHandler checks an arbitrary JSON value without touching storage.
// The eras to accept come from the request, not from server configuration.
type ValidateHandler struct{}

func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxValidateBody)).Decode(&req); err != nil {
		log.Printf("Failed to decode validate request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	valid := taxid.Validate(req.TaxID, req.Exclude2015, req.Exclude2016)
	if err := utils.WriteJSON(w, http.StatusOK, validateResponse{Valid: valid}); err != nil {
		return
	}
	log.Printf("Validated tax-id candidate: valid=%t", valid)
}

type lookupResponse struct {
	TaxID string `json:"tax_id"`
	Valid bool   `json:"valid"`
}

// LookupHandler validates the {taxID} path parameter with the configured eras.
type LookupHandler struct {
	checker TaxIDChecker
}

func NewLookupHandler(checker TaxIDChecker) *LookupHandler {
	return &LookupHandler{checker: checker}
}

func (h *LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "taxID")
	valid := h.checker.Validate(number)
	if err := utils.WriteJSON(w, http.StatusOK, lookupResponse{TaxID: number, Valid: valid}); err != nil {
		return
	}
	log.Printf("Looked up tax-id %s: valid=%t", maskTaxID(number), valid)
}
