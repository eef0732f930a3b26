package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/TN1ck/german-tax-id-validator/internal/middleware"
	"github.com/TN1ck/german-tax-id-validator/internal/usecase"
	"github.com/TN1ck/german-tax-id-validator/internal/utils"
)

const (
	maxTaxIDBody  = 1 << 10
	visibleDigits = 4
)

// maskTaxID keeps only the last digits of a tax-id for log lines.
func maskTaxID(number string) string {
	if len(number) <= visibleDigits {
		return strings.Repeat("*", len(number))
	}
	return strings.Repeat("*", len(number)-visibleDigits) + number[len(number)-visibleDigits:]
}

type TaxIDHandler struct {
	registrar TaxIDRegistrar
}

func NewTaxIDHandler(registrar TaxIDRegistrar) *TaxIDHandler {
	return &TaxIDHandler{registrar: registrar}
}

func (h *TaxIDHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		log.Printf("Unauthorized: missing user_id in context")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxTaxIDBody))
	if err != nil {
		log.Printf("Failed to read request body: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Cannot read request body")
		return
	}
	number := strings.TrimSpace(string(body))
	if number == "" {
		log.Printf("Empty tax-id")
		utils.WriteJSONError(w, http.StatusBadRequest, "Tax-id is required")
		return
	}

	taxID, err := h.registrar.RegisterTaxID(r.Context(), userID, number)
	switch {
	case err == nil:
		log.Printf("Tax-id %s registered for user %d (era %d)", maskTaxID(number), userID, taxID.Era)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusAccepted)
	case errors.Is(err, usecase.ErrInvalidTaxID):
		log.Printf("Tax-id %s failed validation for user %d", maskTaxID(number), userID)
		utils.WriteJSONError(w, http.StatusUnprocessableEntity, "Invalid tax-id")
	case errors.Is(err, usecase.ErrTaxIDAlreadyExists):
		log.Printf("Tax-id %s already registered for user %d", maskTaxID(number), userID)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, usecase.ErrTaxIDBelongsToOtherUser):
		log.Printf("Tax-id %s submitted by user %d belongs to another user", maskTaxID(number), userID)
		utils.WriteJSONError(w, http.StatusConflict, "Tax-id belongs to another user")
	default:
		log.Printf("Failed to register tax-id %s: %v", maskTaxID(number), err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
