package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/TN1ck/german-tax-id-validator/internal/middleware"
	"github.com/TN1ck/german-tax-id-validator/internal/models"
	"github.com/TN1ck/german-tax-id-validator/internal/storage"
	"github.com/TN1ck/german-tax-id-validator/internal/utils"
)

type LoginHandler struct {
	store     models.UserStorage
	jwtSecret string
	tokenTTL  time.Duration
}

func NewLoginHandler(store models.UserStorage, jwtSecret string, tokenTTL time.Duration) *LoginHandler {
	return &LoginHandler{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode login request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Login == "" || req.Password == "" {
		log.Printf("Empty login or password")
		utils.WriteJSONError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	user, err := h.store.GetUserByLogin(r.Context(), req.Login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("User not found: %s", req.Login)
			utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid login or password")
		} else {
			log.Printf("Failed to get user %s: %v", req.Login, err)
			utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Printf("Invalid password for user %s", req.Login)
		utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid login or password")
		return
	}

	tokenString, err := middleware.NewToken(h.jwtSecret, user.ID, h.tokenTTL)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	w.WriteHeader(http.StatusOK)
	log.Printf("User %s authenticated", req.Login)
}
