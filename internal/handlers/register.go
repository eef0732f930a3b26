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
	"github.com/TN1ck/german-tax-id-validator/internal/validation"
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterHandler struct {
	store     models.UserStorage
	passwords validation.PasswordValidator
	secret    string
	tokenTTL  time.Duration
}

func NewRegisterHandler(store models.UserStorage, passwords validation.PasswordValidator, secret string, tokenTTL time.Duration) *RegisterHandler {
	return &RegisterHandler{store: store, passwords: passwords, secret: secret, tokenTTL: tokenTTL}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode register request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Login == "" || req.Password == "" {
		log.Printf("Empty login or password")
		utils.WriteJSONError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	if !h.passwords.ValidatePassword(req.Password) {
		log.Printf("Weak password for login %s", req.Login)
		utils.WriteJSONError(w, http.StatusBadRequest, "Password must be at least 8 characters long and contain letters")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for login %s: %v", req.Login, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	userID, err := h.store.CreateUser(r.Context(), req.Login, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrLoginExists) {
			log.Printf("Login %s already exists", req.Login)
			utils.WriteJSONError(w, http.StatusConflict, "Login already exists")
			return
		}
		log.Printf("Failed to create user %s: %v", req.Login, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	tokenString, err := middleware.NewToken(h.secret, userID, h.tokenTTL)
	if err != nil {
		log.Printf("Failed to sign token for user %s: %v", req.Login, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	w.WriteHeader(http.StatusOK)
	log.Printf("User %s registered successfully, user_id: %d", req.Login, userID)
}
