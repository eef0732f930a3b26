package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/TN1ck/german-tax-id-validator/internal/models"
	"github.com/TN1ck/german-tax-id-validator/internal/storage"
	"github.com/TN1ck/german-tax-id-validator/internal/testutils"
	"github.com/TN1ck/german-tax-id-validator/internal/validation"
)

const (
	testSecret   = "test-secret"
	testTokenTTL = time.Hour
)

func TestRegisterHandlerServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*testutils.MockUserStorage)
		expectedStatus int
		expectedBody   string
		expectedToken  bool
	}{
		{
			name: "успешная регистрация",
			body: `{"login":"testuser","password":"securepass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("CreateUser", mock.Anything, "testuser", mock.AnythingOfType("string")).Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  true,
		},
		{
			name:           "неверный формат запроса",
			body:           `{"login":`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request format"}`,
		},
		{
			name:           "пустой пароль",
			body:           `{"login":"testuser","password":""}`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Login and password are required"}`,
		},
		{
			name:           "слабый пароль",
			body:           `{"login":"testuser","password":"12345678"}`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Password must be at least 8 characters long and contain letters"}`,
		},
		{
			name: "логин занят",
			body: `{"login":"testuser","password":"securepass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("CreateUser", mock.Anything, "testuser", mock.AnythingOfType("string")).Return(int64(0), storage.ErrLoginExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Login already exists"}`,
		},
		{
			name: "ошибка базы",
			body: `{"login":"testuser","password":"securepass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("CreateUser", mock.Anything, "testuser", mock.AnythingOfType("string")).Return(int64(0), errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutils.MockUserStorage{}
			tt.setupMocks(store)
			handler := NewRegisterHandler(store, validation.NewDefaultPasswordValidator(), testSecret, testTokenTTL)

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedToken {
				assert.True(t, strings.HasPrefix(w.Header().Get("Authorization"), "Bearer "))
			}
			store.AssertExpectations(t)
		})
	}
}

func TestLoginHandlerServeHTTP(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("testpass1"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := models.User{ID: 1, Login: "testuser", Password: string(hashedPassword)}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*testutils.MockUserStorage)
		expectedStatus int
		expectedBody   string
		expectedToken  bool
	}{
		{
			name: "успешный логин",
			body: `{"login":"testuser","password":"testpass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "testuser").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  true,
		},
		{
			name:           "неверный формат запроса",
			body:           `not json`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request format"}`,
		},
		{
			name:           "пустой логин",
			body:           `{"login":"","password":"testpass1"}`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Login and password are required"}`,
		},
		{
			name: "пользователь не найден",
			body: `{"login":"ghost","password":"testpass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "ghost").Return(models.User{}, storage.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid login or password"}`,
		},
		{
			name: "неверный пароль",
			body: `{"login":"testuser","password":"wrongpass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "testuser").Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid login or password"}`,
		},
		{
			name: "ошибка базы",
			body: `{"login":"testuser","password":"testpass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "testuser").Return(models.User{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutils.MockUserStorage{}
			tt.setupMocks(store)
			handler := NewLoginHandler(store, testSecret, testTokenTTL)

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedToken {
				assert.True(t, strings.HasPrefix(w.Header().Get("Authorization"), "Bearer "))
			}
			store.AssertExpectations(t)
		})
	}
}
