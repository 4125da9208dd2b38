package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestRegister_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/register", handler.Register)

	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
	}

	mockAuthService.On("Register", "Test User", "testuser", "test@example.com", "password123", "student").
		Return(user, nil)

	reqBody := dto.RegisterRequest{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "student",
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.RegisterResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user-123", response.UserID)
	assert.Equal(t, "testuser", response.Username)

	mockAuthService.AssertExpectations(t)
}

func TestRegister_DuplicateStaysVague(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/register", handler.Register)

	mockAuthService.On("Register", "Test User", "testuser", "test@example.com", "password123", "").
		Return(nil, service.ErrEmailInUse)

	reqBody := dto.RegisterRequest{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "account creation failed", response["error"])

	mockAuthService.AssertExpectations(t)
}

func TestRegister_InvalidJSON(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/register", handler.Register)

	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/login", handler.Login)

	user := &models.User{
		ID:       "68f3b8be-5bd8-4c6c-9919-a4614b2731b3",
		Username: "testuser",
		Email:    "test@example.com",
	}

	mockAuthService.On("Login", "test@example.com", "password123").
		Return("access-token", "refresh-token", user, nil)

	reqBody := dto.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "access-token", response.AccessToken)
	assert.Equal(t, "refresh-token", response.RefreshToken)
	assert.Equal(t, "68f3b8be-5bd8-4c6c-9919-a4614b2731b3", response.UserID)
	assert.Equal(t, int64(900), response.ExpiresIn)

	mockAuthService.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/login", handler.Login)

	mockAuthService.On("Login", "test@example.com", "wrongpassword").
		Return("", "", nil, service.ErrInvalidCredentials)

	reqBody := dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrongpassword",
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestRefreshToken_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/refresh", handler.RefreshToken)

	mockAuthService.On("RefreshAccessToken", "old-refresh-token").
		Return("new-access-token", nil)

	reqBody := dto.RefreshTokenRequest{RefreshToken: "old-refresh-token"}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/refresh", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "new-access-token", response["access_token"])
	assert.Equal(t, "Bearer", response["token_type"])
	assert.EqualValues(t, 900, response["expires_in"])

	mockAuthService.AssertExpectations(t)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/refresh", handler.RefreshToken)

	mockAuthService.On("RefreshAccessToken", "invalid-token").
		Return("", errors.New("invalid refresh token"))

	reqBody := dto.RefreshTokenRequest{RefreshToken: "invalid-token"}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/refresh", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertExpectations(t)
}
