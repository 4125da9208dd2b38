package handler

import (
	"errors"
	"net/http"

	"campushub/internal/dto"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	expiresIn   int64
}

func NewAuthHandler(authService service.AuthService, accessTokenSeconds int64) *AuthHandler {
	return &AuthHandler{authService: authService, expiresIn: accessTokenSeconds}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	rg.POST("/register", rateLimit, h.Register)
	rg.POST("/login", rateLimit, h.Login)
	rg.POST("/refresh", h.RefreshToken)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(req.Name, req.Username, req.Email, req.Password, req.Role)
	if errors.Is(err, service.ErrNameInUse) || errors.Is(err, service.ErrEmailInUse) {
		// Deliberately vague to avoid account enumeration
		c.JSON(http.StatusConflict, gin.H{"error": "account creation failed"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Message:  "account created",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Username:     user.Username,
		ExpiresIn:    h.expiresIn,
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newAccessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": newAccessToken,
		"token_type":   "Bearer",
		"expires_in":   h.expiresIn,
	})
}
