package middleware

import (
	"net/http"
	"strings"

	"campushub/internal/models"
	"campushub/internal/repository"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// CurrentUser returns the authenticated user set by AuthMiddleware or
// OptionalAuth, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// AuthMiddleware authenticates the request from the Bearer token and
// loads the user row so handlers get current flags, not token-time ones.
func AuthMiddleware(authService service.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, authService, userRepo)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and
// leaves the request anonymous otherwise. Listing endpoints use it so
// unauthenticated browsing still works.
func OptionalAuth(authService service.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, authService, userRepo); ok {
			c.Set(currentUserKey, user)
			c.Set("userID", user.ID)
			c.Set("role", user.Role)
		}
		c.Next()
	}
}

// RequireStaff gates staff/superuser-only routes. Runs after
// AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !user.IsStaff && !user.IsSuperuser {
			c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireVerifier gates the moderation surface: staff, superuser, or
// any coordinator role. Runs after AuthMiddleware.
func RequireVerifier(access service.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		verifier, err := access.IsVerifier(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check permissions"})
			c.Abort()
			return
		}
		if !verifier {
			c.JSON(http.StatusForbidden, gin.H{"error": "verifier access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, authService service.AuthService, userRepo repository.UserRepository) (*models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}

	user, err := userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
