package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"campushub/internal/middleware"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc service.AnalyticsService
}

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireStaff gin.HandlerFunc) {
	rg.GET("/top-materials", h.TopMaterials)
	rg.GET("/search-terms", requireAuth, requireStaff, h.TopSearchTerms)
}

func (h *AnalyticsHandler) TopMaterials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ranked, err := h.svc.TopMaterials(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ranked, "total": len(ranked)})
}

func (h *AnalyticsHandler) TopSearchTerms(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	terms, err := h.svc.TopSearchTerms(ctx, middleware.CurrentUser(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		case errors.Is(err, service.ErrNotStaff):
			c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": terms, "total": len(terms)})
}
