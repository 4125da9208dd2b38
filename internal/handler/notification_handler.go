package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"campushub/internal/dto"
	"campushub/internal/middleware"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireStaff gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.POST("", requireAuth, requireStaff, h.Create)
}

func (h *NotificationHandler) List(c *gin.Context) {
	var departmentID *int64
	if d := c.Query("department"); d != "" {
		if parsed, err := strconv.ParseInt(d, 10, 64); err == nil {
			departmentID = &parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.List(ctx, departmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, dto.FromNotificationToResponse(n))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	n := req.ToModel(user.ID)
	if err := h.svc.Create(ctx, &n); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromNotificationToResponse(n))
}
