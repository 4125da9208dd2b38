package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"campushub/internal/dto"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CoordinatorHandler struct {
	svc service.CoordinatorService
}

func NewCoordinatorHandler(svc service.CoordinatorService) *CoordinatorHandler {
	return &CoordinatorHandler{svc: svc}
}

func (h *CoordinatorHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireStaff gin.HandlerFunc) {
	rg.GET("", requireAuth, requireStaff, h.ListByDepartment)
	rg.POST("", requireAuth, requireStaff, h.Assign)
	rg.DELETE("/:coordinator_id", requireAuth, requireStaff, h.Remove)
}

func (h *CoordinatorHandler) ListByDepartment(c *gin.Context) {
	departmentID, err := strconv.ParseInt(c.Query("department"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListByDepartment(ctx, departmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.CoordinatorResponse, 0, len(list))
	for _, co := range list {
		resp = append(resp, dto.FromCoordinatorToResponse(co))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *CoordinatorHandler) Assign(c *gin.Context) {
	var req dto.AssignCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	co := req.ToModel()
	if err := h.svc.Assign(ctx, &co); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user or department not found"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "coordinator role already assigned"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.FromCoordinatorToResponse(co))
}

func (h *CoordinatorHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "coordinator_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "coordinator not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
