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

type FacultyHandler struct {
	svc service.FacultyService
}

func NewFacultyHandler(svc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{svc: svc}
}

func (h *FacultyHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireStaff gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:faculty_id", h.Get)

	rg.POST("", requireAuth, requireStaff, h.Create)
	rg.PUT("/:faculty_id", requireAuth, requireStaff, h.Update)
	rg.DELETE("/:faculty_id", requireAuth, requireStaff, h.Delete)
}

func (h *FacultyHandler) List(c *gin.Context) {
	var departmentID *int64
	if d := c.Query("department_id"); d != "" {
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

	resp := make([]dto.FacultyResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, dto.FromFacultyToResponse(f))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *FacultyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "faculty_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	f, err := h.svc.Get(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "faculty member not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromFacultyToResponse(*f))
}

func (h *FacultyHandler) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	f := req.ToModel()
	if err := h.svc.Create(ctx, &f); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromFacultyToResponse(f))
}

func (h *FacultyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "faculty_id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	f, err := h.svc.Get(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "faculty member not found"})
		return
	}

	req.ApplyTo(f)
	if err := h.svc.Update(ctx, f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromFacultyToResponse(*f))
}

func (h *FacultyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "faculty_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "faculty member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
