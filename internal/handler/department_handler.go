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

type DepartmentHandler struct {
	svc          service.DepartmentService
	timetableSvc service.TimetableService
}

func NewDepartmentHandler(svc service.DepartmentService, timetableSvc service.TimetableService) *DepartmentHandler {
	return &DepartmentHandler{svc: svc, timetableSvc: timetableSvc}
}

func (h *DepartmentHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireStaff gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:department_id", h.Get)
	rg.GET("/:department_id/timetable", h.UpcomingTimetable)

	rg.POST("", requireAuth, requireStaff, h.Create)
	rg.PUT("/:department_id", requireAuth, requireStaff, h.Update)
	rg.DELETE("/:department_id", requireAuth, requireStaff, h.Delete)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, dto.FromDepartmentToResponse(d))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "department_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dept, roster, err := h.svc.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	detail := dto.DepartmentDetailResponse{
		DepartmentResponse: dto.FromDepartmentToResponse(*dept),
		Faculty:            make([]dto.FacultyResponse, 0, len(roster)),
	}
	for _, f := range roster {
		detail.Faculty = append(detail.Faculty, dto.FromFacultyToResponse(f))
	}
	c.JSON(http.StatusOK, detail)
}

func (h *DepartmentHandler) UpcomingTimetable(c *gin.Context) {
	id, ok := pathID(c, "department_id")
	if !ok {
		return
	}

	var semester *int
	if s := c.Query("semester"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			semester = &parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.timetableSvc.Upcoming(ctx, id, semester)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.TimetableEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.FromTimetableEntryToResponse(e))
	}
	c.JSON(http.StatusOK, dto.TimetableListResponse{Items: resp, Total: len(resp)})
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dept := req.ToModel()
	if err := h.svc.Create(ctx, &dept); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "short code already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromDepartmentToResponse(dept))
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "department_id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dept, _, err := h.svc.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	req.ApplyTo(dept)
	if err := h.svc.Update(ctx, dept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromDepartmentToResponse(*dept))
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "department_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, writing the 400 itself.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
