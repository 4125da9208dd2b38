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

type TimetableHandler struct {
	svc service.TimetableService
}

func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

func (h *TimetableHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireStaff gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.POST("", requireAuth, requireStaff, h.Create)
	rg.DELETE("/:entry_id", requireAuth, requireStaff, h.Delete)
}

// buildTimetableFilters mirrors the material filter parsing: malformed
// values are dropped. Without a date filter the repository defaults to
// the next 14 days.
func buildTimetableFilters(c *gin.Context) dto.TimetableFilters {
	var filters dto.TimetableFilters
	if d := c.Query("department"); d != "" {
		if parsed, err := strconv.ParseInt(d, 10, 64); err == nil {
			filters.DepartmentID = &parsed
		}
	}
	if s := c.Query("semester"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			filters.Semester = &parsed
		}
	}
	if d := c.Query("date"); d != "" {
		if parsed, err := time.Parse("2006-01-02", d); err == nil {
			filters.Date = &parsed
		}
	}
	return filters
}

func (h *TimetableHandler) List(c *gin.Context) {
	filters := buildTimetableFilters(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.svc.List(ctx, filters)
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

func (h *TimetableHandler) Create(c *gin.Context) {
	var req dto.CreateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := req.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromTimetableEntryToResponse(entry))
}

func (h *TimetableHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "entry_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "timetable entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
