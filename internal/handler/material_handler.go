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

type MaterialHandler struct {
	materialSvc   service.MaterialService
	favoriteSvc   service.FavoriteService
	moderationSvc service.ModerationService
}

func NewMaterialHandler(
	materialSvc service.MaterialService,
	favoriteSvc service.FavoriteService,
	moderationSvc service.ModerationService,
) *MaterialHandler {
	return &MaterialHandler{
		materialSvc:   materialSvc,
		favoriteSvc:   favoriteSvc,
		moderationSvc: moderationSvc,
	}
}

func (h *MaterialHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth, requireAuth, requireVerifier gin.HandlerFunc) {
	// Anonymous callers can browse approved materials
	rg.GET("", optionalAuth, h.List)
	rg.GET("/:material_id", optionalAuth, h.Get)
	rg.GET("/:material_id/download", optionalAuth, h.Download)

	rg.POST("", requireAuth, h.Upload)
	rg.POST("/:material_id/favorite", requireAuth, h.ToggleFavorite)

	// Moderation surface
	rg.GET("/moderation/queue", requireAuth, requireVerifier, h.ModerationQueue)
	rg.GET("/:material_id/audit", requireAuth, requireVerifier, h.AuditTrail)
	rg.POST("/:material_id/moderation", requireAuth, requireVerifier, h.Moderate)
}

// buildMaterialFilters parses the loose query params into one typed
// filter value. Malformed numeric values are dropped, not rejected.
func buildMaterialFilters(c *gin.Context) dto.MaterialFilters {
	var filters dto.MaterialFilters
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
	if y := c.Query("year"); y != "" {
		if parsed, err := strconv.Atoi(y); err == nil {
			filters.Year = &parsed
		}
	}
	return filters
}

func (h *MaterialHandler) List(c *gin.Context) {
	filters := buildMaterialFilters(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.materialSvc.List(ctx, filters, middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromMaterialToResponse(m))
	}
	c.JSON(http.StatusOK, dto.MaterialListResponse{Items: resp, Total: len(resp)})
}

func (h *MaterialHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "material_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, isFavorite, err := h.materialSvc.Get(ctx, id, middleware.CurrentUser(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MaterialDetailResponse{
		MaterialResponse: dto.FromMaterialToResponse(*m),
		IsFavorite:       isFavorite,
	})
}

func (h *MaterialHandler) Upload(c *gin.Context) {
	var req dto.UploadMaterialRequest
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

	m := req.ToModel(user.ID)
	if err := h.materialSvc.Upload(ctx, &m, user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromMaterialToResponse(m))
}

func (h *MaterialHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "material_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, redirectURL, err := h.materialSvc.Download(ctx, id, middleware.CurrentUser(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DownloadResponse{
		MaterialID:     m.ID,
		DownloadsCount: m.DownloadsCount,
		RedirectURL:    redirectURL,
	})
}

func (h *MaterialHandler) ToggleFavorite(c *gin.Context) {
	id, ok := pathID(c, "material_id")
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp, err := h.favoriteSvc.Toggle(ctx, user.ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaterialHandler) ModerationQueue(c *gin.Context) {
	status := c.Query("status")
	var departmentID *int64
	if d := c.Query("department"); d != "" {
		if parsed, err := strconv.ParseInt(d, 10, 64); err == nil {
			departmentID = &parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.moderationSvc.Queue(ctx, middleware.CurrentUser(c), status, departmentID)
	if err != nil {
		writeModerationError(c, err)
		return
	}

	resp := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromMaterialToResponse(m))
	}
	c.JSON(http.StatusOK, dto.MaterialListResponse{Items: resp, Total: len(resp)})
}

func (h *MaterialHandler) AuditTrail(c *gin.Context) {
	id, ok := pathID(c, "material_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	trail, err := h.moderationSvc.AuditTrail(ctx, middleware.CurrentUser(c), id)
	if err != nil {
		writeModerationError(c, err)
		return
	}

	resp := make([]dto.AuditResponse, 0, len(trail))
	for _, a := range trail {
		resp = append(resp, dto.FromAuditToResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *MaterialHandler) Moderate(c *gin.Context) {
	id, ok := pathID(c, "material_id")
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.moderationSvc.Apply(ctx, id, middleware.CurrentUser(c), req.Action, req.Reason)
	if err != nil {
		writeModerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMaterialToResponse(*m))
}

func writeModerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrNotVerifier):
		c.JSON(http.StatusForbidden, gin.H{"error": "verifier access required"})
	case errors.Is(err, service.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
