package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"campushub/internal/dto"
	"campushub/internal/middleware"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("", requireAuth, h.Library)
}

func (h *LibraryHandler) Library(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	favorites, recents, err := h.svc.Library(ctx, middleware.CurrentUser(c))
	if errors.Is(err, service.ErrUnauthenticated) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.LibraryResponse{
		Favorites:      make([]dto.LibraryEntryResponse, 0, len(favorites)),
		RecentlyViewed: make([]dto.LibraryEntryResponse, 0, len(recents)),
	}
	for _, f := range favorites {
		entry := dto.LibraryEntryResponse{MaterialID: f.MaterialID, At: f.CreatedAt}
		if f.Material != nil {
			entry.Material = dto.FromMaterialToResponse(*f.Material)
		}
		resp.Favorites = append(resp.Favorites, entry)
	}
	for _, r := range recents {
		entry := dto.LibraryEntryResponse{MaterialID: r.MaterialID, At: r.LastViewedAt}
		if r.Material != nil {
			entry.Material = dto.FromMaterialToResponse(*r.Material)
		}
		resp.RecentlyViewed = append(resp.RecentlyViewed, entry)
	}

	c.JSON(http.StatusOK, resp)
}
