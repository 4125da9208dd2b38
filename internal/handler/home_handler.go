package handler

import (
	"context"
	"net/http"
	"time"

	"campushub/internal/dto"
	"campushub/internal/middleware"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the landing projection: the department list plus
// the most recent visible materials.
type HomeHandler struct {
	departmentSvc service.DepartmentService
	materialSvc   service.MaterialService
}

func NewHomeHandler(departmentSvc service.DepartmentService, materialSvc service.MaterialService) *HomeHandler {
	return &HomeHandler{departmentSvc: departmentSvc, materialSvc: materialSvc}
}

func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	rg.GET("", optionalAuth, h.Home)
}

func (h *HomeHandler) Home(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	departments, err := h.departmentSvc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	recent, err := h.materialSvc.Recent(ctx, middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	deptResp := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		deptResp = append(deptResp, dto.FromDepartmentToResponse(d))
	}
	materialResp := make([]dto.MaterialResponse, 0, len(recent))
	for _, m := range recent {
		materialResp = append(materialResp, dto.FromMaterialToResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"departments":      deptResp,
		"recent_materials": materialResp,
	})
}
