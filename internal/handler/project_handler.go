package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
	"github.com/jaredsteven/portfolio-backend/internal/service"
	"github.com/jaredsteven/portfolio-backend/pkg/ginutil"
)

// ProjectHandler handles portfolio project requests
type ProjectHandler struct {
	service service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects handles GET /api/projects
// @Summary Public project list in display order
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch projects", err)
		return
	}

	common.SuccessResponse(c, projects, &common.Meta{Total: int64(len(projects))})
}

// ListAdminProjects handles GET /api/admin/projects
func (h *ProjectHandler) ListAdminProjects(c *gin.Context) {
	projects, err := h.service.ListAll()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch projects", err)
		return
	}

	common.SuccessResponse(c, projects, &common.Meta{Total: int64(len(projects))})
}

// SaveProject handles POST /api/admin/projects
// @Summary Create or replace one project
func (h *ProjectHandler) SaveProject(c *gin.Context) {
	var req domain.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	project, err := h.service.Save(&req)
	if errors.Is(err, common.ErrValidation) {
		common.ErrorResponse(c, 400, err.Error(), err)
		return
	}
	if errors.Is(err, common.ErrProjectNotFound) {
		common.ErrorResponse(c, 404, "Project not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to save project", err)
		return
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, common.APIResponse{Data: project})
}

// DeleteProject handles DELETE /api/admin/projects/:id
// @Summary Delete one project; requires confirm=true
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid project ID", err)
		return
	}

	if c.Query("confirm") != "true" {
		common.ErrorResponse(c, 400, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrProjectNotFound) {
			common.ErrorResponse(c, 404, "Project not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to delete project", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Project deleted"}, nil)
}
