package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
)

type ProjectHandler struct {
	svc *application.DrawingService
}

func NewProjectHandler(svc *application.DrawingService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjects godoc
// @Summary List projects with their drawings and team
// @Tags projects
// @Produce json
// @Success 200 {array} project.Detail
// @Failure 500 {object} response.ErrorResponse
// @Router /api/projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Detail
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	p, err := h.svc.GetProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
