package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/domain/drawing"
)

type DrawingHandler struct {
	svc    *application.DrawingService
	users  *application.UserService
	review *application.ReviewService
}

func NewDrawingHandler(svc *application.DrawingService, users *application.UserService, review *application.ReviewService) *DrawingHandler {
	return &DrawingHandler{svc: svc, users: users, review: review}
}

// ListDrawings godoc
// @Summary List drawings
// @Tags drawings
// @Produce json
// @Param project_id query string false "Only drawings of this project"
// @Success 200 {array} drawing.Drawing
// @Router /api/drawings [get]
func (h *DrawingHandler) ListDrawings(c *gin.Context) {
	drawings, err := h.svc.ListDrawings(optionalQuery(c, "project_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drawings)
}

// GetDrawing godoc
// @Summary Get drawing by ID
// @Tags drawings
// @Produce json
// @Param id path string true "Drawing ID"
// @Success 200 {object} drawing.Drawing
// @Failure 404 {object} response.ErrorResponse
// @Router /api/drawings/{id} [get]
func (h *DrawingHandler) GetDrawing(c *gin.Context) {
	d, err := h.svc.GetDrawing(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListVersions godoc
// @Summary List a drawing's versions, oldest first
// @Tags drawings
// @Produce json
// @Param id path string true "Drawing ID"
// @Success 200 {array} drawing.Version
// @Failure 404 {object} response.ErrorResponse
// @Router /api/drawings/{id}/versions [get]
func (h *DrawingHandler) ListVersions(c *gin.Context) {
	versions, err := h.svc.ListVersions(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// CreateVersion godoc
// @Summary Append a version that points at an already stored file
// @Tags drawings
// @Accept json
// @Produce json
// @Param id path string true "Drawing ID"
// @Param input body drawing.CreateVersionDTO true "Version"
// @Success 201 {object} drawing.Version
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/drawings/{id}/versions [post]
func (h *DrawingHandler) CreateVersion(c *gin.Context) {
	var input drawing.CreateVersionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	createdBy, err := h.users.ResolveActor(c.Request.Context(), input.CreatedByID)
	if err != nil {
		respondError(c, err)
		return
	}
	v, err := h.svc.AppendVersion(c.Request.Context(), c.Param("id"), input.FileURL, input.ChangesSummary, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UploadVersion godoc
// @Summary Upload a file and append it as the drawing's next version
// @Tags drawings
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Drawing ID"
// @Param file formData file true "Drawing file"
// @Param changes_summary formData string false "What changed"
// @Param created_by_id formData string false "Uploader user ID"
// @Success 201 {object} drawing.Version
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/drawings/{id}/versions/upload [post]
func (h *DrawingHandler) UploadVersion(c *gin.Context) {
	var input drawing.UploadVersionDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	createdBy, err := h.users.ResolveActor(c.Request.Context(), input.CreatedByID)
	if err != nil {
		respondError(c, err)
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	v, err := h.review.UploadVersion(c.Request.Context(), c.Param("id"), application.Upload{
		Reader:   f,
		Size:     fileHeader.Size,
		Filename: fileHeader.Filename,
	}, input.ChangesSummary, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}
