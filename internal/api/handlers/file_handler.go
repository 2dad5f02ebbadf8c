package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/pkg/response"
)

type FileHandler struct {
	svc     *application.ReviewService
	baseURL string
}

func NewFileHandler(svc *application.ReviewService, baseURL string) *FileHandler {
	return &FileHandler{svc: svc, baseURL: strings.TrimRight(baseURL, "/")}
}

// UploadFile godoc
// @Summary Store a drawing file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Success 201 {object} response.UploadResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/upload [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	obj, err := h.svc.StoreFile(c.Request.Context(), application.Upload{
		Reader:   f,
		Size:     fileHeader.Size,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.UploadResponse{
		Filename:         obj.Key,
		OriginalFilename: fileHeader.Filename,
		URL:              obj.URL,
		FullURL:          h.baseURL + obj.URL,
	})
}

// ServeFile godoc
// @Summary Download a stored file
// @Tags files
// @Produce octet-stream
// @Param key path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse
// @Router /uploads/{key} [get]
func (h *FileHandler) ServeFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	rc, obj, err := h.svc.OpenFile(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, rc, map[string]string{
		"Cache-Control": "public, max-age=86400",
	})
}
