package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/pkg/response"
)

type AnnotationHandler struct {
	svc   *application.AnnotationService
	users *application.UserService
}

func NewAnnotationHandler(svc *application.AnnotationService, users *application.UserService) *AnnotationHandler {
	return &AnnotationHandler{svc: svc, users: users}
}

// ListAnnotations godoc
// @Summary List annotations on a drawing
// @Tags annotations
// @Produce json
// @Param id path string true "Drawing ID"
// @Param version_id query string false "Only annotations on this version"
// @Success 200 {array} annotation.Annotation
// @Router /api/drawings/{id}/annotations [get]
func (h *AnnotationHandler) ListAnnotations(c *gin.Context) {
	annotations, err := h.svc.ListAnnotations(c.Param("id"), optionalQuery(c, "version_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, annotations)
}

// CreateAnnotation godoc
// @Summary Create an annotation on a drawing version
// @Tags annotations
// @Accept json
// @Produce json
// @Param input body annotation.CreateAnnotationDTO true "Annotation"
// @Success 201 {object} annotation.Annotation
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/annotations [post]
func (h *AnnotationHandler) CreateAnnotation(c *gin.Context) {
	var input annotation.CreateAnnotationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	authorID, err := h.users.ResolveActor(c.Request.Context(), input.AuthorID)
	if err != nil {
		respondError(c, err)
		return
	}
	a, err := h.svc.CreateAnnotation(c.Request.Context(), input.ToInput(authorID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ResolveAnnotation godoc
// @Summary Mark an annotation resolved
// @Tags annotations
// @Produce json
// @Param id path string true "Annotation ID"
// @Success 200 {object} annotation.Annotation
// @Failure 404 {object} response.ErrorResponse
// @Router /api/annotations/{id}/resolve [put]
func (h *AnnotationHandler) ResolveAnnotation(c *gin.Context) {
	a, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// UnresolveAnnotation godoc
// @Summary Reopen a resolved annotation
// @Tags annotations
// @Produce json
// @Param id path string true "Annotation ID"
// @Success 200 {object} annotation.Annotation
// @Failure 404 {object} response.ErrorResponse
// @Router /api/annotations/{id}/unresolve [put]
func (h *AnnotationHandler) UnresolveAnnotation(c *gin.Context) {
	a, err := h.svc.Unresolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAnnotation godoc
// @Summary Delete an annotation and its replies
// @Tags annotations
// @Produce json
// @Param id path string true "Annotation ID"
// @Success 200 {object} response.DeletedResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/annotations/{id} [delete]
func (h *AnnotationHandler) DeleteAnnotation(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.DeleteAnnotation(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{Message: "Annotation deleted", ID: id})
}

// AddReply godoc
// @Summary Reply to an annotation
// @Description Accepts a JSON body or content/author_id query parameters.
// @Tags annotations
// @Accept json
// @Produce json
// @Param id path string true "Annotation ID"
// @Param input body annotation.CreateReplyDTO false "Reply"
// @Success 201 {object} annotation.Annotation
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/annotations/{id}/replies [post]
func (h *AnnotationHandler) AddReply(c *gin.Context) {
	var input annotation.CreateReplyDTO
	if err := bindBodyOrQuery(c, &input); err != nil {
		badRequest(c, err.Error())
		return
	}
	authorID, err := h.users.ResolveActor(c.Request.Context(), input.AuthorID)
	if err != nil {
		respondError(c, err)
		return
	}
	a, err := h.svc.AddReply(c.Request.Context(), c.Param("id"), input.Content, authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}
