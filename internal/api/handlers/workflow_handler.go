package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/domain/workflow"
)

type WorkflowHandler struct {
	svc *application.WorkflowService
}

func NewWorkflowHandler(svc *application.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{svc: svc}
}

// ListWorkflows godoc
// @Summary List review workflows
// @Tags workflows
// @Produce json
// @Param drawing_id query string false "Only workflows of this drawing"
// @Success 200 {array} workflow.ReviewWorkflow
// @Router /api/workflows [get]
func (h *WorkflowHandler) ListWorkflows(c *gin.Context) {
	workflows, err := h.svc.ListWorkflows(optionalQuery(c, "drawing_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workflows)
}

// GetWorkflow godoc
// @Summary Get review workflow by ID
// @Tags workflows
// @Produce json
// @Param id path string true "Workflow ID"
// @Success 200 {object} workflow.ReviewWorkflow
// @Failure 404 {object} response.ErrorResponse
// @Router /api/workflows/{id} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	w, err := h.svc.GetWorkflow(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// CreateWorkflow godoc
// @Summary Open the review of a drawing version
// @Tags workflows
// @Accept json
// @Produce json
// @Param input body workflow.CreateWorkflowDTO true "Workflow"
// @Success 201 {object} workflow.ReviewWorkflow
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Version already under review"
// @Router /api/workflows [post]
func (h *WorkflowHandler) CreateWorkflow(c *gin.Context) {
	var input workflow.CreateWorkflowDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	w, err := h.svc.CreateWorkflow(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// UpdateStatus godoc
// @Summary Move a workflow to a new review status
// @Description Accepts a JSON body or a status query parameter.
// @Tags workflows
// @Accept json
// @Produce json
// @Param id path string true "Workflow ID"
// @Param input body workflow.UpdateStatusDTO false "Status"
// @Success 200 {object} workflow.ReviewWorkflow
// @Failure 400 {object} response.ErrorResponse "Invalid status or transition"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/workflows/{id}/status [put]
func (h *WorkflowHandler) UpdateStatus(c *gin.Context) {
	var input workflow.UpdateStatusDTO
	if err := bindBodyOrQuery(c, &input); err != nil {
		badRequest(c, err.Error())
		return
	}
	w, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}
