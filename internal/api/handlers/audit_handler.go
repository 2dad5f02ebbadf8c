package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/domain/audit"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Audit entries for review mutations, newest first.
// @Tags         audit
// @Produce      json
// @Param        user_id       query     string   false  "Acting user"
// @Param        resource_type query     string   false  "Resource type, e.g. annotation"
// @Param        resource_id   query     string   false  "Resource ID"
// @Param        action        query     string   false  "Action, e.g. create"
// @Param        start_time    query     string   false  "RFC3339 lower bound"
// @Param        end_time      query     string   false  "RFC3339 upper bound"
// @Param        limit         query     int      false  "Max records (default 100, max 1000)"
// @Param        offset        query     int      false  "Offset for pagination"
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /api/audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := audit.QueryParams{
		UserID:       optionalQuery(c, "user_id"),
		ResourceType: optionalQuery(c, "resource_type"),
		ResourceID:   optionalQuery(c, "resource_id"),
		Action:       optionalQuery(c, "action"),
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			badRequest(c, "Invalid start_time")
			return
		}
		params.StartTime = &t
	}
	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			badRequest(c, "Invalid end_time")
			return
		}
		params.EndTime = &t
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		badRequest(c, "Invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, "Invalid offset")
		return
	}
	if limit > 1000 {
		limit = 1000
	}
	params.Limit = limit
	params.Offset = offset

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
