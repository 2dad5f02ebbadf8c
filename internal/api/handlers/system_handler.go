package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

type SystemHandler struct {
	name    string
	version string
	store   string
	ping    Pinger
}

func NewSystemHandler(name, version, store string, ping Pinger) *SystemHandler {
	return &SystemHandler{name: name, version: version, store: store, ping: ping}
}

// Root godoc
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": h.name,
		"version": h.version,
	})
}

// Health godoc
// @Summary Liveness and store status
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	body := gin.H{
		"status": "ok",
		"store":  h.store,
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			body["status"] = "degraded"
			body["error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}
	c.JSON(http.StatusOK, body)
}
