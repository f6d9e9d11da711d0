package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/layer-3/questrun/core"
)

// StatusHandlers serves the operational endpoints of the runner
type StatusHandlers struct {
	startedAt time.Time

	mu      sync.RWMutex
	summary *core.CycleSummary
}

// NewStatusHandlers creates new status handlers
func NewStatusHandlers() *StatusHandlers {
	return &StatusHandlers{startedAt: time.Now()}
}

// RecordSummary stores the latest cycle summary for /status
func (h *StatusHandlers) RecordSummary(summary core.CycleSummary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.summary = &summary
}

// Healthz reports process liveness
func (h *StatusHandlers) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status returns the last cycle summary, or 204 before the first cycle
// completes
func (h *StatusHandlers) Status(c *gin.Context) {
	h.mu.RLock()
	summary := h.summary
	h.mu.RUnlock()

	if summary == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"started_at":  h.startedAt,
		"last_cycle":  summary,
		"uptime_secs": int(time.Since(h.startedAt).Seconds()),
	})
}
