package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the latest aggregate snapshot. Fields a source has
// never delivered are omitted; last_error carries the most recent fetch
// failure, if any.
func (h *Handler) GetDashboard(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.get-dashboard")
	defer span.End()

	c.JSON(http.StatusOK, h.state.Snapshot())
}
