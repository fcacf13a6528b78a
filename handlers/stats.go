package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats serves corpus-level counts.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
