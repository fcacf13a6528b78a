package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"techfeed/models"
	"techfeed/store"
)

// GetArticles serves the filtered, sorted, paginated article listing.
// Query parameters: site (site key or "all"), order (latest|trending),
// page (positive int, default 1), q (free text, capped at 100 chars).
func (h *Handler) GetArticles(c *gin.Context) {
	site := c.DefaultQuery("site", "all")
	if site != "all" && !models.ValidSite(site) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown site: " + site})
		return
	}

	order := store.Order(c.DefaultQuery("order", "latest"))
	if order != store.OrderLatest && order != store.OrderTrending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be latest or trending"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	q := strings.TrimSpace(c.Query("q"))
	if runes := []rune(q); len(runes) > store.MaxQueryLen {
		q = string(runes[:store.MaxQueryLen])
	}

	params := store.ListParams{
		Site:          site,
		Order:         order,
		Page:          page,
		Limit:         h.pageSize,
		Query:         q,
		ContentFilter: h.currentTenant(c).ContentFilter,
	}

	result, err := h.store.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}

	c.JSON(http.StatusOK, result)
}
