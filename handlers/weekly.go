package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfeed/models"
	"techfeed/week"
)

// WeeklyResponse is the digest payload for one week.
type WeeklyResponse struct {
	Week     weekJSON               `json:"week"`
	Previous weekJSON               `json:"previous"`
	Next     weekJSON               `json:"next"`
	IsFuture bool                   `json:"is_future"`
	Articles []models.WeeklyArticle `json:"articles"`
}

type weekJSON struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Year       int    `json:"year"`
	WeekNumber int    `json:"week_number"`
	Label      string `json:"label"`
}

func toWeekJSON(r week.Range) weekJSON {
	return weekJSON{
		Start:      r.Start(),
		End:        r.End(),
		Year:       r.Year,
		WeekNumber: r.WeekNumber,
		Label:      r.Label,
	}
}

// GetWeekly serves the weekly digest. The week parameter is a Monday in
// yyyy-MM-dd form; it defaults to the current week. An invalid or
// non-Monday value is a 404, not an error page.
func (h *Handler) GetWeekly(c *gin.Context) {
	weekParam := c.Query("week")

	var current week.Range
	if weekParam == "" {
		current = week.Current()
	} else {
		if !week.IsValidDateString(weekParam) {
			c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
			return
		}
		start, err := week.ParseDate(weekParam)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
			return
		}
		current = week.Of(start)
		if current.Start() != weekParam {
			// The parameter must name the week's Monday.
			c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
			return
		}
	}

	adjacent, err := week.AdjacentWeeks(current.Start())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
		return
	}
	future, err := week.IsFutureWeek(current.Start())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
		return
	}

	articles, err := h.store.WeeklyReport(current.Start())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load weekly report"})
		return
	}

	c.JSON(http.StatusOK, WeeklyResponse{
		Week:     toWeekJSON(current),
		Previous: toWeekJSON(adjacent.Previous),
		Next:     toWeekJSON(adjacent.Next),
		IsFuture: future,
		Articles: articles,
	})
}
