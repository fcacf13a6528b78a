package handlers

import (
	"github.com/gin-gonic/gin"

	"techfeed/store"
	"techfeed/tenant"
)

// Handler carries the dependencies shared by all routes.
type Handler struct {
	store    *store.Store
	tenants  *tenant.Registry
	pageSize int
}

func New(st *store.Store, tenants *tenant.Registry, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = store.DefaultPageSize
	}
	return &Handler{store: st, tenants: tenants, pageSize: pageSize}
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.TenantMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/articles", h.GetArticles)
		api.GET("/weekly", h.GetWeekly)
		api.GET("/tenant", h.GetTenant)
		api.GET("/stats", h.GetStats)
	}

	return r
}
