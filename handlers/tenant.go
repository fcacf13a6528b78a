package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfeed/tenant"
)

const tenantKey = "tenant"

// TenantMiddleware resolves the request's Host header to a tenant and
// stores it in the request context. Resolution is total, so there is no
// error path: a bad header just gets the default branding.
func (h *Handler) TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := h.tenants.Resolve(c.Request.Host)
		c.Set(tenantKey, t)
		c.Next()
	}
}

// currentTenant returns the tenant resolved for this request.
func (h *Handler) currentTenant(c *gin.Context) *tenant.Tenant {
	if v, ok := c.Get(tenantKey); ok {
		if t, ok := v.(*tenant.Tenant); ok {
			return t
		}
	}
	return h.tenants.Default()
}

// GetTenant serves the resolved tenant's branding and theme.
func (h *Handler) GetTenant(c *gin.Context) {
	c.JSON(http.StatusOK, h.currentTenant(c))
}
