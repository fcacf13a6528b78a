package tenant

// Colors is the six-field theme palette applied per tenant.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}

// Branding holds the per-tenant site identity served to the UI.
type Branding struct {
	SiteName string `json:"site_name"`
	Favicon  string `json:"favicon,omitempty"`
	OGImage  string `json:"og_image,omitempty"`
}

// Tenant is one branded variant of the site, selected by subdomain.
// Instances are defined once at startup and read-only afterwards.
type Tenant struct {
	ID            string   `json:"id"`
	Prefix        string   `json:"prefix"`
	Name          string   `json:"name"`
	Colors        Colors   `json:"colors"`
	ContentFilter []string `json:"content_filter,omitempty"`
	Branding      Branding `json:"branding"`
}

// Registry maps subdomain prefixes to tenants. It is immutable after
// construction and safe to share across request handlers.
type Registry struct {
	baseDomain string
	byPrefix   map[string]*Tenant
	def        *Tenant
}

// NewRegistry builds a registry over the given tenants. The tenant whose
// prefix is empty becomes the default; tenants without one are looked up
// by prefix.
func NewRegistry(baseDomain string, def *Tenant, tenants ...*Tenant) *Registry {
	byPrefix := make(map[string]*Tenant, len(tenants))
	for _, t := range tenants {
		if t.Prefix != "" {
			byPrefix[t.Prefix] = t
		}
	}
	return &Registry{
		baseDomain: baseDomain,
		byPrefix:   byPrefix,
		def:        def,
	}
}

// Default returns the fallback tenant.
func (r *Registry) Default() *Tenant {
	return r.def
}

// Lookup returns the tenant registered under prefix, or nil.
func (r *Registry) Lookup(prefix string) *Tenant {
	return r.byPrefix[prefix]
}

// DefaultBaseDomain is used when no base domain is configured.
const DefaultBaseDomain = "ai-feed.dev"

// DefaultRegistry returns the built-in tenant table: the unbranded default
// plus the claude-code and codex agent variants.
func DefaultRegistry(baseDomain string) *Registry {
	if baseDomain == "" {
		baseDomain = DefaultBaseDomain
	}

	def := &Tenant{
		ID:   "default",
		Name: "AI Feed",
		Colors: Colors{
			Primary:    "#2563eb",
			Secondary:  "#1e40af",
			Accent:     "#f59e0b",
			Background: "#f8fafc",
			Surface:    "#ffffff",
			Text:       "#0f172a",
		},
		Branding: Branding{
			SiteName: "AI Feed",
			Favicon:  "/favicon.ico",
			OGImage:  "/og/default.png",
		},
	}

	claudeCode := &Tenant{
		ID:     "claude-code",
		Prefix: "claude-code",
		Name:   "Claude Code Feed",
		Colors: Colors{
			Primary:    "#d97757",
			Secondary:  "#b45309",
			Accent:     "#fbbf24",
			Background: "#fffbf5",
			Surface:    "#ffffff",
			Text:       "#292524",
		},
		ContentFilter: []string{"claude code", "claude"},
		Branding: Branding{
			SiteName: "Claude Code Feed",
			Favicon:  "/favicon-claude-code.ico",
			OGImage:  "/og/claude-code.png",
		},
	}

	codex := &Tenant{
		ID:     "codex",
		Prefix: "codex",
		Name:   "Codex Feed",
		Colors: Colors{
			Primary:    "#10a37f",
			Secondary:  "#047857",
			Accent:     "#34d399",
			Background: "#f0fdf4",
			Surface:    "#ffffff",
			Text:       "#111827",
		},
		ContentFilter: []string{"codex"},
		Branding: Branding{
			SiteName: "Codex Feed",
			Favicon:  "/favicon-codex.ico",
			OGImage:  "/og/codex.png",
		},
	}

	return NewRegistry(baseDomain, def, claudeCode, codex)
}
