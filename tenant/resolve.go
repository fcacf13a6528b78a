package tenant

import (
	"regexp"
	"strings"
)

// Reason classifies why a host did or did not map to a tenant. Every
// non-Valid reason resolves to the default tenant; the classification
// exists so each fallback path can be tested on its own.
type Reason int

const (
	Valid Reason = iota
	EmptyHost
	TooLong
	MaliciousPattern
	NoSubdomain
	InvalidSubdomainShape
	UnknownSubdomain
)

func (r Reason) String() string {
	switch r {
	case Valid:
		return "valid"
	case EmptyHost:
		return "empty_host"
	case TooLong:
		return "too_long"
	case MaliciousPattern:
		return "malicious_pattern"
	case NoSubdomain:
		return "no_subdomain"
	case InvalidSubdomainShape:
		return "invalid_subdomain_shape"
	case UnknownSubdomain:
		return "unknown_subdomain"
	}
	return "unknown"
}

// maxHostLen is the RFC 1035 limit on a full domain name.
const maxHostLen = 253

var (
	// Checked against the raw header before any sanitization so encoded
	// payloads that sanitization would strip are still caught.
	maliciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)data:`),
		regexp.MustCompile(`<[^>]*>`),
		regexp.MustCompile(`['";]`),
		regexp.MustCompile(`\.\.`),
		regexp.MustCompile(`\\`),
	}

	hostSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-:]`)

	// RFC 1035 label: alphanumeric, hyphens allowed inside only.
	subdomainShape = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
)

// Resolve maps a raw Host header to a tenant. It is total: every
// invalid, unknown, or malicious input degrades to the default tenant,
// so a bad header never blocks access, it only loses branding.
func (r *Registry) Resolve(host string) *Tenant {
	t, _ := r.ResolveWithReason(host)
	return t
}

// ResolveWithReason is Resolve plus the classification of the decision.
func (r *Registry) ResolveWithReason(host string) (*Tenant, Reason) {
	if host == "" {
		return r.def, EmptyHost
	}
	if len(host) > maxHostLen {
		return r.def, TooLong
	}
	for _, p := range maliciousPatterns {
		if p.MatchString(host) {
			return r.def, MaliciousPattern
		}
	}

	// Sanitize the full original string, then drop the :port suffix.
	// Host names are case-insensitive, so fold before matching against
	// the registry's lowercase prefixes.
	sanitized := hostSanitizer.ReplaceAllString(host, "")
	if i := strings.Index(sanitized, ":"); i >= 0 {
		sanitized = sanitized[:i]
	}
	sanitized = strings.ToLower(sanitized)

	sub, ok := r.subdomainOf(sanitized)
	if !ok {
		return r.def, NoSubdomain
	}
	if sub == "" || len(sub) > 63 || !subdomainShape.MatchString(sub) {
		return r.def, InvalidSubdomainShape
	}

	t := r.byPrefix[sub]
	if t == nil {
		return r.def, UnknownSubdomain
	}
	return t, Valid
}

// subdomainOf extracts the candidate subdomain from a sanitized host.
// The .localhost path is a development convenience that bypasses the
// base-domain check.
func (r *Registry) subdomainOf(host string) (string, bool) {
	if host == "localhost" {
		return "", false
	}
	if strings.HasSuffix(host, ".localhost") {
		return strings.TrimSuffix(host, ".localhost"), true
	}
	if strings.HasSuffix(host, "."+r.baseDomain) {
		return strings.TrimSuffix(host, "."+r.baseDomain), true
	}
	return "", false
}
