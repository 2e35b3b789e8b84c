package handler

import (
	"net"
	"net/http"
	"strings"
)

// SecurityHeaders adds headers that are safe for every response, including
// the static site.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		next.ServeHTTP(w, r)
	})
}

// APISecurityHeaders locks down JSON responses. HSTS is only sent when the
// request arrived over TLS, directly or behind a proxy.
func APISecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIPResolver determines the address a request came from. With no
// trusted proxies only the socket address counts, so X-Forwarded-For cannot
// be spoofed.
type ClientIPResolver struct {
	trustedProxyCount int
}

func NewClientIPResolver(trustedProxyCount int) ClientIPResolver {
	if trustedProxyCount < 0 {
		trustedProxyCount = 0
	}
	return ClientIPResolver{trustedProxyCount: trustedProxyCount}
}

// ClientIP returns the normalized client address, or "" when it is unknown.
// Behind proxies it reads the entry the outermost trusted proxy appended,
// counting from the right of X-Forwarded-For.
func (c ClientIPResolver) ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && c.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - c.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			if ip := normalizeIP(parts[idx]); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalizeIP(r.RemoteAddr)
	}
	return normalizeIP(host)
}

func normalizeIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
