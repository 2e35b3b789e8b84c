package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecurityHeaders_SetsAllHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/api/contact", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s: want %q, got %q", name, want, got)
		}
	}
	for _, name := range []string{"Content-Security-Policy", "Strict-Transport-Security"} {
		if got := rec.Header().Get(name); got != "" {
			t.Errorf("%s must be left to APISecurityHeaders, got %q", name, got)
		}
	}
}

func TestAPISecurityHeaders_CSP(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("POST", "/api/contact", nil)
	rec := httptest.NewRecorder()
	APISecurityHeaders(inner).ServeHTTP(rec, req)

	csp := rec.Header().Get("Content-Security-Policy")
	for _, d := range []string{"default-src 'none'", "frame-ancestors 'none'"} {
		if !strings.Contains(csp, d) {
			t.Errorf("CSP missing directive %q: %s", d, csp)
		}
	}
}

func TestAPISecurityHeaders_HSTSOnlyOverTLS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	plain := httptest.NewRequest("POST", "http://localhost/api/contact", nil)
	rec := httptest.NewRecorder()
	APISecurityHeaders(inner).ServeHTTP(rec, plain)
	if got := rec.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("expected no HSTS over plain HTTP, got %q", got)
	}

	tls := httptest.NewRequest("POST", "https://sterlinglegal.com/api/contact", nil)
	rec = httptest.NewRecorder()
	APISecurityHeaders(inner).ServeHTTP(rec, tls)
	if hsts := rec.Header().Get("Strict-Transport-Security"); !strings.Contains(hsts, "max-age=") {
		t.Errorf("expected HSTS over TLS, got %q", hsts)
	}

	proxied := httptest.NewRequest("POST", "http://localhost/api/contact", nil)
	proxied.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	APISecurityHeaders(inner).ServeHTTP(rec, proxied)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("expected HSTS behind a TLS-terminating proxy")
	}
}

func TestSecurityHeaders_PassesThrough(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	if !called {
		t.Error("inner handler was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    int
		remoteAddr string
		xff        string
		want       string
	}{
		{"remote addr with port", 0, "203.0.113.7:54321", "", "203.0.113.7"},
		{"remote addr without port", 0, "203.0.113.7", "", "203.0.113.7"},
		{"ipv6 remote addr", 0, "[2001:db8::1]:443", "", "2001:db8::1"},
		{"xff ignored without trusted proxies", 0, "10.0.0.1:1234", "198.51.100.9", "10.0.0.1"},
		{"one trusted proxy uses rightmost entry", 1, "10.0.0.1:1234", "1.1.1.1, 198.51.100.9", "198.51.100.9"},
		{"two trusted proxies", 2, "10.0.0.1:1234", "198.51.100.9, 10.0.0.2", "198.51.100.9"},
		{"spoofed leftmost ignored", 1, "10.0.0.1:1234", "6.6.6.6, 198.51.100.9", "198.51.100.9"},
		{"more trusted proxies than entries falls back", 3, "10.0.0.1:1234", "198.51.100.9", "10.0.0.1"},
		{"garbage xff falls back", 1, "10.0.0.1:1234", "not-an-ip", "10.0.0.1"},
		{"unparseable remote addr", 0, "pipe", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/contact", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}

			got := NewClientIPResolver(tt.trusted).ClientIP(req)
			if got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewClientIPResolver_NegativeCount(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/contact", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.9")

	if got := NewClientIPResolver(-1).ClientIP(req); got != "10.0.0.1" {
		t.Errorf("expected negative count to behave like 0, got %q", got)
	}
}
