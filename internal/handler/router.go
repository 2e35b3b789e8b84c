package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sterlinglegal/backend/internal/requestid"
)

// NewRouter wires middleware and routes. staticDir, when set, serves the
// marketing site from the same origin.
func NewRouter(h *Handler, contact *ContactHandler, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(RequestLogger)
	r.Use(SecurityHeaders)
	r.Use(h.CORS)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})

	// CSP/HSTS は API のみ。静的サイトには付けない
	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders)

		r.Get("/api/health", h.Health)

		// 既存フォームの action="api/contact.php" もそのまま受ける
		r.HandleFunc("/api/contact", contact.Submit)
		r.HandleFunc("/api/contact.php", contact.Submit)
	})

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
