package inbound

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/crewjam/csp"
	"github.com/shandysiswandi/portfolio/internal/pkg/goerror"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
)

const homeTemplate = "index.html"

var contentSecurityPolicy = csp.Header{
	DefaultSrc: []string{"'self'"},
	ScriptSrc:  []string{"'self'"},
	StyleSrc:   []string{"'self'"},
	ImgSrc:     []string{"'self'", "data:"},
	ConnectSrc: []string{"'self'"},
}.String()

type HTTPEndpoint struct {
	uc     uc
	router *router.Router
	pages  *template.Template
}

// Home renders the portfolio home page.
// @Summary Home page
// @Tags Pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} router.ErrorResponse "Template failure"
// @Router / [get]
func (h *HTTPEndpoint) Home(w http.ResponseWriter, r *http.Request) {
	data := h.uc.Home(r.Context())

	// Render fully before writing so a template error still yields a clean 500.
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, homeTemplate, data); err != nil {
		slog.ErrorContext(r.Context(), "failed to render home page", "error", err)
		h.router.Fail(w, r, goerror.NewServer(err))
		return
	}

	w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // client went away
	buf.WriteTo(w)
}

// HomeHead answers uptime monitors with an empty 200.
// @Summary Home page probe
// @Tags Pages
// @Success 200 "OK"
// @Router / [head]
func (h *HTTPEndpoint) HomeHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
