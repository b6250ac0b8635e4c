package inbound

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/shandysiswandi/portfolio/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc, pages *template.Template, static fs.FS) {
	end := &HTTPEndpoint{uc: uc, router: r, pages: pages}

	r.Raw(http.MethodGet, "/", http.HandlerFunc(end.Home))
	r.Raw(http.MethodHead, "/", http.HandlerFunc(end.HomeHead))
	r.Static("/static", static)
}
