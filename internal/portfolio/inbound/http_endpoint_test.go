package inbound

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
	"github.com/shandysiswandi/portfolio/internal/portfolio/entity"
	"github.com/shandysiswandi/portfolio/internal/portfolio/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type stubUsecase struct{ out usecase.HomeOutput }

func (s stubUsecase) Home(context.Context) usecase.HomeOutput { return s.out }

var staticFS = fstest.MapFS{
	"css/site.css": {Data: []byte("body{}")},
}

func newHandler(t *testing.T, page string) http.Handler {
	t.Helper()

	pages, err := template.New("").ParseFS(fstest.MapFS{"index.html": {Data: []byte(page)}}, "*.html")
	require.NoError(t, err)

	r := router.NewRouter(router.Config{UUID: fixedID("cid"), Instrument: instrument.NewNoop()})
	RegisterHTTPEndpoint(r, stubUsecase{out: usecase.HomeOutput{
		SiteName:    "Ana <Dev>",
		Version:     "1.0.0",
		Year:        2026,
		Credentials: []entity.Credential{{Title: "Go", Issuer: "Alura", Year: 2023}},
		Educations:  []entity.Education{{Course: "ADS", Institution: "UNIP", Period: "2021 - 2023"}},
	}}, pages, staticFS)

	return r
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHTTPEndpoint_Home(t *testing.T) {
	h := newHandler(t, `<h1>{{ .SiteName }}</h1>{{ range .Credentials }}<li>{{ .Title }}</li>{{ end }}<footer>{{ .Year }} v{{ .Version }}</footer>`)

	rec := do(h, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Contains(t, rec.Body.String(), "<h1>Ana &lt;Dev&gt;</h1>")
	assert.Contains(t, rec.Body.String(), "<li>Go</li>")
	assert.Contains(t, rec.Body.String(), "2026 v1.0.0")
}

func TestHTTPEndpoint_HomeTemplateFailure(t *testing.T) {
	h := newHandler(t, `{{ .Unknown }}`)

	rec := do(h, http.MethodGet, "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestHTTPEndpoint_HomeHead(t *testing.T) {
	h := newHandler(t, `<p>{{ .SiteName }}</p>`)

	rec := do(h, http.MethodHead, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPEndpoint_Static(t *testing.T) {
	h := newHandler(t, `<p></p>`)

	rec := do(h, http.MethodGet, "/static/css/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	rec = do(h, http.MethodGet, "/static/nope.js")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
