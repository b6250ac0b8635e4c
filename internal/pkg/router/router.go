package router

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/portfolio/internal/pkg/config"
	"github.com/shandysiswandi/portfolio/internal/pkg/goerror"
	"github.com/shandysiswandi/portfolio/internal/pkg/instrument"
	"github.com/shandysiswandi/portfolio/internal/pkg/uid"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Por favor, preencha todos os campos."`
}

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded as is) or an error.
type Handler func(r *Request) (any, error)

// Config holds dependencies required to build a Router.
type Config struct {
	// Config provides runtime configuration values.
	Config config.Config
	// UUID generates request correlation IDs.
	UUID uid.StringID
	// Instrument provides tracing and metrics helpers.
	Instrument instrument.Instrumentation
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr         *httprouter.Router
	errorCodec func(ctx context.Context, w http.ResponseWriter, err error)
	encoder    func(ctx context.Context, w http.ResponseWriter, resp any)
	mws        []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(cfg Config) *Router {
	ins := cfg.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	ro := &Router{
		errorCodec: encodeError,
		encoder:    encodeOK,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareIP,
			middlewareCorrelationID(cfg.UUID),
			middlewareObservability(cfg.Config, ins),
		},
	}

	ro.hr = &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound: Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ro.fail(w, r, goerror.NewNotFound("Not Found"))
		}), ro.mws...),
		MethodNotAllowed: Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ro.fail(w, r, goerror.NewMethodNotAllowed("Method Not Allowed"))
		}), ro.mws...),
	}

	return ro
}

func encodeError(_ context.Context, w http.ResponseWriter, err error) {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		writeJSON(w, ErrorResponse{Detail: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, ErrorResponse{Detail: gerr.Msg()}, gerr.StatusCode())
}

func encodeOK(_ context.Context, w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface{ StatusCode() int }); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, resp, code)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// Raw registers an endpoint that writes directly to the response writer,
// for HTML pages and empty probe responses.
func (r *Router) Raw(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, append(r.mws, mws...)...))
}

// Static serves files from fsys under prefix (for example "/static").
func (r *Router) Static(prefix string, fsys fs.FS, mws ...Middleware) {
	prefix = strings.TrimSuffix(prefix, "/")
	files := http.FileServer(http.FS(fsys))

	r.Raw(http.MethodGet, prefix+"/*filepath", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		req2 := req.Clone(req.Context())
		req2.URL.Path = httprouter.ParamsFromContext(req.Context()).ByName("filepath")
		files.ServeHTTP(w, req2)
	}), mws...)
}

// Fail writes err with the router's error codec. It is meant for Raw handlers.
func (r *Router) Fail(w http.ResponseWriter, req *http.Request, err error) {
	r.fail(w, req, err)
}

func (r *Router) fail(w http.ResponseWriter, req *http.Request, err error) {
	if setter, ok := w.(interface{ SetError(error) }); ok {
		setter.SetError(err)
	}
	r.errorCodec(req.Context(), w, err)
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.Raw(method, path, http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(&Request{Request: re})
		if err != nil {
			r.fail(w, re, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), mws...)
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
