// Package handlers hosts the browser build: the page carrying the element
// IDs the controller binds to, the compiled controller itself, and a same-
// origin /assess that forwards to the assessment service.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/csg33k/palmwatch/internal/adapters/assessapi"
	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/schema"
	"github.com/csg33k/palmwatch/internal/templates"
)

const (
	staticPrefix = "/static/"
	wasmFile     = "palmwatch.wasm"
	loaderFile   = "wasm_exec.js"
)

type Handler struct {
	profile  controller.Profile
	options  map[string][]templates.Option
	static   http.Handler
	upstream *httputil.ReverseProxy
	logger   *slog.Logger
}

// New builds the page host for profile. staticDir holds palmwatch.wasm and
// wasm_exec.js; upstream is the assessment service base URL.
func New(profile controller.Profile, options map[string][]templates.Option, staticDir, upstream string, logger *slog.Logger) (*Handler, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, err
	}
	h := &Handler{
		profile: profile,
		options: options,
		static:  http.StripPrefix(staticPrefix, http.FileServer(http.Dir(staticDir))),
		logger:  logger,
	}
	h.upstream = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
			if r.Out.Header.Get(assessapi.RequestIDHeader) == "" {
				r.Out.Header.Set(assessapi.RequestIDHeader, uuid.NewString())
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			h.logger.Error("assess upstream failed", "upstream", target.String(), "err", err)
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	return h, nil
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.Handle("GET "+staticPrefix, h.static)
	mux.Handle("POST "+assessapi.Path, h.upstream)
	mux.HandleFunc("GET /schema/payload.json", h.payloadSchema)
	mux.HandleFunc("GET /schema/envelope.json", h.envelopeSchema)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Index(templates.PageConfig{
		Profile:   h.profile,
		Options:   h.options,
		WasmURL:   staticPrefix + wasmFile,
		LoaderURL: staticPrefix + loaderFile,
	}))
}

func (h *Handler) payloadSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, schema.Payload(h.profile))
}

func (h *Handler) envelopeSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, schema.Envelope())
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(b)
}
