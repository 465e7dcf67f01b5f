// Package server exposes the composition engine over HTTP.
//
// Routes:
//
//	GET  /healthz        liveness check
//	POST /compose        compose a glyph, JSON {components, layout, name}
//	GET  /gen/{name}     serve a stored glyph (?format=png|pdf to convert)
//
// Stored glyphs are re-sanitized on every read, so documents written by
// older or external tools are served with a single namespace declaration.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/glyphsmith/pkg/buildinfo"
	"github.com/matzehuels/glyphsmith/pkg/compose"
	"github.com/matzehuels/glyphsmith/pkg/errors"
	"github.com/matzehuels/glyphsmith/pkg/observability"
	"github.com/matzehuels/glyphsmith/pkg/render"
	"github.com/matzehuels/glyphsmith/pkg/store"
)

// SVGContentType is the media type of served glyphs.
const SVGContentType = "image/svg+xml"

const maxRequestBody = 64 << 10

// Composer builds glyphs. *compose.Engine implements it.
type Composer interface {
	Compose(ctx context.Context, req compose.Request) (*compose.Result, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// Server is the HTTP front end of the engine.
type Server struct {
	composer Composer
	store    store.Store
	logger   *log.Logger
	router   chi.Router
}

// New creates a server composing with c and serving glyphs from st.
// st is wrapped with store.WithSanitize.
func New(c Composer, st store.Store, opts ...Option) *Server {
	s := &Server{
		composer: c,
		store:    store.WithSanitize(st),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/compose", s.handleCompose)
	r.Get("/gen/{name}", s.handleGlyph)
	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("Serving glyphs", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

// composeRequest is the POST /compose body.
type composeRequest struct {
	Components []string `json:"components"`
	Layout     string   `json:"layout"`
	Name       string   `json:"name"`
}

// composeResponse is the POST /compose reply.
type composeResponse struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Used     []string `json:"used"`
	Nested   bool     `json:"nested"`
	Degraded bool     `json:"degraded"`
}

func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	var body composeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidRequest, err, "decode request body"))
		return
	}

	req := compose.Request{Components: body.Components, Name: body.Name}
	if body.Layout != "" {
		kind, err := parseLayout(body.Layout)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		req.Layout = kind
	}

	res, err := s.composer.Compose(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if res.Degraded {
		s.logger.Warn("Served degraded glyph", "name", res.Name, "requested", len(req.Components), "used", len(res.Used))
	}

	writeJSON(w, http.StatusCreated, composeResponse{
		Name:     res.Name,
		URL:      "/gen/" + url.PathEscape(res.Name),
		Used:     res.Used,
		Nested:   res.Nested,
		Degraded: res.Degraded,
	})
}

func (s *Server) handleGlyph(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidName, err, "glyph name"))
		return
	}

	format := render.FormatSVG
	if f := r.URL.Query().Get("format"); f != "" {
		if format, err = render.ParseFormat(f); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	data, err := s.store.Get(r.Context(), name)
	observability.Store().OnGlyphServed(r.Context(), name, err == nil)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := SVGContentType
	if format != render.FormatSVG {
		if data, err = render.Convert(r.Context(), data, format, 1); err != nil {
			s.writeError(w, r, err)
			return
		}
		contentType = "image/png"
		if format == render.FormatPDF {
			contentType = "application/pdf"
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
