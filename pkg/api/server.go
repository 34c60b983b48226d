package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/gridfit/pkg/buildinfo"
	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/observability"
	"github.com/matzehuels/gridfit/pkg/placement"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// maxBodyBytes bounds placement request bodies.
	maxBodyBytes = 1 << 20

	// maxRequestIDLen bounds client-supplied request IDs.
	maxRequestIDLen = 128
)

// Server holds the placement configuration shared by all requests.
// It is safe for concurrent use.
type Server struct {
	placer  *placement.Placer
	catalog dashboard.Catalog
	logger  *log.Logger
}

// NewServer creates a server. A nil placer uses the placement defaults, a
// nil catalog the built-in catalog and a nil logger log.Default().
func NewServer(p *placement.Placer, catalog dashboard.Catalog, logger *log.Logger) *Server {
	if p == nil {
		p = placement.New()
	}
	if catalog == nil {
		catalog = dashboard.DefaultCatalog()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{placer: p, catalog: catalog, logger: logger}
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/placements", s.handlePlace)
		r.Get("/catalog", s.handleCatalog)
		r.Get("/catalog/{type}", s.handleCatalogType)
	})
	return r
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// RequestIDFromContext returns the request ID set by the server middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID attaches a request ID to the context and the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// logRequests logs each request and reports it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := RequestIDFromContext(r.Context())
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path, id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, id, status, elapsed)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", elapsed.Round(time.Microsecond),
			"request_id", id)
	})
}

// recoverPanics answers a panicking handler with an INTERNAL_ERROR body.
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.logger.Error("handler panic",
				"panic", rec,
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()),
				"stack", string(debug.Stack()))
			writeError(w, errors.New(errors.ErrCodeInternal, "internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Handlers
// =============================================================================

// PlaceRequest is the body of POST /v1/placements.
type PlaceRequest struct {
	Widgets []dashboard.Widget `json:"widgets"`
	Type    string             `json:"type,omitempty"`
	Size    *placement.Size    `json:"size,omitempty"`
	Columns int                `json:"columns,omitempty"`
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req PlaceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	layout := dashboard.Layout{Columns: req.Columns, Widgets: req.Widgets}
	if err := layout.Validate(); err != nil {
		writeError(w, err)
		return
	}

	size, err := s.resolveSize(req)
	if err != nil {
		writeError(w, err)
		return
	}

	p := s.placer
	if req.Columns > 0 && req.Columns != p.Columns() {
		p = placement.New(placement.WithOptions(p.Options()), placement.WithColumns(req.Columns))
	}

	start := time.Now()
	res := p.FindBestPosition(layout.Occupants(), size)
	observability.Placement().OnPlacement(r.Context(), observability.PlacementEvent{
		Source:       "api",
		Width:        size.W,
		Height:       size.H,
		Widgets:      len(layout.Widgets),
		Alternatives: len(res.Alternatives),
		X:            res.X,
		Y:            res.Y,
		Fallback:     res.Fallback,
		Duration:     time.Since(start),
	})
	s.logger.Debug("placed widget",
		"size", size,
		"x", res.X,
		"y", res.Y,
		"fallback", res.Fallback,
		"request_id", RequestIDFromContext(r.Context()))

	writeJSON(w, http.StatusOK, res)
}

// resolveSize picks the widget size from the request's type and size.
func (s *Server) resolveSize(req PlaceRequest) (placement.Size, error) {
	if req.Type == "" {
		if req.Size == nil {
			return placement.Size{}, errors.New(errors.ErrCodeInvalidInput, "either type or size is required")
		}
		if req.Size.W < 1 || req.Size.H < 1 {
			return placement.Size{}, errors.New(errors.ErrCodeInvalidSize, "size must be at least 1x1, got %v", *req.Size)
		}
		return *req.Size, nil
	}

	def, err := s.catalog.Lookup(req.Type)
	if err != nil {
		return placement.Size{}, err
	}
	if req.Size != nil {
		return def.Clamp(*req.Size), nil
	}
	return def.DefaultSize(), nil
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"widgets": s.catalog.Definitions()})
}

func (s *Server) handleCatalogType(w http.ResponseWriter, r *http.Request) {
	def, err := s.catalog.Lookup(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	build := buildinfo.Get()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": build.Version,
		"commit":  build.Commit,
		"columns": s.placer.Columns(),
	})
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(err), errorBody{Error: errorDetail{Code: code, Message: errors.UserMessage(err)}})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.GetCode(err) == "", errors.Is(err, errors.ErrCodeInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
