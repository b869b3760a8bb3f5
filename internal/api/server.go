package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/evan-idocoding/zkit/httpx"
	"github.com/evan-idocoding/zkit/ops"

	"github.com/sanverite/countdownd/internal/core"
)

const (
	// DefaultAddress matches the port the original service listened on, so
	// existing clients keep working unmodified.
	DefaultAddress = "127.0.0.1:5000"

	// maxBodyBytes bounds legacy JSON bodies; they carry two small integers.
	maxBodyBytes = 4 << 10
)

// ServerOptions configures the HTTP server.
// Timeouts are conservative defaults suitable for a local control-plane server.
type ServerOptions struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Logger            *log.Logger
}

// Server hosts the two timer endpoint families over one engine.
type Server struct {
	http   *http.Server
	engine *core.Engine
	logger *log.Logger
	opts   ServerOptions
}

// NewServer constructs a new API server bound to the provided engine.
// The server does not start listening until Start is called.
func NewServer(engine *core.Engine, opts ServerOptions) *Server {
	if engine == nil {
		panic("api.NewServer: engine is nil")
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddress
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		engine: engine,
		logger: opts.Logger,
		opts:   opts,
	}

	mux := http.NewServeMux()
	mux.Handle("/healthz", ops.HealthzHandler(ops.WithHealthDefaultFormat(ops.FormatJSON)))

	// Modern family: parameters via query string.
	mux.HandleFunc("/api/timer/set", s.adjust(queryTotalSeconds, engine.Set))
	mux.HandleFunc("/api/timer/add", s.adjust(queryTotalSeconds, engine.Add))
	mux.HandleFunc("/api/timer/subtract", s.adjust(queryTotalSeconds, engine.Subtract))
	mux.HandleFunc("/api/timer/start", s.action(http.MethodPost, engine.Start))
	mux.HandleFunc("/api/timer/stop", s.action(http.MethodPost, engine.Stop))
	mux.HandleFunc("/api/timer/reset", s.action(http.MethodPost, engine.Reset))
	mux.HandleFunc("/api/timer/status", s.action(http.MethodGet, engine.Status))

	// Legacy family: same semantics via JSON body. "remove" is the legacy
	// spelling of subtract.
	mux.HandleFunc("/api/set", s.adjust(bodyTotalSeconds, engine.Set))
	mux.HandleFunc("/api/add", s.adjust(bodyTotalSeconds, engine.Add))
	mux.HandleFunc("/api/remove", s.adjust(bodyTotalSeconds, engine.Subtract))
	mux.HandleFunc("/api/start", s.action(http.MethodPost, engine.Start))
	mux.HandleFunc("/api/stop", s.action(http.MethodPost, engine.Stop))
	mux.HandleFunc("/api/reset", s.action(http.MethodPost, engine.Reset))
	mux.HandleFunc("/api/status", s.action(http.MethodGet, engine.Status))

	handler := httpx.Chain(
		httpx.Recover(),
		httpx.RequestID(),
		httpx.BodyLimit(maxBodyBytes),
		accessLog(opts.Logger),
	).Handler(mux)

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          opts.Logger,
		BaseContext: func(l net.Listener) context.Context {
			return context.Background()
		},
	}
	return s
}

// Start begins serving HTTP in a background goroutine.
// It returns immediately; use Stop for graceful shutdown.
func (s *Server) Start() {
	go func() {
		s.logger.Printf("api: listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("api: ListenAndServe error: %v", err)
		}
	}()
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	timeout := s.opts.ShutdownTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.http.Shutdown(ctx)
}

// action wires a parameterless engine operation to a route. These operations
// are total; the only failure mode is a wrong HTTP method.
func (s *Server) action(method string, op func() core.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, FromSnapshot(op()))
	}
}

// adjust wires a duration-taking engine operation to a route. parse extracts
// the total seconds from whichever wire format the family uses; the engine
// validates again so both families share one rejection path.
func (s *Server) adjust(parse func(*http.Request) (int, error), op func(int) (core.Snapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		total, err := parse(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		snap, err := op(total)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, core.ErrNegativeDuration) {
				status = http.StatusBadRequest
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, FromSnapshot(snap))
	}
}

// queryTotalSeconds reads optional minutes/seconds query parameters and
// combines them. Each parameter must be a non-negative integer.
func queryTotalSeconds(r *http.Request) (int, error) {
	mins, err := queryInt(r, "minutes")
	if err != nil {
		return 0, err
	}
	secs, err := queryInt(r, "seconds")
	if err != nil {
		return 0, err
	}
	return mins*60 + secs, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative", key)
	}
	return n, nil
}

// bodyTotalSeconds reads the legacy JSON body. Unknown fields are tolerated;
// legacy clients send extras this service never defined.
func bodyTotalSeconds(r *http.Request) (int, error) {
	var req DurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, fmt.Errorf("invalid JSON: %v", err)
	}
	if req.Minutes < 0 {
		return 0, fmt.Errorf("minutes must be non-negative")
	}
	if req.Seconds < 0 {
		return 0, fmt.Errorf("seconds must be non-negative")
	}
	return req.Minutes*60 + req.Seconds, nil
}

// accessLog logs method, path, duration and the request id assigned by the
// RequestID middleware. No CORS or auth because this is a local service.
func accessLog(logger *log.Logger) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			id, _ := httpx.RequestIDFromRequest(r)
			logger.Printf("%s %s %dms id=%s", r.Method, r.URL.Path, time.Since(start).Milliseconds(), id)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
