package dev

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/errors"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Builder rebuilds the output directory.
	Builder Builder

	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry collects dev server metrics. Defaults to a fresh registry.
	Registry *prometheus.Registry

	// OnBuildComplete is called after every build.
	OnBuildComplete func(result BuildResult)

	// OnReload is called when browsers are told to reload.
	OnReload func(clients int)
}

// Server is the development server.
type Server struct {
	config       *config.Config
	options      ServerOptions
	logger       *slog.Logger
	compiler     *Compiler
	watcher      *Watcher
	reloadServer *ReloadServer
	registry     *prometheus.Registry
	builds       *prometheus.CounterVec
	buildTime    prometheus.Histogram
	handler      http.Handler

	mu         sync.Mutex
	running    bool
	httpServer *http.Server
	cancel     context.CancelFunc
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := options.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		config:   cfg,
		options:  options,
		logger:   logger.With("component", "dev"),
		compiler: NewCompiler(options.Builder),
		watcher: NewWatcher(WatcherConfig{
			Paths:    CollectWatchPaths(cfg),
			Ignore:   append(append([]string{}, DefaultIgnore...), cfg.Dev.Ignore...),
			Debounce: 100 * time.Millisecond,
		}),
		registry: reg,
	}
	if cfg.HotReloadEnabled() {
		s.reloadServer = NewReloadServer()
	}

	factory := promauto.With(reg)
	s.builds = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "domkit",
		Subsystem: "dev",
		Name:      "builds_total",
		Help:      "Builds run by the dev server, by result.",
	}, []string{"result"})
	s.buildTime = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: "domkit",
		Subsystem: "dev",
		Name:      "build_duration_seconds",
		Help:      "Time spent building the site.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	})
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "domkit",
		Subsystem: "dev",
		Name:      "reload_clients",
		Help:      "Browsers connected for live reload.",
	}, func() float64 {
		if s.reloadServer == nil {
			return 0
		}
		return float64(s.reloadServer.ClientCount())
	})

	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler serving the output directory and the dev
// endpoints.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	if s.reloadServer != nil {
		r.Get(ReloadPath, s.reloadServer.HandleWebSocket)
	}
	r.Get(ReloadScriptPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		_, _ = w.Write([]byte(ClientScript))
	})
	r.Get("/_domkit/status", s.handleStatus)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle("/*", http.FileServer(http.Dir(s.config.OutputPath())))
	return r
}

type status struct {
	Running   bool        `json:"running"`
	HotReload bool        `json:"hotReload"`
	Clients   int         `json:"clients"`
	LastBuild BuildResult `json:"lastBuild"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	st := status{
		Running:   s.IsRunning(),
		HotReload: s.reloadServer != nil,
		LastBuild: s.compiler.Last(),
	}
	if s.reloadServer != nil {
		st.Clients = s.reloadServer.ClientCount()
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}

// Start builds the site, starts watching and serves until ctx is cancelled
// or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	s.mu.Unlock()
	defer s.Stop()

	s.rebuild(ctx)

	ln, err := net.Listen("tcp", s.config.DevAddress())
	if err != nil {
		return errors.New("E141").
			WithDetail(err.Error()).
			Wrap(err)
	}

	srv := &http.Server{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	if s.reloadServer != nil {
		s.watcher.OnChange(func(changes []Change) { s.handleChanges(ctx, changes) })
		go func() {
			if err := s.watcher.Run(ctx); err != nil {
				s.logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	s.logger.Info("dev server listening", "url", s.config.DevURL(), "hotReload", s.reloadServer != nil)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.New("E142").Wrap(err)
	}
}

// Stop shuts the server down. It is safe to call more than once.
func (s *Server) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	srv := s.httpServer
	s.httpServer = nil
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}
	if srv != nil {
		ctx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = srv.Shutdown(ctx)
	}
}

// IsRunning reports whether Start is in progress.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// handleChanges rebuilds for a batch of changes. Changes inside the output
// directory come from the build itself and are skipped.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	relevant := changes[:0:0]
	for _, c := range changes {
		if isWithinDir(c.Path, s.config.OutputPath()) {
			continue
		}
		relevant = append(relevant, c)
	}
	if len(relevant) == 0 {
		return
	}

	s.logger.Info("change detected", "files", len(relevant), "first", relevant[0].Path, "type", relevant[0].Type.String())
	if s.rebuild(ctx).Success {
		s.notifyReload()
	}
}

func (s *Server) rebuild(ctx context.Context) BuildResult {
	result := s.compiler.Build(ctx)
	s.buildTime.Observe(result.Duration.Seconds())

	if result.Success {
		s.builds.WithLabelValues("success").Inc()
		s.logger.Info("build complete", "pages", result.Pages, "duration", result.Duration)
		s.clearReloadError()
	} else {
		s.builds.WithLabelValues("failure").Inc()
		s.logger.Error("build failed", "error", result.Error)
		s.notifyError(result.Output)
	}

	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result)
	}
	return result
}

func (s *Server) notifyReload() {
	if s.reloadServer == nil {
		s.logger.Debug("hot reload disabled; rebuild complete")
		return
	}

	s.reloadServer.NotifyReload()
	n := s.reloadServer.ClientCount()
	if s.options.OnReload != nil {
		s.options.OnReload(n)
	}
	s.logger.Debug("reloaded browsers", "clients", n)
}

func (s *Server) notifyError(errMsg string) {
	if s.reloadServer != nil {
		s.reloadServer.NotifyError(errMsg)
	}
}

func (s *Server) clearReloadError() {
	if s.reloadServer != nil {
		s.reloadServer.ClearError()
	}
}
