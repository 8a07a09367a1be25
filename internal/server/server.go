package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"nhl-feed-service/internal/config"
	httpserver "nhl-feed-service/internal/http"
	"nhl-feed-service/internal/http/handlers"
	"nhl-feed-service/internal/logging"
	"nhl-feed-service/internal/metrics"
	"nhl-feed-service/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.FeedProvider
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	listenErrs    chan error
}

// New constructs a server backed by the MySportsFeeds client.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.FeedProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.FeedProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	wrapped := newProviderFactory(logger, recorder).build(cfg, provider)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      wrapped,
		httpServer:    buildHTTPServer(cfg, wrapped, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		listenErrs:    make(chan error, 1),
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		listenErrs: make(chan error, 1),
	}
}

func buildHTTPServer(cfg config.Config, provider providers.FeedProvider, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(provider, logger, recorder)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
// It returns the listen error when the API server could not serve.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(ctx, s.logger, "shutdown signal received")

	s.gracefulShutdown()

	select {
	case err := <-s.listenErrs:
		return fmt.Errorf("http server: %w", err)
	default:
		return nil
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		select {
		case s.listenErrs <- err:
		default:
		}
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(shutdownCtx, s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(shutdownCtx, s.logger, "metrics server shutdown failed", err)
		}
	}

	// Exporters flush last so requests drained above are still counted.
	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(shutdownCtx, s.logger, "metrics shutdown failed", err)
		}
	}

	logging.Info(shutdownCtx, s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(context.Background(), logger, "metrics setup failed, continuing without telemetry", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	ctx := context.Background()
	go func() {
		logging.Info(ctx, logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(ctx, logger, name+" server failed", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
