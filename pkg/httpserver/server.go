package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Server runs one http.Server with graceful shutdown. Request contexts are
// cancelled as soon as shutdown begins so long-lived streams return promptly.
type Server struct {
	cfg     Config
	log     *slog.Logger
	onStart []func()
	onStop  []func()

	mu         sync.Mutex
	srv        *http.Server
	cancelBase context.CancelFunc
	stopOnce   sync.Once
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for server lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// OnStart registers fn to run right before the server starts listening.
func OnStart(fn func()) Option {
	return func(s *Server) { s.onStart = append(s.onStart, fn) }
}

// OnStop registers fn to run once the server has shut down.
func OnStop(fn func()) Option {
	return func(s *Server) { s.onStop = append(s.onStop, fn) }
}

// New creates a server for cfg. An empty Addr or ShutdownTimeout takes the default.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg: cfg.withDefaults(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves handler and blocks until ctx is cancelled, SIGINT/SIGTERM is
// received, or the listener fails. A server runs at most once.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(ctx))

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		cancelBase()
		return errors.Join(ErrStart, ErrAlreadyStarted)
	}
	s.srv = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	s.cancelBase = cancelBase
	srv := s.srv
	s.mu.Unlock()

	for _, fn := range s.onStart {
		fn()
	}
	s.log.Info("HTTP server starting", slog.String("addr", s.cfg.Addr))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var err error
	select {
	case <-ctx.Done():
		err = s.stopAndWait(errCh)
	case <-sig:
		err = s.stopAndWait(errCh)
	case err = <-errCh:
		cancelBase()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

func (s *Server) stopAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.log.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
	return <-errCh
}

// Shutdown stops the server gracefully within the configured timeout.
// It is safe to call repeatedly and before Run.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv, cancelBase := s.srv, s.cancelBase
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.stopOnce.Do(func() {
		cancelBase()

		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)

		for _, fn := range s.onStop {
			fn()
		}
		s.log.Info("HTTP server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
