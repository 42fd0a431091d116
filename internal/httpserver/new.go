package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"replypilot/internal/model"
	replyHTTP "replypilot/internal/reply/delivery/http"
	"replypilot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Reply domain
	replyHandler replyHTTP.Handler

	// Provider availability, reported by /health and /status
	providerStatus map[string]bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	ReplyHandler   replyHTTP.Handler
	ProviderStatus map[string]bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		replyHandler:   cfg.ReplyHandler,
		providerStatus: cfg.ProviderStatus,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Run maps the handlers and serves until the context is cancelled, then
// shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", srv.port),
		Handler:      srv.gin,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second, // provider calls can be slow
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	srv.l.Infof(ctx, "HTTP server listening on :%d (mode=%s)", srv.port, srv.mode)

	select {
	case <-ctx.Done():
		srv.l.Info(ctx, "shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
