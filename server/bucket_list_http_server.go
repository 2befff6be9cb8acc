package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type BucketListHttpServer struct {
	addr      string
	router    *Router
	muxRouter *mux.Router
	logger    *zap.Logger
}

func NewBucketListHttpServer(addr string, router *Router, muxRouter *mux.Router, logger *zap.Logger) *BucketListHttpServer {
	return &BucketListHttpServer{
		addr:      addr,
		router:    router,
		muxRouter: muxRouter,
		logger:    logger.Named("BucketListHttpServer"),
	}
}

// Handler is the routed mux wrapped in CORS.
func (s *BucketListHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
	)
	return corsHandler(s.muxRouter)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *BucketListHttpServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exiting")
	return nil
}
