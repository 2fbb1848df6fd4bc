// Package httpserver runs an http.Handler until its context is cancelled.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	name    string
	address string
	handler http.Handler
	logger  logging.Logger
}

func New(name, address string, h http.Handler, l logging.Logger) *Server {
	return &Server{
		name:    name,
		address: address,
		handler: h,
		logger:  l.With("module", name),
	}
}

func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("%s listen %s: %w", s.name, s.address, err)
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis and shuts down gracefully once ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stop := context.AfterFunc(ctx, func() {
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})
	defer stop()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return nil
}
