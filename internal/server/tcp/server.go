// Package tcp serves the ssmgr control protocol: one signed request and one
// response per connection.
package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/protocol"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/telemetry"
)

// Handler turns a verified payload into a response. *router.Router
// implements it.
type Handler interface {
	Handle(ctx context.Context, payload []byte) protocol.Response
}

type Server struct {
	address  string
	key      string
	handler  Handler
	clock    quartz.Clock
	logger   logging.Logger
	reporter telemetry.Reporter
}

func NewServer(address, key string, h Handler, clock quartz.Clock, l logging.Logger, r telemetry.Reporter) *Server {
	return &Server{
		address:  address,
		key:      key,
		handler:  h,
		clock:    clock,
		logger:   l.With("module", "tcp_server"),
		reporter: r,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}

	s.logger.Info(ctx, "Starting control server", "address", lis.Addr().String())
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is cancelled or the listener
// fails. Cancelling ctx also closes every open connection; Serve returns only
// after all connection handlers have finished.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		s.logger.Info(ctx, "Stopping control server...")
		_ = lis.Close()
	})
	defer stop()

	var (
		wg     sync.WaitGroup
		result error
	)
	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Error(ctx, "accept failed", "error", err)
				s.reporter.Report(ctx, err, map[string]string{"phase": "server:error"})
				result = fmt.Errorf("accept: %w", err)
				_ = lis.Close()
			}
			break
		}
		wg.Go(func() { s.serveConn(ctx, conn) })
	}

	wg.Wait()
	return result
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	logger := s.logger.With("conn_id", uuid.NewString(), "remote_addr", conn.RemoteAddr().String())

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()

	frame, err := readFrame(conn)
	if err != nil {
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			logger.Debug(ctx, "connection closed before a full frame", "error", err)
			return
		}
		logger.Warn(ctx, "read failed", "error", err)
		s.reporter.Report(ctx, err, map[string]string{"phase": "socket:error"})
		return
	}

	var resp protocol.Response
	payload, err := protocol.Verify(frame, s.key, s.clock.Now())
	if err != nil {
		logger.Warn(ctx, "rejected frame", "error", err)
		resp = protocol.Failure(protocol.CodeAuthFailed)
	} else {
		resp = s.handler.Handle(ctx, payload)
	}

	out, err := protocol.EncodeResponse(resp)
	if err != nil {
		logger.Error(ctx, "encode response", "error", err)
		s.reporter.Report(ctx, err, map[string]string{"phase": "socket:error"})
		return
	}

	if _, err := conn.Write(out); err != nil {
		logger.Warn(ctx, "write failed", "error", err)
		s.reporter.Report(ctx, err, map[string]string{"phase": "socket:error"})
		return
	}

	if hc, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = hc.CloseWrite()
	}
	logger.Debug(ctx, "response written", "code", resp.Code.String())
}

// readFrame accumulates bytes until a complete request frame is available.
// Nothing is parsed before that.
func readFrame(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, 512)
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if frame, ok := protocol.SplitFrame(buf); ok {
			return frame, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return nil, fmt.Errorf("incomplete frame (%d bytes): %w", len(buf), io.ErrUnexpectedEOF)
			}
			return nil, err
		}
	}
}
