package toysqlwire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tuannm99/toysql/internal/engine"
	"github.com/tuannm99/toysql/internal/sql/executor"
	"github.com/tuannm99/toysql/internal/sql/parser"
)

// Server exposes one shared database over TCP. Requests from all
// connections are serialized: one batch runs at a time.
type Server struct {
	mu   sync.Mutex
	ex   *executor.Executor
	auth *AuthConfig
	log  *slog.Logger

	wg sync.WaitGroup
}

func NewServer(ex *executor.Executor, auth *AuthConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{ex: ex, auth: auth, log: logger}
}

// Serve accepts connections on ln until ctx is done, then closes ln and
// every open connection and waits for their handlers to return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()
	defer s.wg.Wait()

	s.log.Info("toysql server listening", "addr", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Warn("accept", "err", err)
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(ctx, conn)
		}()
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	st := &connState{session: uuid.NewString()}
	log := s.log.With("session", st.session, "remote", conn.RemoteAddr().String())
	log.Info("client connected")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = conn.Close()
	}()

	for {
		var req ExecuteRequest
		if err := ReadFrame(conn, &req); err != nil {
			// Client closed or bad frame.
			log.Info("client disconnected", "err", err)
			return
		}

		resp := s.handle(st, req)
		if err := WriteFrame(conn, resp); err != nil {
			log.Warn("write response", "err", err)
			return
		}
	}
}

func (s *Server) handle(st *connState, req ExecuteRequest) ExecuteResponse {
	resp := ExecuteResponse{ID: req.ID}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(st, req.Token, time.Now()); err != nil {
		resp.Error = err.Error()
		return resp
	}

	switch req.Meta {
	case "":
	case MetaTables:
		tables, err := s.ex.ListTables()
		if err != nil {
			resp.Error = err.Error()
		}
		resp.Tables = tables
		return resp
	default:
		resp.Error = fmt.Sprintf("toysqlwire: unknown meta command %q", req.Meta)
		return resp
	}

	results, err := s.ex.ExecSQL(req.SQL)
	// Select results are lazy; drain them while the lock is held.
	resp.Results = executor.CollectAll(results)
	if err != nil {
		resp.Error = err.Error()
		var d *parser.Diagnostic
		if errors.As(err, &d) {
			resp.Diagnostic = d
		}
		s.log.Debug("request failed", "session", st.session, "id", req.ID, "err", err)
	}
	return resp
}

type ServerConfig struct {
	Addr               string
	StatementCacheSize int
	Auth               *AuthConfig
	Logger             *slog.Logger
}

// Run starts an in-memory database and serves it on sc.Addr until ctx is done.
func Run(ctx context.Context, sc ServerConfig) error {
	logger := sc.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db := engine.NewDatabase(logger)
	defer func() { _ = db.Close() }()

	ex, err := executor.NewExecutor(db, executor.Options{
		CacheSize: sc.StatementCacheSize,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", sc.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	return NewServer(ex, sc.Auth, logger).Serve(ctx, ln)
}
