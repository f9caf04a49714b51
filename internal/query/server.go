package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/udisondev/deathfx/internal/config"
	"github.com/udisondev/deathfx/internal/constants"
	"github.com/udisondev/deathfx/internal/protocol"
	"github.com/udisondev/deathfx/internal/query/packet"
)

const (
	defaultReadTimeout  = 120 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// Server accepts query connections and answers them with Handler.
type Server struct {
	cfg     config.Service
	handler *Handler

	readPool *BytePool
	sendPool *BytePool

	listener net.Listener
	mu       sync.Mutex
}

// NewServer creates a new query server.
func NewServer(cfg config.Service, handler *Handler) *Server {
	readSize := cfg.MaxPacketSize
	if readSize <= 0 || readSize > constants.MaxPacketSize {
		readSize = constants.DefaultReadBufSize
	}
	cfg.MaxPacketSize = readSize

	return &Server{
		cfg:      cfg,
		handler:  handler,
		readPool: NewBytePool(readSize),
		sendPool: NewBytePool(constants.DefaultSendBufSize),
	}
}

// Handler returns the server's packet handler.
func (s *Server) Handler() *Handler {
	return s.handler
}

// Addr returns the address the server is listening on.
// Returns nil if the server hasn't started yet.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close closes the listener.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Run listens on cfg.BindAddress:cfg.Port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.BindAddress, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is cancelled or ln is closed.
// Returns after every connection goroutine has finished.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	slog.Info("query server started", "address", ln.Addr())

	var wg sync.WaitGroup
	err := s.acceptLoop(ctx, &wg, ln)
	cancel()
	wg.Wait()

	slog.Info("query server stopped", "address", ln.Addr())
	return err
}

func (s *Server) acceptLoop(ctx context.Context, wg *sync.WaitGroup, ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				slog.Warn("accept timeout", "error", err)
				continue
			}
			return fmt.Errorf("accepting connection: %w", err)
		}

		if tcpConn, ok := conn.(*net.TCPConn); ok {
			if err := tcpConn.SetKeepAlive(true); err != nil {
				slog.Warn("set keepalive failed", "error", err)
			}
			if err := tcpConn.SetKeepAlivePeriod(30 * time.Second); err != nil {
				slog.Warn("set keepalive period failed", "error", err)
			}
		}

		wg.Go(func() {
			s.handleConnection(ctx, conn)
		})
	}
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	remote := conn.RemoteAddr().String()
	slog.Debug("query client connected", "remote", remote)

	readTimeout := s.cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	writeTimeout := s.cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	for {
		if err := s.handlePacket(ctx, conn, readTimeout, writeTimeout); err != nil {
			switch {
			case errors.Is(err, io.EOF), ctx.Err() != nil, errors.Is(err, net.ErrClosed):
				slog.Debug("query client disconnected", "remote", remote)
			default:
				slog.Warn("query connection error", "remote", remote, "error", err)
			}
			return
		}
	}
}

func (s *Server) handlePacket(ctx context.Context, conn net.Conn, readTimeout, writeTimeout time.Duration) error {
	readBuf := s.readPool.Get(s.cfg.MaxPacketSize)
	defer s.readPool.Put(readBuf)

	// Idle clients are disconnected
	if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return fmt.Errorf("setting read deadline: %w", err)
	}

	payload, err := protocol.ReadPacket(conn, readBuf)
	if err != nil {
		return fmt.Errorf("reading packet: %w", err)
	}

	w := packet.Get()
	defer w.Put()

	if err := s.handler.HandlePacket(ctx, payload, w); err != nil {
		return fmt.Errorf("handling packet: %w", err)
	}

	sendBuf := s.sendPool.Get(constants.PacketHeaderSize + w.Len())
	defer s.sendPool.Put(sendBuf)

	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("setting write deadline: %w", err)
	}
	if err := protocol.WritePayload(conn, sendBuf, w.Bytes()); err != nil {
		return fmt.Errorf("writing reply: %w", err)
	}
	return nil
}
