// Package grpcserver is the transport front-end: a TCP listener tuned for
// long-lived streams, the gRPC health service, and the Geyser service
// implementation that hands accepted streams to internal/subscribe.
package grpcserver

import (
	"context"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"geyserfanout/internal/logging"
	pb "geyserfanout/internal/proto/pb"
	"geyserfanout/internal/subscribe"
)

func init() {
	registerKlauspostGzip()
}

const (
	tcpKeepalive    = 20 * time.Second
	http2Keepalive  = 5 * time.Second
	serviceName     = "geyser.Geyser"
)

// Server is the gRPC front-end. Zero value is not usable; construct with
// New.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	health     *health.Server

	mu       sync.Mutex
	shutdown bool
}

// New binds addr with TCP nodelay and the keepalive parameters described in
// the network surface, and wires handler as the Subscribe implementation.
// Every accepted stream is assigned a trace ID via
// logging.StreamTraceInterceptor; a nil logger is replaced by the
// discarding test logger.
func New(addr string, handler *subscribe.Handler, logger *logging.Logger) (*Server, error) {
	lc := net.ListenConfig{KeepAlive: tcpKeepalive}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, err
	}
	if tcpLn, ok := ln.(*net.TCPListener); ok {
		ln = tcpNoDelayListener{tcpLn}
	}

	if logger == nil {
		logger = logging.NewTestLogger()
	}
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{Time: http2Keepalive}),
		grpc.StreamInterceptor(logging.StreamTraceInterceptor(logger)),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	pb.RegisterGeyserServer(grpcServer, &geyserService{handler: handler})

	return &Server{grpcServer: grpcServer, listener: ln, health: healthServer}, nil
}

// Serve blocks accepting streams until Shutdown is called or the listener
// errors.
func (s *Server) Serve() error {
	return s.grpcServer.Serve(s.listener)
}

// Shutdown is the one-shot signal: stop accepting new streams and let
// existing ones drain. The health service keeps reporting SERVING for the
// subscribe method throughout, per the network surface's invariant that
// health state never flaps during a graceful drain.
func (s *Server) Shutdown() {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return
	}
	s.shutdown = true
	s.mu.Unlock()

	s.grpcServer.GracefulStop()
}

// Addr reports the bound listen address, useful when addr was ":0".
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// geyserService adapts *subscribe.Handler to the generated GeyserServer
// interface.
type geyserService struct {
	pb.UnimplementedGeyserServer
	handler *subscribe.Handler
}

func (s *geyserService) Subscribe(stream pb.Geyser_SubscribeServer) error {
	return s.handler.Serve(stream)
}

// tcpNoDelayListener wraps a *net.TCPListener, disabling Nagle's algorithm
// on every accepted connection.
type tcpNoDelayListener struct {
	*net.TCPListener
}

func (l tcpNoDelayListener) Accept() (net.Conn, error) {
	conn, err := l.TCPListener.AcceptTCP()
	if err != nil {
		return nil, err
	}
	_ = conn.SetNoDelay(true)
	return conn, nil
}
