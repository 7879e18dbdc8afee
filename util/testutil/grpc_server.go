// Package testutil provides helpers for tests that need real network
// endpoints: an in-process Microgrid gRPC server, dynamic port allocation,
// and condition polling.
package testutil

import (
	"context"
	"fmt"
	"net"
	"sync"

	"google.golang.org/grpc"

	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
	"github.com/frequenz-floss/microgrid-client-go/util/logger"
)

// GrpcServer runs a Microgrid service handler on a real TCP socket, without
// production-level configuration. It is the test double for a microgrid
// gateway: the handler decides responses, latency and errors.
type GrpcServer struct {
	address  string
	handler  microgrid_pb.MicrogridServer
	mu       sync.Mutex
	running  bool
	logger   *logger.Logger
	server   *grpc.Server
	listener net.Listener
}

// NewGrpcServer creates a server for the given handler. Use an address of
// "localhost:0" (or GetFreeAddress) for dynamic port allocation.
func NewGrpcServer(address string, handler microgrid_pb.MicrogridServer) *GrpcServer {
	return &GrpcServer{
		address: address,
		handler: handler,
		logger:  logger.NewLogger("TestGrpcServer"),
	}
}

// Start binds the listener and serves in the background.
func (s *GrpcServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server already running on %s", s.address)
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %v", s.address, err)
	}

	s.server = grpc.NewServer()
	microgrid_pb.RegisterMicrogridServer(s.server, s.handler)

	s.listener = listener
	s.running = true

	// Capture the actual bound address (matters for :0 allocation)
	s.address = listener.Addr().String()

	log := s.logger
	server := s.server
	go func() {
		if err := server.Serve(listener); err != nil {
			log.Errorf("Server error: %v", err)
		}
	}()

	s.logger.Infof("Microgrid gRPC server started on %s", s.address)
	return nil
}

// Stop gracefully stops the server. Safe to call when not running.
func (s *GrpcServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	if s.server != nil {
		s.server.GracefulStop()
	}
	if s.listener != nil {
		s.listener.Close()
	}

	s.running = false
	s.logger.Infof("Microgrid gRPC server stopped on %s", s.address)
	return nil
}

// ForceStop stops the server without waiting for in-flight RPCs. Needed when
// a handler is deliberately stalled past the test's patience.
func (s *GrpcServer) ForceStop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if s.server != nil {
		s.server.Stop()
	}
	if s.listener != nil {
		s.listener.Close()
	}
	s.running = false
}

// IsRunning reports whether the server is serving.
func (s *GrpcServer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Address returns the address the server is listening on.
func (s *GrpcServer) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}
