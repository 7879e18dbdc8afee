// Package simulator implements an in-memory Microgrid control service for
// development and testing. Responses are served from configurable fixtures,
// and per-RPC latency and errors can be injected to exercise client behavior
// against slow or failing gateways.
package simulator

import (
	"context"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
	"github.com/frequenz-floss/microgrid-client-go/util/logger"
	"github.com/frequenz-floss/microgrid-client-go/util/metrics"
)

// PowerCommand records one SetPowerActive request handled by the servicer.
type PowerCommand struct {
	ComponentID uint64
	PowerW      int64
	ReceivedAt  time.Time
}

// Servicer implements the Microgrid gRPC service against in-memory state.
// All methods are safe for concurrent use.
type Servicer struct {
	microgrid_pb.UnimplementedMicrogridServer

	logger *logger.Logger

	mu          sync.Mutex
	components  []*microgrid_pb.Component
	connections []*microgrid_pb.Connection
	delays      map[string]time.Duration
	failures    map[string]error
	commands    []PowerCommand
}

// NewServicer creates a Servicer with no components and no injected behavior.
func NewServicer() *Servicer {
	return &Servicer{
		logger:   logger.NewLogger("MicrogridSimulator"),
		delays:   make(map[string]time.Duration),
		failures: make(map[string]error),
	}
}

// SetComponents replaces the component fixtures.
func (s *Servicer) SetComponents(components []*microgrid_pb.Component) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = components
}

// SetConnections replaces the connection fixtures.
func (s *Servicer) SetConnections(connections []*microgrid_pb.Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections = connections
}

// SetDelay makes the named method ("ListComponents", "ListConnections",
// "SetPowerActive") sleep for d before responding. A zero duration removes
// the delay.
func (s *Servicer) SetDelay(method string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d <= 0 {
		delete(s.delays, method)
		return
	}
	s.delays[method] = d
}

// FailWith makes the named method return err instead of a response.
// A nil err removes the injected failure.
func (s *Servicer) FailWith(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, method)
		return
	}
	s.failures[method] = err
}

// PowerCommands returns a copy of all recorded power commands, oldest first.
func (s *Servicer) PowerCommands() []PowerCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PowerCommand, len(s.commands))
	copy(out, s.commands)
	return out
}

// LastPowerCommand returns the most recent power command, if any.
func (s *Servicer) LastPowerCommand() (PowerCommand, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.commands) == 0 {
		return PowerCommand{}, false
	}
	return s.commands[len(s.commands)-1], true
}

// before applies the injected delay and failure for a method. The delay is
// applied even when a failure is injected, so a slow-then-failing gateway can
// be simulated with one servicer.
func (s *Servicer) before(method string) error {
	s.mu.Lock()
	delay := s.delays[method]
	failure := s.failures[method]
	s.mu.Unlock()

	metrics.RecordSimulatorRequest(method)

	if delay > 0 {
		time.Sleep(delay)
	}
	return failure
}

// ListComponents returns the configured components matching the filter.
func (s *Servicer) ListComponents(ctx context.Context, req *microgrid_pb.ComponentFilter) (*microgrid_pb.ComponentList, error) {
	if err := s.before("ListComponents"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*microgrid_pb.Component
	for _, comp := range s.components {
		if componentMatches(req, comp) {
			matched = append(matched, comp)
		}
	}
	return &microgrid_pb.ComponentList{Components: matched}, nil
}

// ListConnections returns the configured connections matching the filter.
func (s *Servicer) ListConnections(ctx context.Context, req *microgrid_pb.ConnectionFilter) (*microgrid_pb.ConnectionList, error) {
	if err := s.before("ListConnections"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*microgrid_pb.Connection
	for _, conn := range s.connections {
		if connectionMatches(req, conn) {
			matched = append(matched, conn)
		}
	}
	return &microgrid_pb.ConnectionList{Connections: matched}, nil
}

// SetPowerActive records the requested power level and returns Empty.
func (s *Servicer) SetPowerActive(ctx context.Context, req *microgrid_pb.PowerLevelParam) (*emptypb.Empty, error) {
	if err := s.before("SetPowerActive"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.commands = append(s.commands, PowerCommand{
		ComponentID: req.ComponentId,
		PowerW:      req.PowerW,
		ReceivedAt:  time.Now(),
	})
	s.mu.Unlock()

	s.logger.Debugf("SetPowerActive: component=%d power_w=%d", req.ComponentId, req.PowerW)
	return &emptypb.Empty{}, nil
}

func componentMatches(filter *microgrid_pb.ComponentFilter, comp *microgrid_pb.Component) bool {
	if len(filter.GetIds()) > 0 && !containsUint64(filter.GetIds(), comp.GetId()) {
		return false
	}
	if len(filter.GetCategories()) > 0 {
		found := false
		for _, cat := range filter.GetCategories() {
			if cat == comp.GetCategory() {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func connectionMatches(filter *microgrid_pb.ConnectionFilter, conn *microgrid_pb.Connection) bool {
	if len(filter.GetStarts()) > 0 && !containsUint64(filter.GetStarts(), conn.GetStart()) {
		return false
	}
	if len(filter.GetEnds()) > 0 && !containsUint64(filter.GetEnds(), conn.GetEnd()) {
		return false
	}
	return true
}

func containsUint64(list []uint64, v uint64) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
