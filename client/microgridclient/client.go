// Package microgridclient provides a client for the Microgrid control
// service. Every call runs under a deadline: the caller's context deadline
// when present, otherwise the client's configured default call timeout. A
// call that exceeds its deadline fails with a typed timeout error while the
// underlying connection stays usable for subsequent calls.
package microgridclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
	"github.com/frequenz-floss/microgrid-client-go/util/backoff"
	"github.com/frequenz-floss/microgrid-client-go/util/callerrors"
	"github.com/frequenz-floss/microgrid-client-go/util/logger"
	"github.com/frequenz-floss/microgrid-client-go/util/metrics"
)

const (
	// DefaultConnectionTimeout is the default timeout for establishing the
	// gRPC connection to a single target.
	DefaultConnectionTimeout = 30 * time.Second

	// DefaultCallTimeout is the default timeout applied to API calls whose
	// context carries no deadline of its own.
	DefaultCallTimeout = 60 * time.Second
)

var (
	// ErrNoTargets is returned when no gateway targets are provided.
	ErrNoTargets = errors.New("no microgrid targets provided")

	// ErrNotConnected is returned when calling API methods before Connect.
	ErrNotConnected = errors.New("client is not connected")

	// ErrClientClosed is returned when using a closed client.
	ErrClientClosed = errors.New("client is closed")

	// ErrConnectionFailed is returned when no target could be reached.
	ErrConnectionFailed = errors.New("failed to connect to any microgrid target")
)

// Options holds configuration options for the client.
type Options struct {
	// ConnectionTimeout bounds connection establishment per target.
	ConnectionTimeout time.Duration

	// CallTimeout is the default deadline for API calls. It must be
	// strictly positive and is fixed for the lifetime of the client.
	CallTimeout time.Duration

	// Backoff configures the delay between connection rounds when every
	// target failed. Zero fields use backoff defaults.
	Backoff backoff.Config

	// GRPCDialOptions are additional gRPC dial options.
	GRPCDialOptions []grpc.DialOption

	// Logger is the logger to use. If nil, a default logger is created.
	Logger *logger.Logger
}

// Option is a function that configures Options.
type Option func(*Options)

// WithConnectionTimeout sets the connection timeout.
func WithConnectionTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.ConnectionTimeout = timeout
	}
}

// WithCallTimeout sets the default call timeout.
func WithCallTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.CallTimeout = timeout
	}
}

// WithBackoff sets the backoff configuration for connection retries.
func WithBackoff(config backoff.Config) Option {
	return func(o *Options) {
		o.Backoff = config
	}
}

// WithGRPCDialOptions adds additional gRPC dial options.
func WithGRPCDialOptions(opts ...grpc.DialOption) Option {
	return func(o *Options) {
		o.GRPCDialOptions = append(o.GRPCDialOptions, opts...)
	}
}

// WithLogger sets the logger to use.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Client is a client for one microgrid gateway. The underlying gRPC
// connection is multiplexed, so a Client may be used concurrently from many
// goroutines; calls are independent and a timed-out call does not affect
// later ones.
type Client struct {
	targets []string
	options *Options
	logger  *logger.Logger

	mu            sync.RWMutex
	conn          *grpc.ClientConn
	stub          microgrid_pb.MicrogridClient
	connected     bool
	closed        bool
	currentTarget string
}

// NewClient creates a client for the given gateway targets. Connect must be
// called before any API call. Non-positive timeout options are rejected here,
// never at call time.
func NewClient(targets []string, opts ...Option) (*Client, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	options := &Options{
		ConnectionTimeout: DefaultConnectionTimeout,
		CallTimeout:       DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.CallTimeout <= 0 {
		return nil, fmt.Errorf("call timeout must be positive, got %v", options.CallTimeout)
	}
	if options.ConnectionTimeout <= 0 {
		return nil, fmt.Errorf("connection timeout must be positive, got %v", options.ConnectionTimeout)
	}

	if options.Logger == nil {
		options.Logger = logger.NewLogger("MicrogridClient")
	}

	targetsCopy := make([]string, len(targets))
	copy(targetsCopy, targets)

	return &Client{
		targets: targetsCopy,
		options: options,
		logger:  options.Logger,
	}, nil
}

// NewClientWithConn creates a client around an already established gRPC
// connection. The caller keeps ownership of the connection lifecycle;
// Close on the client does not close it. Mainly useful for tests and for
// embedding the client behind custom channel construction.
func NewClientWithConn(conn *grpc.ClientConn, target string, opts ...Option) (*Client, error) {
	client, err := NewClient([]string{target}, opts...)
	if err != nil {
		return nil, err
	}
	client.conn = nil // lifecycle stays with the caller
	client.stub = microgrid_pb.NewMicrogridClient(conn)
	client.connected = true
	client.currentTarget = target
	return client, nil
}

// CallTimeout returns the default call timeout configured for this client.
func (c *Client) CallTimeout() time.Duration {
	return c.options.CallTimeout
}

// Connect establishes a connection to one of the configured targets, trying
// them in order. When a full round fails, it backs off and retries until ctx
// expires.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClientClosed
	}
	if c.connected {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	retry := backoff.New(c.options.Backoff)

	for {
		for _, target := range c.targets {
			err := c.connectToTarget(ctx, target)
			if err == nil {
				return nil
			}
			c.logger.Warnf("Failed to connect to %s: %v", target, err)
		}

		if err := retry.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
		}
		c.logger.Infof("Retrying connection (attempt %d)", retry.Attempt()+1)
	}
}

// connectToTarget dials a single target and waits for the connection to
// become ready within the connection timeout.
func (c *Client) connectToTarget(ctx context.Context, target string) error {
	c.logger.Infof("Connecting to microgrid gateway at %s", target)

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	dialOpts = append(dialOpts, c.options.GRPCDialOptions...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return fmt.Errorf("failed to create gRPC client: %w", err)
	}

	readyCtx, cancel := context.WithTimeout(ctx, c.options.ConnectionTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			break
		}
		if !conn.WaitForStateChange(readyCtx, state) {
			conn.Close()
			return fmt.Errorf("connection to %s not ready: %w", target, readyCtx.Err())
		}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return ErrClientClosed
	}
	c.conn = conn
	c.stub = microgrid_pb.NewMicrogridClient(conn)
	c.connected = true
	c.currentTarget = target
	c.mu.Unlock()

	c.logger.Infof("Connected to microgrid gateway at %s", target)
	return nil
}

// Close closes the client and its connection. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	c.connected = false

	var err error
	if c.conn != nil {
		err = c.conn.Close()
		c.conn = nil
	}
	c.stub = nil

	c.logger.Infof("Client closed")
	return err
}

// IsConnected reports whether the client has an established connection.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected && !c.closed
}

// Target returns the target the client is currently connected to.
// Returns empty string if not connected.
func (c *Client) Target() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTarget
}

// ConnectionState returns the current gRPC connection state, or
// connectivity.Shutdown when the client owns no connection.
func (c *Client) ConnectionState() connectivity.State {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return connectivity.Shutdown
	}
	return conn.GetState()
}

// execute runs one unary call under the effective deadline and classifies
// the outcome. Exactly one of three results is produced: nil on success, a
// *callerrors.TimeoutError when the local deadline elapsed first, or the
// remote status error verbatim.
func (c *Client) execute(ctx context.Context, operation string, fn func(context.Context, microgrid_pb.MicrogridClient) error) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrClientClosed
	}
	if !c.connected {
		c.mu.RUnlock()
		return ErrNotConnected
	}
	stub := c.stub
	target := c.currentTarget
	c.mu.RUnlock()

	// Resolve the effective deadline: the caller's own deadline wins,
	// otherwise the configured default applies.
	deadline := c.options.CallTimeout
	if d, ok := ctx.Deadline(); ok {
		deadline = time.Until(d)
	} else {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx, stub)
	elapsed := time.Since(start)

	metrics.RecordAPICall(target, operation, callerrors.Code(err).String(), elapsed.Seconds())

	if err == nil {
		return nil
	}

	// A local deadline expiry surfaces as a typed timeout carrying the
	// effective deadline. The cancellation of the in-flight RPC is
	// best-effort; we do not wait for the server to acknowledge it. A
	// DEADLINE_EXCEEDED reported by the remote peer itself (our context
	// still live) passes through below like any other remote failure.
	if callerrors.IsTimeout(err) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		metrics.RecordAPICallTimeout(target, operation)
		c.logger.Warnf("%s timed out after %v (deadline %v)", operation, elapsed.Round(time.Millisecond), deadline)
		return callerrors.NewTimeoutError(operation, deadline, elapsed, err)
	}

	return err
}

// Components returns the components of the microgrid.
func (c *Client) Components(ctx context.Context) ([]*microgrid_pb.Component, error) {
	var components []*microgrid_pb.Component
	err := c.execute(ctx, "Components", func(callCtx context.Context, stub microgrid_pb.MicrogridClient) error {
		resp, err := stub.ListComponents(callCtx, &microgrid_pb.ComponentFilter{})
		if err != nil {
			return err
		}
		components = resp.GetComponents()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Connections returns the electrical connections between components.
func (c *Client) Connections(ctx context.Context) ([]*microgrid_pb.Connection, error) {
	var connections []*microgrid_pb.Connection
	err := c.execute(ctx, "Connections", func(callCtx context.Context, stub microgrid_pb.MicrogridClient) error {
		resp, err := stub.ListConnections(callCtx, &microgrid_pb.ConnectionFilter{})
		if err != nil {
			return err
		}
		connections = resp.GetConnections()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return connections, nil
}

// SetPower sets the requested active power of a component, in watts.
// Negative powerW means the component consumes power (e.g. a battery
// charging), positive means it supplies power.
func (c *Client) SetPower(ctx context.Context, componentID uint64, powerW int64) error {
	return c.execute(ctx, "SetPower", func(callCtx context.Context, stub microgrid_pb.MicrogridClient) error {
		_, err := stub.SetPowerActive(callCtx, &microgrid_pb.PowerLevelParam{
			ComponentId: componentID,
			PowerW:      powerW,
		})
		return err
	})
}
