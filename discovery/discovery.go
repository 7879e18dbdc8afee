// Package discovery provides an etcd-backed registry of microgrid gateway
// endpoints. Gateways (or their simulators) register their advertise address
// under a lease; clients list or watch the registered endpoints to find a
// target to connect to. Discovery only enumerates endpoints, it does not
// balance load across them.
package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/frequenz-floss/microgrid-client-go/util/logger"
)

const (
	// DefaultPrefix is the root for all registry keys in etcd.
	DefaultPrefix = "/microgrid"

	// endpointLeaseTTL is the lease TTL for registered endpoints, in seconds.
	// An endpoint whose process dies disappears after at most this long.
	endpointLeaseTTL = 15

	dialTimeout = 5 * time.Second
)

// Endpoint is one registered microgrid gateway.
type Endpoint struct {
	// Name identifies the gateway (e.g. a microgrid ID).
	Name string

	// Target is the gRPC address clients should dial.
	Target string
}

// Registry manages endpoint registration and lookup against etcd.
type Registry struct {
	etcdEndpoints []string
	prefix        string
	logger        *logger.Logger

	mu      sync.Mutex
	client  *clientv3.Client
	leaseID clientv3.LeaseID
	regName string
	regStop context.CancelFunc
}

// NewRegistry creates a registry talking to the given etcd endpoints.
// An empty prefix falls back to DefaultPrefix, so multiple deployments or
// test environments can share one etcd instance.
func NewRegistry(etcdEndpoints []string, prefix string) (*Registry, error) {
	if len(etcdEndpoints) == 0 {
		return nil, fmt.Errorf("no etcd endpoints provided")
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Registry{
		etcdEndpoints: etcdEndpoints,
		prefix:        prefix,
		logger:        logger.NewLogger("EndpointRegistry"),
	}, nil
}

// Connect establishes the etcd client connection.
func (r *Registry) Connect() error {
	r.logger.Infof("Connecting to etcd at %v", r.etcdEndpoints)

	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   r.etcdEndpoints,
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to etcd: %w", err)
	}

	r.mu.Lock()
	r.client = cli
	r.mu.Unlock()
	return nil
}

// Close deregisters any registered endpoint and closes the etcd connection.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.regStop != nil {
		r.regStop()
		r.regStop = nil
	}

	if r.client != nil {
		r.logger.Infof("Closing etcd connection")
		err := r.client.Close()
		r.client = nil
		return err
	}
	return nil
}

// EndpointsPrefix returns the key prefix endpoints are stored under,
// e.g. "/microgrid/endpoints/".
func (r *Registry) EndpointsPrefix() string {
	return r.prefix + "/endpoints/"
}

func (r *Registry) endpointKey(name string) string {
	return r.EndpointsPrefix() + name
}

func (r *Registry) getClient() (*clientv3.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.client == nil {
		return nil, fmt.Errorf("etcd client not connected")
	}
	return r.client, nil
}

// Register announces a gateway under the registry prefix, keeping the entry
// alive on a lease until Deregister or Close is called (or the process dies).
func (r *Registry) Register(ctx context.Context, name, target string) error {
	if name == "" {
		return fmt.Errorf("endpoint name must not be empty")
	}
	if target == "" {
		return fmt.Errorf("endpoint target must not be empty")
	}

	cli, err := r.getClient()
	if err != nil {
		return err
	}

	lease, err := cli.Grant(ctx, endpointLeaseTTL)
	if err != nil {
		return fmt.Errorf("failed to grant lease: %w", err)
	}

	_, err = cli.Put(ctx, r.endpointKey(name), target, clientv3.WithLease(lease.ID))
	if err != nil {
		return fmt.Errorf("failed to register endpoint %s: %w", name, err)
	}

	keepAliveCtx, cancel := context.WithCancel(context.Background())
	keepAlive, err := cli.KeepAlive(keepAliveCtx, lease.ID)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to keep lease alive: %w", err)
	}

	r.mu.Lock()
	r.leaseID = lease.ID
	r.regName = name
	r.regStop = cancel
	r.mu.Unlock()

	// Drain keepalive responses; the channel closes when the lease or the
	// context ends.
	go func() {
		for range keepAlive {
		}
		r.logger.Debugf("Keepalive channel for endpoint %s closed", name)
	}()

	r.logger.Infof("Registered endpoint %s -> %s (lease %x)", name, target, lease.ID)
	return nil
}

// Deregister removes the registered endpoint and revokes its lease.
func (r *Registry) Deregister(ctx context.Context) error {
	r.mu.Lock()
	name := r.regName
	leaseID := r.leaseID
	stop := r.regStop
	r.regName = ""
	r.leaseID = 0
	r.regStop = nil
	r.mu.Unlock()

	if name == "" {
		return nil
	}
	if stop != nil {
		stop()
	}

	cli, err := r.getClient()
	if err != nil {
		return err
	}

	if _, err := cli.Revoke(ctx, leaseID); err != nil {
		return fmt.Errorf("failed to revoke lease for endpoint %s: %w", name, err)
	}

	r.logger.Infof("Deregistered endpoint %s", name)
	return nil
}

// Endpoints lists all currently registered endpoints, sorted by key.
func (r *Registry) Endpoints(ctx context.Context) ([]Endpoint, error) {
	cli, err := r.getClient()
	if err != nil {
		return nil, err
	}

	resp, err := cli.Get(ctx, r.EndpointsPrefix(), clientv3.WithPrefix(), clientv3.WithSort(clientv3.SortByKey, clientv3.SortAscend))
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}

	endpoints := make([]Endpoint, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		endpoints = append(endpoints, Endpoint{
			Name:   string(kv.Key[len(r.EndpointsPrefix()):]),
			Target: string(kv.Value),
		})
	}
	return endpoints, nil
}

// Watch emits the full endpoint list whenever a registration changes. The
// channel closes when ctx is cancelled. The initial list is emitted first.
func (r *Registry) Watch(ctx context.Context) (<-chan []Endpoint, error) {
	cli, err := r.getClient()
	if err != nil {
		return nil, err
	}

	initial, err := r.Endpoints(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []Endpoint, 1)
	out <- initial

	watchChan := cli.Watch(ctx, r.EndpointsPrefix(), clientv3.WithPrefix())

	go func() {
		defer close(out)
		for resp := range watchChan {
			if resp.Err() != nil {
				r.logger.Errorf("Endpoint watch error: %v", resp.Err())
				return
			}
			endpoints, err := r.Endpoints(ctx)
			if err != nil {
				r.logger.Errorf("Failed to re-list endpoints: %v", err)
				return
			}
			select {
			case out <- endpoints:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
