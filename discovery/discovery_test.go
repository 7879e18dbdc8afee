package discovery

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name          string
		etcdEndpoints []string
		prefix        string
		wantErr       bool
		wantPrefix    string
	}{
		{
			name:          "default prefix",
			etcdEndpoints: []string{"localhost:2379"},
			prefix:        "",
			wantPrefix:    DefaultPrefix,
		},
		{
			name:          "custom prefix",
			etcdEndpoints: []string{"localhost:2379"},
			prefix:        "/mydeployment",
			wantPrefix:    "/mydeployment",
		},
		{
			name:          "no endpoints",
			etcdEndpoints: nil,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.etcdEndpoints, tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if r.prefix != tt.wantPrefix {
				t.Errorf("prefix = %q, want %q", r.prefix, tt.wantPrefix)
			}
		})
	}
}

func TestEndpointKeys(t *testing.T) {
	r, err := NewRegistry([]string{"localhost:2379"}, "/test")
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if got := r.EndpointsPrefix(); got != "/test/endpoints/" {
		t.Errorf("EndpointsPrefix() = %q, want %q", got, "/test/endpoints/")
	}
	if got := r.endpointKey("grid-1"); got != "/test/endpoints/grid-1" {
		t.Errorf("endpointKey() = %q, want %q", got, "/test/endpoints/grid-1")
	}
}

func TestNotConnectedErrors(t *testing.T) {
	r, err := NewRegistry([]string{"localhost:2379"}, "")
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	ctx := context.Background()
	if err := r.Register(ctx, "grid-1", "localhost:57809"); err == nil {
		t.Error("Register() should fail when not connected")
	}
	if _, err := r.Endpoints(ctx); err == nil {
		t.Error("Endpoints() should fail when not connected")
	}
	if _, err := r.Watch(ctx); err == nil {
		t.Error("Watch() should fail when not connected")
	}
}

func TestRegisterValidation(t *testing.T) {
	r := setupEtcdTest(t)

	ctx := context.Background()
	if err := r.Register(ctx, "", "localhost:57809"); err == nil {
		t.Error("Register() should reject empty name")
	}
	if err := r.Register(ctx, "grid-1", ""); err == nil {
		t.Error("Register() should reject empty target")
	}
}

// setupEtcdTest connects a registry with a unique prefix, skipping the test
// when no etcd is reachable on localhost:2379.
func setupEtcdTest(t *testing.T) *Registry {
	t.Helper()

	prefix := fmt.Sprintf("/microgrid-test-%d", time.Now().UnixNano())
	r, err := NewRegistry([]string{"localhost:2379"}, prefix)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if err := r.Connect(); err != nil {
		t.Skipf("Skipping test: etcd not available: %v", err)
	}

	// Probe the connection; clientv3.New is lazy.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := r.Endpoints(ctx); err != nil {
		r.Close()
		t.Skipf("Skipping test: etcd not responding: %v", err)
	}

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cleanupCancel()
		_ = r.Deregister(cleanupCtx)
		r.Close()
	})
	return r
}

func TestRegisterAndList_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping etcd integration test in short mode")
	}
	r := setupEtcdTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Register(ctx, "grid-1", "localhost:57809"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	endpoints, err := r.Endpoints(ctx)
	if err != nil {
		t.Fatalf("Endpoints() error = %v", err)
	}
	if len(endpoints) != 1 {
		t.Fatalf("got %d endpoints, want 1", len(endpoints))
	}
	if endpoints[0].Name != "grid-1" || endpoints[0].Target != "localhost:57809" {
		t.Errorf("endpoint = %+v, want grid-1 -> localhost:57809", endpoints[0])
	}
}

func TestDeregister_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping etcd integration test in short mode")
	}
	r := setupEtcdTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Register(ctx, "grid-1", "localhost:57809"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Deregister(ctx); err != nil {
		t.Fatalf("Deregister() error = %v", err)
	}

	endpoints, err := r.Endpoints(ctx)
	if err != nil {
		t.Fatalf("Endpoints() error = %v", err)
	}
	if len(endpoints) != 0 {
		t.Errorf("got %d endpoints after deregister, want 0", len(endpoints))
	}
}

func TestWatch_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping etcd integration test in short mode")
	}
	r := setupEtcdTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	watch, err := r.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	// Initial list is empty.
	select {
	case endpoints := <-watch:
		if len(endpoints) != 0 {
			t.Fatalf("initial watch list has %d endpoints, want 0", len(endpoints))
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for initial endpoint list")
	}

	if err := r.Register(ctx, "grid-2", "localhost:57810"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	select {
	case endpoints := <-watch:
		if len(endpoints) != 1 || endpoints[0].Name != "grid-2" {
			t.Fatalf("watch update = %+v, want single grid-2 endpoint", endpoints)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for watch update")
	}
}
