package testutil

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
)

// echoHandler is a minimal Microgrid handler for exercising the server.
type echoHandler struct {
	microgrid_pb.UnimplementedMicrogridServer
}

func (h *echoHandler) ListComponents(ctx context.Context, req *microgrid_pb.ComponentFilter) (*microgrid_pb.ComponentList, error) {
	return &microgrid_pb.ComponentList{
		Components: []*microgrid_pb.Component{{Id: 1}},
	}, nil
}

func TestGrpcServerStartStop(t *testing.T) {
	server := NewGrpcServer("localhost:0", &echoHandler{})

	if server.IsRunning() {
		t.Fatal("server should not be running before Start")
	}

	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if !server.IsRunning() {
		t.Fatal("server should be running after Start")
	}
	if server.Address() == "localhost:0" {
		t.Fatal("Address() should report the actual bound port")
	}

	// Starting twice is an error
	if err := server.Start(context.Background()); err == nil {
		t.Error("second Start() should fail")
	}

	if err := server.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if server.IsRunning() {
		t.Fatal("server should not be running after Stop")
	}

	// Stop is idempotent
	if err := server.Stop(); err != nil {
		t.Errorf("second Stop() failed: %v", err)
	}
}

func TestGrpcServerServesRPCs(t *testing.T) {
	server := NewGrpcServer("localhost:0", &echoHandler{})
	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer server.Stop()

	conn, err := grpc.NewClient(server.Address(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := microgrid_pb.NewMicrogridClient(conn).ListComponents(ctx, &microgrid_pb.ComponentFilter{})
	if err != nil {
		t.Fatalf("ListComponents() failed: %v", err)
	}
	if len(resp.Components) != 1 || resp.Components[0].Id != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGrpcServerForceStop(t *testing.T) {
	server := NewGrpcServer("localhost:0", &echoHandler{})
	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	server.ForceStop()
	if server.IsRunning() {
		t.Fatal("server should not be running after ForceStop")
	}
}
