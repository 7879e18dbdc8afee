package simulator

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
)

func testComponents() []*microgrid_pb.Component {
	return []*microgrid_pb.Component{
		{Id: 1, Category: microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_GRID},
		{Id: 2, Category: microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_METER},
		{Id: 3, Category: microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_BATTERY},
		{Id: 4, Category: microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_BATTERY},
	}
}

func TestListComponents_NoFilter(t *testing.T) {
	s := NewServicer()
	s.SetComponents(testComponents())

	resp, err := s.ListComponents(context.Background(), &microgrid_pb.ComponentFilter{})
	if err != nil {
		t.Fatalf("ListComponents failed: %v", err)
	}
	if len(resp.Components) != 4 {
		t.Errorf("got %d components, want 4", len(resp.Components))
	}
}

func TestListComponents_FilterByID(t *testing.T) {
	s := NewServicer()
	s.SetComponents(testComponents())

	resp, err := s.ListComponents(context.Background(), &microgrid_pb.ComponentFilter{
		Ids: []uint64{1, 3},
	})
	if err != nil {
		t.Fatalf("ListComponents failed: %v", err)
	}
	if len(resp.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(resp.Components))
	}
	if resp.Components[0].Id != 1 || resp.Components[1].Id != 3 {
		t.Errorf("got components %v and %v, want 1 and 3", resp.Components[0].Id, resp.Components[1].Id)
	}
}

func TestListComponents_FilterByCategory(t *testing.T) {
	s := NewServicer()
	s.SetComponents(testComponents())

	resp, err := s.ListComponents(context.Background(), &microgrid_pb.ComponentFilter{
		Categories: []microgrid_pb.ComponentCategory{
			microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_BATTERY,
		},
	})
	if err != nil {
		t.Fatalf("ListComponents failed: %v", err)
	}
	if len(resp.Components) != 2 {
		t.Errorf("got %d components, want 2 batteries", len(resp.Components))
	}
}

func TestListConnections_Filter(t *testing.T) {
	s := NewServicer()
	s.SetConnections([]*microgrid_pb.Connection{
		{Start: 1, End: 2},
		{Start: 2, End: 3},
		{Start: 2, End: 4},
	})

	resp, err := s.ListConnections(context.Background(), &microgrid_pb.ConnectionFilter{
		Starts: []uint64{2},
	})
	if err != nil {
		t.Fatalf("ListConnections failed: %v", err)
	}
	if len(resp.Connections) != 2 {
		t.Errorf("got %d connections, want 2", len(resp.Connections))
	}
}

func TestSetPowerActive_RecordsCommands(t *testing.T) {
	s := NewServicer()

	for _, powerW := range []int64{-100, 100} {
		_, err := s.SetPowerActive(context.Background(), &microgrid_pb.PowerLevelParam{
			ComponentId: 7,
			PowerW:      powerW,
		})
		if err != nil {
			t.Fatalf("SetPowerActive(%d) failed: %v", powerW, err)
		}
	}

	commands := s.PowerCommands()
	if len(commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(commands))
	}
	if commands[0].PowerW != -100 || commands[1].PowerW != 100 {
		t.Errorf("recorded powers %d, %d; want -100, 100", commands[0].PowerW, commands[1].PowerW)
	}

	last, ok := s.LastPowerCommand()
	if !ok {
		t.Fatal("LastPowerCommand reported no commands")
	}
	if last.ComponentID != 7 || last.PowerW != 100 {
		t.Errorf("last command = %+v, want component 7 power 100", last)
	}
}

func TestSetDelay(t *testing.T) {
	s := NewServicer()
	s.SetDelay("ListComponents", 50*time.Millisecond)

	start := time.Now()
	_, err := s.ListComponents(context.Background(), &microgrid_pb.ComponentFilter{})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("ListComponents failed: %v", err)
	}
	if elapsed < 50*time.Millisecond {
		t.Errorf("response after %v, want at least 50ms delay", elapsed)
	}

	// Removing the delay restores fast responses
	s.SetDelay("ListComponents", 0)
	start = time.Now()
	_, _ = s.ListComponents(context.Background(), &microgrid_pb.ComponentFilter{})
	if elapsed := time.Since(start); elapsed > 40*time.Millisecond {
		t.Errorf("response after %v with delay removed", elapsed)
	}
}

func TestFailWith(t *testing.T) {
	s := NewServicer()
	injected := status.Error(codes.InvalidArgument, "component does not exist")
	s.FailWith("SetPowerActive", injected)

	_, err := s.SetPowerActive(context.Background(), &microgrid_pb.PowerLevelParam{ComponentId: 99})
	if err == nil {
		t.Fatal("SetPowerActive should fail with injected error")
	}
	// Injected status errors must come back verbatim
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("status code = %v, want InvalidArgument", status.Code(err))
	}
	if status.Convert(err).Message() != "component does not exist" {
		t.Errorf("message = %q, want original message", status.Convert(err).Message())
	}

	// No command is recorded on the failure path
	if _, ok := s.LastPowerCommand(); ok {
		t.Error("failed SetPowerActive should not record a command")
	}

	s.FailWith("SetPowerActive", nil)
	if _, err := s.SetPowerActive(context.Background(), &microgrid_pb.PowerLevelParam{ComponentId: 1}); err != nil {
		t.Errorf("SetPowerActive after clearing failure: %v", err)
	}
}
