package simulator

import (
	"context"
	"testing"

	"github.com/frequenz-floss/microgrid-client-go/config"
	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		want    microgrid_pb.ComponentCategory
		wantErr bool
	}{
		{"grid", microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_GRID, false},
		{"Battery", microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_BATTERY, false},
		{"EV_CHARGER", microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_EV_CHARGER, false},
		{"", microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_UNSPECIFIED, false},
		{"windmill", microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_UNSPECIFIED, true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadFixtures(t *testing.T) {
	s := NewServicer()
	err := s.LoadFixtures(&config.SimulatorConfig{
		Components: []config.ComponentConfig{
			{ID: 1, Category: "grid"},
			{ID: 2, Category: "battery", Manufacturer: "ACME", Model: "PowerCell 9"},
		},
		Connections: []config.ConnectionConfig{
			{Start: 1, End: 2},
		},
	})
	if err != nil {
		t.Fatalf("LoadFixtures() error = %v", err)
	}

	resp, err := s.ListComponents(context.Background(), &microgrid_pb.ComponentFilter{})
	if err != nil {
		t.Fatalf("ListComponents() error = %v", err)
	}
	if len(resp.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(resp.Components))
	}
	if resp.Components[1].Manufacturer != "ACME" {
		t.Errorf("component manufacturer = %q, want ACME", resp.Components[1].Manufacturer)
	}

	conns, err := s.ListConnections(context.Background(), &microgrid_pb.ConnectionFilter{})
	if err != nil {
		t.Fatalf("ListConnections() error = %v", err)
	}
	if len(conns.Connections) != 1 || conns.Connections[0].Start != 1 || conns.Connections[0].End != 2 {
		t.Errorf("connections = %+v, want single 1->2", conns.Connections)
	}
}

func TestLoadFixturesBadCategory(t *testing.T) {
	s := NewServicer()
	err := s.LoadFixtures(&config.SimulatorConfig{
		Components: []config.ComponentConfig{{ID: 1, Category: "windmill"}},
	})
	if err == nil {
		t.Error("LoadFixtures() should reject unknown categories")
	}
}
