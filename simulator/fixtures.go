package simulator

import (
	"fmt"
	"strings"

	"github.com/frequenz-floss/microgrid-client-go/config"
	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
)

// ParseCategory maps a config category name to the proto enum.
func ParseCategory(name string) (microgrid_pb.ComponentCategory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unspecified":
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_UNSPECIFIED, nil
	case "grid":
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_GRID, nil
	case "meter":
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_METER, nil
	case "inverter":
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_INVERTER, nil
	case "battery":
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_BATTERY, nil
	case "ev_charger":
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_EV_CHARGER, nil
	case "chp":
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_CHP, nil
	default:
		return microgrid_pb.ComponentCategory_COMPONENT_CATEGORY_UNSPECIFIED,
			fmt.Errorf("unknown component category %q", name)
	}
}

// LoadFixtures populates the servicer with the components and connections
// from a simulator configuration.
func (s *Servicer) LoadFixtures(cfg *config.SimulatorConfig) error {
	components := make([]*microgrid_pb.Component, 0, len(cfg.Components))
	for _, comp := range cfg.Components {
		category, err := ParseCategory(comp.Category)
		if err != nil {
			return fmt.Errorf("component %d: %w", comp.ID, err)
		}
		components = append(components, &microgrid_pb.Component{
			Id:           comp.ID,
			Category:     category,
			Manufacturer: comp.Manufacturer,
			Model:        comp.Model,
		})
	}

	connections := make([]*microgrid_pb.Connection, 0, len(cfg.Connections))
	for _, conn := range cfg.Connections {
		connections = append(connections, &microgrid_pb.Connection{
			Start: conn.Start,
			End:   conn.End,
		})
	}

	s.SetComponents(components)
	s.SetConnections(connections)
	return nil
}
