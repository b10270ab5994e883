package models

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed machines.yaml
var machinesYAML []byte

// LoadMachines decodes the embedded machine table. Declaration order in the
// YAML is preserved; interaction tie-breaks depend on it.
func LoadMachines() ([]Machine, error) {
	var doc struct {
		Machines []Machine `yaml:"machines"`
	}
	if err := yaml.Unmarshal(machinesYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse machine table: %v", err)
	}
	if len(doc.Machines) != 3 {
		return nil, fmt.Errorf("machine table has %d entries, want 3", len(doc.Machines))
	}
	seen := make(map[SystemID]bool)
	for i := range doc.Machines {
		m := &doc.Machines[i]
		if m.ID == "" {
			return nil, fmt.Errorf("machine %d has no id", i)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate machine id %q", m.ID)
		}
		seen[m.ID] = true
		m.Width = MachineSize
		m.Height = MachineSize
	}
	return doc.Machines, nil
}

// SystemIDs returns the subsystem ids in machine declaration order.
func SystemIDs(machines []Machine) []SystemID {
	ids := make([]SystemID, len(machines))
	for i, m := range machines {
		ids[i] = m.ID
	}
	return ids
}
