package models

import "testing"

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{180, "3:00"},
		{125, "2:05"},
		{60, "1:00"},
		{59, "0:59"},
		{9, "0:09"},
		{0, "0:00"},
		{-5, "0:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.seconds); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestLoadMachines(t *testing.T) {
	machines, err := LoadMachines()
	if err != nil {
		t.Fatalf("LoadMachines() error: %v", err)
	}
	if len(machines) != 3 {
		t.Fatalf("LoadMachines() returned %d machines, want 3", len(machines))
	}

	// Declaration order is the interaction tie-break, so it is part of the
	// contract, not an incidental detail.
	wantOrder := []SystemID{SystemPower, SystemEngine, SystemLifeSupport}
	for i, want := range wantOrder {
		if machines[i].ID != want {
			t.Errorf("machines[%d].ID = %q, want %q", i, machines[i].ID, want)
		}
	}

	for _, m := range machines {
		if m.Width != MachineSize || m.Height != MachineSize {
			t.Errorf("machine %s footprint = %gx%g, want %gx%g", m.ID, m.Width, m.Height, MachineSize, MachineSize)
		}
		cx, cy := m.Center()
		if cx != m.X+MachineSize/2 || cy != m.Y+MachineSize/2 {
			t.Errorf("machine %s center = (%g,%g), want (%g,%g)", m.ID, cx, cy, m.X+MachineSize/2, m.Y+MachineSize/2)
		}
	}
}

func TestSystemIDsPreservesOrder(t *testing.T) {
	machines := []Machine{
		{ID: SystemLifeSupport},
		{ID: SystemPower},
	}
	ids := SystemIDs(machines)
	if len(ids) != 2 || ids[0] != SystemLifeSupport || ids[1] != SystemPower {
		t.Errorf("SystemIDs() = %v, want [LIFE SUPPORT POWER]", ids)
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()
	if p.X != 400 || p.Y != 500 {
		t.Errorf("spawn = (%g,%g), want (400,500)", p.X, p.Y)
	}
	if p.Frame != 0 || p.FacingLeft {
		t.Errorf("new player should face right on frame 0, got frame=%d facingLeft=%v", p.Frame, p.FacingLeft)
	}
}
