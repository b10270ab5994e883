package models

import "fmt"

// World geometry and tuning constants shared by every frontend.
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0

	PlayerWidth  = 48.0
	PlayerHeight = 48.0
	PlayerSpeed  = 250.0 // world units per second, per active axis

	MachineSize    = 64.0
	InteractRadius = 80.0

	WalkFrames    = 6
	FrameInterval = 0.1 // seconds of held movement per animation frame

	TotalSeconds = 180
)

// SystemID identifies one of the three ship subsystems.
type SystemID string

const (
	SystemPower       SystemID = "POWER"
	SystemEngine      SystemID = "ENGINE"
	SystemLifeSupport SystemID = "LIFE SUPPORT"
)

// SystemStatus is the repair state of a single subsystem.
type SystemStatus string

const (
	StatusBroken SystemStatus = "BROKEN"
	StatusFixed  SystemStatus = "FIXED"
)

// Role marks who produced a transcript entry.
type Role string

const (
	RolePlayer Role = "player"
	RoleShip   Role = "ship"
)

// Message is a single transcript entry. The transcript is append-only.
type Message struct {
	Role    Role
	Content string
}

// Machine is a fixed interactable object bound to one subsystem.
// Machines are immutable for the lifetime of a run.
type Machine struct {
	ID    SystemID `yaml:"id"`
	Name  string   `yaml:"name"`
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	Color string   `yaml:"color"`

	Width  float64 `yaml:"-"`
	Height float64 `yaml:"-"`
}

// Center returns the machine's center point in world coordinates.
func (m Machine) Center() (float64, float64) {
	return m.X + m.Width/2, m.Y + m.Height/2
}

// Player is the roaming avatar. Owned exclusively by the simulation loop.
type Player struct {
	X, Y       float64
	Width      float64
	Height     float64
	Frame      int     // walk cycle index, 0..WalkFrames-1
	FrameTimer float64 // seconds of movement since the last frame advance
	FacingLeft bool
}

// NewPlayer returns a player at the spawn point.
func NewPlayer() Player {
	return Player{X: 400, Y: 500, Width: PlayerWidth, Height: PlayerHeight}
}

// Center returns the player's center point in world coordinates.
func (p Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// FormatClock renders a remaining-time value as M:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
