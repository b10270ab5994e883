package sim

import (
	"math"

	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
)

// Distance returns the Euclidean distance between the player's center and
// the machine's center.
func Distance(p models.Player, m models.Machine) float64 {
	px, py := p.Center()
	mx, my := m.Center()
	return math.Hypot(px-mx, py-my)
}

// InRange reports whether the machine can be interacted with from the
// player's current position. The radius is a strict bound.
func InRange(p models.Player, m models.Machine) bool {
	return Distance(p, m) < models.InteractRadius
}

// FirstInRange scans machines in declaration order and returns the first one
// in range. Declaration order, not distance, is the tie-break when several
// machines qualify.
func FirstInRange(p models.Player, machines []models.Machine) (models.Machine, bool) {
	for _, m := range machines {
		if InRange(p, m) {
			return m, true
		}
	}
	return models.Machine{}, false
}
