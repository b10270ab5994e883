package puzzle

import "github.com/JihunPark03/Gemini3Hackathon/internal/models"

// Tracker holds the per-subsystem repair statuses for one run.
type Tracker struct {
	order  []models.SystemID
	status map[models.SystemID]models.SystemStatus
}

// NewTracker starts every subsystem BROKEN. ids must be the machine
// declaration order.
func NewTracker(ids []models.SystemID) *Tracker {
	t := &Tracker{
		order:  append([]models.SystemID(nil), ids...),
		status: make(map[models.SystemID]models.SystemStatus, len(ids)),
	}
	for _, id := range ids {
		t.status[id] = models.StatusBroken
	}
	return t
}

// Apply commits the transitions from a scan report. Status changes are
// monotonic: BROKEN→FIXED only, and re-fixing a FIXED subsystem is a no-op.
// It returns true when at least one status actually changed.
func (t *Tracker) Apply(r Report) bool {
	changed := false
	for _, id := range r.Fixed {
		if _, ok := t.status[id]; !ok {
			continue // unknown id, ignore
		}
		if t.status[id] != models.StatusFixed {
			t.status[id] = models.StatusFixed
			changed = true
		}
	}
	return changed
}

// Status returns the current status of one subsystem.
func (t *Tracker) Status(id models.SystemID) models.SystemStatus {
	return t.status[id]
}

// AllFixed reports whether every tracked subsystem is FIXED. The mission
// verdict itself comes from the narrator's phrase, which may outrun these
// flags; this is display information only.
func (t *Tracker) AllFixed() bool {
	for _, id := range t.order {
		if t.status[id] != models.StatusFixed {
			return false
		}
	}
	return true
}

// Order returns the subsystem ids in declaration order.
func (t *Tracker) Order() []models.SystemID {
	return append([]models.SystemID(nil), t.order...)
}
