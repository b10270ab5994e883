// Package puzzle turns free-text replies from the ship narrator into game
// progress. Marker scanning is a pure function over the reply text; the
// tracker is the only thing allowed to flip a subsystem to FIXED.
package puzzle

import (
	"strings"

	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
)

// Marker phrases the narrator is contracted to emit. Matching is
// case-insensitive, and LIFE SUPPORT is accepted with either a space or a
// hyphen between the tokens, since the model drifts between the two.
var fixedMarkers = map[models.SystemID][]string{
	models.SystemPower:       {"power is fixed"},
	models.SystemEngine:      {"engine is fixed"},
	models.SystemLifeSupport: {"life support is fixed", "life-support is fixed"},
}

const missionMarker = "mission success"

// Report is the set of transitions a single reply triggers.
type Report struct {
	Fixed   []models.SystemID // subsystems the reply declares repaired
	Mission bool              // reply contains the mission-success phrase
}

// Scan extracts every marker phrase present in reply. It inspects text only;
// it never touches tracker state. A reply with no markers yields a zero
// Report, which is not an error (just no progress).
func Scan(reply string) Report {
	lower := strings.ToLower(reply)
	var r Report
	for _, id := range []models.SystemID{models.SystemPower, models.SystemEngine, models.SystemLifeSupport} {
		for _, marker := range fixedMarkers[id] {
			if strings.Contains(lower, marker) {
				r.Fixed = append(r.Fixed, id)
				break
			}
		}
	}
	r.Mission = strings.Contains(lower, missionMarker)
	return r
}
