// Package sim holds the pure per-tick simulation reducers: player motion,
// walk animation and machine proximity. It imports no input or rendering
// library, so every rule is testable without a real clock or keyboard.
package sim

import (
	"math"

	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
)

// KeyState is a point-in-time snapshot of the held directional keys.
type KeyState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Any reports whether any directional key is held.
func (k KeyState) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Step advances the player by one simulation tick of dt seconds.
//
// Each held axis contributes a full models.PlayerSpeed*dt displacement, so
// diagonal movement is faster than axis movement by sqrt(2). That is the
// shipped movement feel and is kept as-is. Horizontal input updates the
// facing flag; the position is clamped to the world rectangle afterwards.
//
// The walk cycle advances one frame per models.FrameInterval seconds of held
// input and snaps back to frame 0 the moment no key is held.
func Step(p models.Player, keys KeyState, dt float64) models.Player {
	if keys.Up {
		p.Y -= models.PlayerSpeed * dt
	}
	if keys.Down {
		p.Y += models.PlayerSpeed * dt
	}
	if keys.Left {
		p.X -= models.PlayerSpeed * dt
		p.FacingLeft = true
	}
	if keys.Right {
		p.X += models.PlayerSpeed * dt
		p.FacingLeft = false
	}

	p.X = clamp(p.X, 0, models.WorldWidth-p.Width)
	p.Y = clamp(p.Y, 0, models.WorldHeight-p.Height)

	if keys.Any() {
		p.FrameTimer += dt
		if p.FrameTimer > models.FrameInterval {
			p.Frame = (p.Frame + 1) % models.WalkFrames
			p.FrameTimer = 0
		}
	} else {
		p.Frame = 0
		p.FrameTimer = 0
	}
	return p
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
