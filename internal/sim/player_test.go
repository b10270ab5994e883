package sim

import (
	"math"
	"testing"

	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
)

func midPlayer() models.Player {
	p := models.NewPlayer()
	p.X, p.Y = 400, 300
	return p
}

func TestStepAxisDisplacement(t *testing.T) {
	const dt = 0.1
	cases := []struct {
		name   string
		keys   KeyState
		wantDX float64
		wantDY float64
	}{
		{"up", KeyState{Up: true}, 0, -models.PlayerSpeed * dt},
		{"down", KeyState{Down: true}, 0, models.PlayerSpeed * dt},
		{"left", KeyState{Left: true}, -models.PlayerSpeed * dt, 0},
		{"right", KeyState{Right: true}, models.PlayerSpeed * dt, 0},
		// Held opposite keys cancel out.
		{"left+right", KeyState{Left: true, Right: true}, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := midPlayer()
			got := Step(p, c.keys, dt)
			if math.Abs(got.X-p.X-c.wantDX) > 1e-9 || math.Abs(got.Y-p.Y-c.wantDY) > 1e-9 {
				t.Errorf("Step(%+v) moved (%g,%g), want (%g,%g)", c.keys, got.X-p.X, got.Y-p.Y, c.wantDX, c.wantDY)
			}
		})
	}
}

func TestStepDiagonalNotNormalized(t *testing.T) {
	// Each held axis contributes full speed, so diagonal travel is faster by
	// sqrt(2). That is the shipped behavior, kept on purpose.
	const dt = 0.05
	p := midPlayer()
	got := Step(p, KeyState{Right: true, Down: true}, dt)
	wantPerAxis := models.PlayerSpeed * dt
	if math.Abs(got.X-p.X-wantPerAxis) > 1e-9 || math.Abs(got.Y-p.Y-wantPerAxis) > 1e-9 {
		t.Errorf("diagonal step moved (%g,%g), want (%g,%g) per axis",
			got.X-p.X, got.Y-p.Y, wantPerAxis, wantPerAxis)
	}
}

func TestStepClampsToWorld(t *testing.T) {
	p := midPlayer()
	p.X, p.Y = 1, 1
	got := Step(p, KeyState{Up: true, Left: true}, 1.0)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("clamp at origin: got (%g,%g), want (0,0)", got.X, got.Y)
	}

	p.X, p.Y = models.WorldWidth-p.Width-1, models.WorldHeight-p.Height-1
	got = Step(p, KeyState{Down: true, Right: true}, 1.0)
	if got.X != models.WorldWidth-p.Width || got.Y != models.WorldHeight-p.Height {
		t.Errorf("clamp at far corner: got (%g,%g), want (%g,%g)",
			got.X, got.Y, models.WorldWidth-p.Width, models.WorldHeight-p.Height)
	}
}

func TestStepFacing(t *testing.T) {
	p := midPlayer()
	p = Step(p, KeyState{Left: true}, 0.01)
	if !p.FacingLeft {
		t.Error("after moving left, FacingLeft = false, want true")
	}
	p = Step(p, KeyState{Right: true}, 0.01)
	if p.FacingLeft {
		t.Error("after moving right, FacingLeft = true, want false")
	}
	// Vertical movement keeps the last horizontal facing.
	p = Step(p, KeyState{Left: true}, 0.01)
	p = Step(p, KeyState{Up: true}, 0.01)
	if !p.FacingLeft {
		t.Error("vertical movement reset FacingLeft")
	}
}

func TestStepAnimationAdvances(t *testing.T) {
	p := midPlayer()
	// Below the frame interval: timer accumulates, frame stays.
	p = Step(p, KeyState{Right: true}, models.FrameInterval*0.9)
	if p.Frame != 0 {
		t.Errorf("frame advanced early: got %d, want 0", p.Frame)
	}
	// Crossing the interval advances one frame and resets the timer.
	p = Step(p, KeyState{Right: true}, models.FrameInterval*0.9)
	if p.Frame != 1 {
		t.Errorf("frame = %d after crossing interval, want 1", p.Frame)
	}
	if p.FrameTimer != 0 {
		t.Errorf("FrameTimer = %g after advance, want 0", p.FrameTimer)
	}
}

func TestStepAnimationWraps(t *testing.T) {
	p := midPlayer()
	p.Frame = models.WalkFrames - 1
	p.FrameTimer = models.FrameInterval
	p = Step(p, KeyState{Right: true}, 0.01)
	if p.Frame != 0 {
		t.Errorf("walk cycle did not wrap: frame = %d, want 0", p.Frame)
	}
}

func TestStepIdleResetsFrame(t *testing.T) {
	p := midPlayer()
	p.Frame = 3
	p.FrameTimer = 0.05
	p = Step(p, KeyState{}, 0.016)
	if p.Frame != 0 || p.FrameTimer != 0 {
		t.Errorf("idle tick: frame=%d timer=%g, want 0/0 (no idle animation)", p.Frame, p.FrameTimer)
	}
	if p.X != 400 || p.Y != 300 {
		t.Errorf("idle tick moved the player to (%g,%g)", p.X, p.Y)
	}
}
