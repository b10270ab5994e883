// Package game composes the simulation, the countdown, the dialogue session
// and the puzzle tracker into one playable run, and wraps the result in an
// Ebitengine shell.
//
// All game state is mutated from a single goroutine: the one driving Pump
// and the command methods (the Ebitengine update loop, or a test). Dialogue
// requests run in their own goroutines but only ever send a reply value on a
// channel that Pump drains, so no locking is needed.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/JihunPark03/Gemini3Hackathon/internal/engine"
	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
	"github.com/JihunPark03/Gemini3Hackathon/internal/puzzle"
	"github.com/JihunPark03/Gemini3Hackathon/internal/sim"
)

// TransportErrMsg is appended to the transcript when the ship computer
// cannot be reached. Puzzle state is never touched on that path; the player
// just re-issues the command.
const TransportErrMsg = "*** COMMS FAULT: the ship computer did not respond. Repeat your last command. ***"

// InitCommand is the first message of every session; its reply is the
// opening situation report.
const InitCommand = "BEGIN"

type reply struct {
	gen  int
	text string
	err  error
}

// Run is one full game: dialogue session, countdown, subsystem statuses and
// the roaming player. Restarting replaces every field wholesale.
type Run struct {
	machines   []models.Machine
	newSession func() engine.Narrator

	phase       models.Phase
	secondsLeft int

	player  models.Player
	tracker *puzzle.Tracker

	terminalOpen    bool
	terminalMachine models.SystemID

	transcript []models.Message
	pending    bool

	// gen tags in-flight requests with the session that issued them. A reply
	// carrying a stale gen is dropped, so a restart during a pending request
	// can never leak into the new run.
	gen      int
	narrator engine.Narrator
	replies  chan reply

	ticker *time.Ticker
}

// NewRun wires a run over the given machine table. newSession must hand back
// a fresh narrator conversation each time it is called.
func NewRun(machines []models.Machine, newSession func() engine.Narrator) *Run {
	return &Run{
		machines:   machines,
		newSession: newSession,
		phase:      models.PhaseNotStarted,
		replies:    make(chan reply, 4),
	}
}

// Start begins a run: every subsystem BROKEN, clock at the full budget,
// empty transcript, fresh dialogue session, countdown armed. It also serves
// as restart from Won or Lost; any in-flight request keeps its old gen and
// will be discarded on arrival.
func (r *Run) Start(ctx context.Context) {
	r.gen++
	r.phase = models.PhaseRunning
	r.secondsLeft = models.TotalSeconds
	r.player = models.NewPlayer()
	r.tracker = puzzle.NewTracker(models.SystemIDs(r.machines))
	r.terminalOpen = false
	r.terminalMachine = ""
	r.transcript = nil
	r.pending = false
	r.narrator = r.newSession()

	if r.ticker != nil {
		r.ticker.Stop()
	}
	r.ticker = time.NewTicker(time.Second)

	// The init reply (or the comms-fault line) becomes the first transcript
	// entry. The init command itself is not echoed.
	r.pending = true
	r.dispatch(ctx, InitCommand)
}

// Pump applies everything that arrived since the last simulation tick:
// countdown ticks and dialogue replies. Call it once per frame before input
// handling. It never blocks.
func (r *Run) Pump() {
	for {
		select {
		case rep := <-r.replies:
			r.applyReply(rep)
		default:
			if r.ticker != nil {
				select {
				case <-r.ticker.C:
					r.applyTick()
					continue
				default:
				}
			}
			return
		}
	}
}

// StepPlayer advances motion and animation by dt seconds. Movement is frozen
// while the terminal is open or the run is not live.
func (r *Run) StepPlayer(keys sim.KeyState, dt float64) {
	if r.phase != models.PhaseRunning || r.terminalOpen {
		return
	}
	r.player = sim.Step(r.player, keys, dt)
}

// Interact handles an interact-key edge while exploring. The first machine
// in declaration order within range gets its terminal opened and an
// "Open <id>" command auto-sent on the player's behalf. If a request is
// already pending the terminal still opens but the auto command is silently
// dropped.
func (r *Run) Interact(ctx context.Context) {
	if r.phase != models.PhaseRunning || r.terminalOpen {
		return
	}
	m, ok := sim.FirstInRange(r.player, r.machines)
	if !ok {
		return
	}
	r.terminalOpen = true
	r.terminalMachine = m.ID
	r.Submit(ctx, fmt.Sprintf("Open %s", m.ID))
}

// OpenTerminalByID is Interact for frontends without a spatial world (the
// console mode): the named machine's terminal opens directly, with the same
// auto-sent command and the same pending rules.
func (r *Run) OpenTerminalByID(ctx context.Context, id models.SystemID) bool {
	if r.phase != models.PhaseRunning || r.terminalOpen {
		return false
	}
	for _, m := range r.machines {
		if m.ID == id {
			r.terminalOpen = true
			r.terminalMachine = m.ID
			r.Submit(ctx, fmt.Sprintf("Open %s", m.ID))
			return true
		}
	}
	return false
}

// CloseTerminal handles a close-key edge. A pending request stays in flight;
// its reply still lands in the transcript.
func (r *Run) CloseTerminal() {
	if !r.terminalOpen {
		return
	}
	r.terminalOpen = false
	r.terminalMachine = ""
}

// Submit sends one player command through the current session. While a
// request is pending, further submissions are rejected without any
// observable effect. The command is echoed to the transcript and sent with
// the remaining time attached as context.
func (r *Run) Submit(ctx context.Context, text string) {
	if r.phase != models.PhaseRunning || r.pending || text == "" {
		return
	}
	r.transcript = append(r.transcript, models.Message{Role: models.RolePlayer, Content: text})
	r.pending = true
	r.dispatch(ctx, fmt.Sprintf("%s\n\n(Time remaining: %s)", text, models.FormatClock(r.secondsLeft)))
}

// dispatch fires the network call. Only the channel send touches the Run
// from the request goroutine.
func (r *Run) dispatch(ctx context.Context, payload string) {
	gen, narrator, replies := r.gen, r.narrator, r.replies
	go func() {
		text, err := narrator.Send(ctx, payload)
		replies <- reply{gen: gen, text: text, err: err}
	}()
}

func (r *Run) applyReply(rep reply) {
	if rep.gen != r.gen {
		return // reply from a superseded session
	}
	r.pending = false
	if rep.err != nil {
		r.transcript = append(r.transcript, models.Message{Role: models.RoleShip, Content: TransportErrMsg})
		return
	}
	r.transcript = append(r.transcript, models.Message{Role: models.RoleShip, Content: rep.text})

	report := puzzle.Scan(rep.text)
	r.tracker.Apply(report)
	if report.Mission && r.phase == models.PhaseRunning {
		// The narrator's verdict is authoritative, even if our own flags
		// haven't caught up.
		r.phase = models.PhaseWon
		r.terminalOpen = false
		r.terminalMachine = ""
		r.stopClock()
	}
}

func (r *Run) applyTick() {
	if r.phase != models.PhaseRunning {
		return
	}
	r.secondsLeft--
	if r.secondsLeft <= 0 {
		r.secondsLeft = 0
		r.phase = models.PhaseLost
		r.terminalOpen = false
		r.terminalMachine = ""
		r.stopClock()
	}
}

func (r *Run) stopClock() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
}

// Accessors used by the frontends. All of them must be called from the same
// goroutine that drives Pump.

func (r *Run) Phase() models.Phase              { return r.phase }
func (r *Run) SecondsLeft() int                 { return r.secondsLeft }
func (r *Run) Player() models.Player            { return r.player }
func (r *Run) Machines() []models.Machine       { return r.machines }
func (r *Run) Tracker() *puzzle.Tracker         { return r.tracker }
func (r *Run) Transcript() []models.Message     { return r.transcript }
func (r *Run) Pending() bool                    { return r.pending }
func (r *Run) TerminalOpen() bool               { return r.terminalOpen }
func (r *Run) TerminalMachine() models.SystemID { return r.terminalMachine }
