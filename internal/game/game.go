package game

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
	"github.com/JihunPark03/Gemini3Hackathon/internal/sim"
)

var (
	colorBackground = color.RGBA{18, 20, 32, 255}
	colorFloor      = color.RGBA{28, 31, 46, 255}
	colorPlayer     = color.RGBA{120, 220, 130, 255}
	colorPanel      = color.RGBA{10, 12, 20, 235}
	colorBroken     = color.RGBA{255, 106, 94, 255}
	colorFixed      = color.RGBA{94, 232, 255, 255}
)

// Game is the Ebitengine shell around a Run. It owns nothing but input
// plumbing and drawing; every rule lives in the Run and the sim reducers.
type Game struct {
	ctx      context.Context
	run      *Run
	lastTick time.Time
	inputBuf []rune
}

func NewGame(ctx context.Context, run *Run) *Game {
	return &Game{ctx: ctx, run: run}
}

// Update implements ebiten.Game. Delta time comes from the monotonic clock,
// not the nominal tick rate, so movement speed survives frame drops.
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now
	if dt > 0.1 {
		dt = 0.1 // window drag or debugger pause, don't teleport
	}

	g.run.Pump()

	switch g.run.Phase() {
	case models.PhaseNotStarted:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.run.Start(g.ctx)
		}
	case models.PhaseWon, models.PhaseLost:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.run.Start(g.ctx)
		}
	case models.PhaseRunning:
		if g.run.TerminalOpen() {
			g.updateTerminal()
		} else {
			g.run.StepPlayer(heldKeys(), dt)
			if inpututil.IsKeyJustPressed(ebiten.KeyE) {
				g.run.Interact(g.ctx)
			}
		}
	}
	return nil
}

// heldKeys snapshots the directional keys. Arrows and WASD are equivalent.
func heldKeys() sim.KeyState {
	return sim.KeyState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func (g *Game) updateTerminal() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.run.CloseTerminal()
		g.inputBuf = g.inputBuf[:0]
		return
	}
	if g.run.Pending() {
		return // input line disabled until the reply lands
	}
	g.inputBuf = ebiten.AppendInputChars(g.inputBuf)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.inputBuf) > 0 {
		g.inputBuf = g.inputBuf[:len(g.inputBuf)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		text := strings.TrimSpace(string(g.inputBuf))
		if text != "" {
			g.run.Submit(g.ctx, text)
			g.inputBuf = g.inputBuf[:0]
		}
	}
}

// Draw implements ebiten.Game. Rectangles and debug text only; sprite art is
// a separate concern and the game is fully playable without it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	vector.DrawFilledRect(screen, 8, 8, models.WorldWidth-16, models.WorldHeight-16, colorFloor, false)

	switch g.run.Phase() {
	case models.PhaseNotStarted:
		g.drawCentered(screen, []string{
			"KESTREL // EMERGENCY REPAIR PROTOCOL",
			"",
			"Three ship systems are down. You have 3:00.",
			"Walk with WASD or the arrow keys. Press E at a machine.",
			"",
			"Press ENTER to begin.",
		})
		return
	case models.PhaseWon:
		g.drawWorld(screen)
		g.drawCentered(screen, []string{"MISSION SUCCESS", "", "Press R to play again."})
		return
	case models.PhaseLost:
		g.drawWorld(screen)
		g.drawCentered(screen, []string{"OUT OF TIME", "", "The KESTREL drifts on. Press R to retry."})
		return
	}

	g.drawWorld(screen)
	g.drawHUD(screen)
	if g.run.TerminalOpen() {
		g.drawTerminal(screen)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	for _, m := range g.run.Machines() {
		vector.DrawFilledRect(screen, float32(m.X), float32(m.Y), float32(m.Width), float32(m.Height), hexColor(m.Color), false)
		lamp := colorBroken
		if g.run.Tracker().Status(m.ID) == models.StatusFixed {
			lamp = colorFixed
		}
		vector.DrawFilledRect(screen, float32(m.X+m.Width-14), float32(m.Y+6), 8, 8, lamp, false)
		ebitenutil.DebugPrintAt(screen, m.Name, int(m.X), int(m.Y+m.Height)+4)
	}

	p := g.run.Player()
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), colorPlayer, false)
	// Walk cycle and facing shown as a sliding "visor" strip until real
	// sprites land: it bobs with the frame index and sits on the facing side.
	visorX := p.X + p.Width - 14
	if p.FacingLeft {
		visorX = p.X + 4
	}
	visorY := p.Y + 8 + float64(p.Frame%2)*3
	vector.DrawFilledRect(screen, float32(visorX), float32(visorY), 10, 6, colorBackground, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "T-"+models.FormatClock(g.run.SecondsLeft()), 16, 14)

	t := g.run.Tracker()
	x := 120
	for _, id := range t.Order() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", id, t.Status(id)), x, 14)
		x += 180
	}

	if _, ok := sim.FirstInRange(g.run.Player(), g.run.Machines()); ok && !g.run.TerminalOpen() {
		ebitenutil.DebugPrintAt(screen, "[E] access terminal", 16, int(models.WorldHeight)-24)
	}
}

func (g *Game) drawTerminal(screen *ebiten.Image) {
	const margin = 60
	vector.DrawFilledRect(screen, margin, margin, models.WorldWidth-2*margin, models.WorldHeight-2*margin, colorPanel, false)

	header := fmt.Sprintf("// %s TERMINAL — Esc to step away", g.run.TerminalMachine())
	ebitenutil.DebugPrintAt(screen, header, margin+12, margin+10)

	const lineHeight = 16
	const maxLines = 24
	var lines []string
	for _, msg := range g.run.Transcript() {
		prefix := "SHIP> "
		if msg.Role == models.RolePlayer {
			prefix = "YOU>  "
		}
		lines = append(lines, wrapText(prefix+msg.Content, 82)...)
		lines = append(lines, "")
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	y := margin + 36
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, margin+12, y)
		y += lineHeight
	}

	prompt := "> " + string(g.inputBuf) + "_"
	if g.run.Pending() {
		prompt = "... awaiting ship computer ..."
	}
	ebitenutil.DebugPrintAt(screen, prompt, margin+12, int(models.WorldHeight)-margin-24)
}

func (g *Game) drawCentered(screen *ebiten.Image, lines []string) {
	y := int(models.WorldHeight)/2 - len(lines)*8
	for _, line := range lines {
		x := int(models.WorldWidth)/2 - len(line)*3
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += 18
	}
}

// Layout implements ebiten.Game. World units are pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(models.WorldWidth), int(models.WorldHeight)
}

// hexColor parses "#rrggbb"; unparseable values fall back to white.
func hexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{255, 255, 255, 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

// wrapText breaks s into lines at most width runes long, on word boundaries
// where possible.
func wrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}
