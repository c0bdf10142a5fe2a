package visualization

import (
	"fmt"
	"image/color"
	"skeet-sim/internal/common"
	"skeet-sim/internal/simulation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	gunRadius      = 8.0
	outlineWidth   = 2.0
	barrelLength   = 20.0
	pelletOnScreen = float32(simulation.PelletRadius)
)

var (
	backgroundColor = color.RGBA{200, 225, 245, 255} // sky
	pelletColor     = color.RGBA{30, 30, 30, 255}
	gunColor        = color.RGBA{90, 60, 40, 255}
	outlineColor    = color.RGBA{0, 0, 0, 160}

	kindColors = map[simulation.BehaviorKind]color.RGBA{
		simulation.Standard: {255, 255, 255, 255},
		simulation.Sinker:   {40, 40, 160, 255},
		simulation.Floater:  {240, 80, 80, 255},
		simulation.Crazy:    {250, 200, 30, 255},
	}
)

var (
	_ ebiten.Game       = (*Renderer)(nil)
	_ simulation.Drawer = (*Renderer)(nil)
)

// Renderer implements ebiten.Game. It steps the simulation once per tick and
// serves as the draw hook of every target.
type Renderer struct {
	sim *simulation.Simulation

	screenWidth  int
	screenHeight int

	canvas *ebiten.Image // set only while Draw runs
	aim    common.Position
	paused bool
}

// NewRenderer creates a renderer for a screen of the given size.
// Attach a simulation before running it.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{screenWidth: width, screenHeight: height}
}

// Attach sets the simulation to drive and display.
func (r *Renderer) Attach(sim *simulation.Simulation) {
	r.sim = sim
}

// Update is called every tick. Left click fires at the cursor, P pauses.
func (r *Renderer) Update() error {
	if r.sim == nil {
		return fmt.Errorf("renderer has no simulation attached")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		r.paused = !r.paused
	}
	if r.paused {
		return nil
	}

	x, y := ebiten.CursorPosition()
	r.aim = common.NewPosition(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		r.sim.FireAt(r.aim)
	}

	r.sim.Step()
	return nil
}

// Draw is called every frame to render the simulation.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	r.canvas = screen
	r.sim.Draw()
	r.canvas = nil

	for _, p := range r.sim.Pellets() {
		pos := p.GetPosition()
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), pelletOnScreen, pelletColor, true)
	}
	r.drawGun(screen)
	r.drawDebugInfo(screen)
}

// DrawTarget renders one target as a circle coloured by its kind.
func (r *Renderer) DrawTarget(t *simulation.Target) {
	if r.canvas == nil {
		return
	}
	pos := t.GetPosition()
	x, y, rad := float32(pos.X), float32(pos.Y), float32(t.GetRadius())

	vector.DrawFilledCircle(r.canvas, x, y, rad, kindColors[t.Kind()], true)
	vector.StrokeCircle(r.canvas, x, y, rad, outlineWidth, outlineColor, true)
	if t.Kind() == simulation.Crazy {
		// inner ring so crazy targets read differently from floaters at a glance
		vector.StrokeCircle(r.canvas, x, y, rad/2, outlineWidth, outlineColor, true)
	}
}

func (r *Renderer) drawGun(screen *ebiten.Image) {
	gun := r.sim.Gun()
	if gun == nil {
		return
	}
	m := gun.Muzzle()
	heading := common.NewVelocity(r.aim.X-m.X, r.aim.Y-m.Y).Heading()
	tip := common.VelocityFromPolar(barrelLength, heading)

	vector.StrokeLine(screen, float32(m.X), float32(m.Y), float32(m.X+tip.X), float32(m.Y+tip.Y), 4, gunColor, true)
	vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), gunRadius, gunColor, true)
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image) {
	st := r.sim.Stats()
	msg := fmt.Sprintf("Score: %d\n", st.Score)
	msg += fmt.Sprintf("Hits: %d  Escapes: %d  Shots: %d\n", st.Hits, st.Escapes, st.ShotsFired)
	msg += fmt.Sprintf("Targets: %d  Frame: %d\n", len(r.sim.Targets()), st.Frames)
	msg += fmt.Sprintf("FPS: %.1f, TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	if r.paused {
		msg += "PAUSED (P)\n"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout keeps the logical screen at the simulation size; ebiten scales the window.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenWidth, r.screenHeight
}
