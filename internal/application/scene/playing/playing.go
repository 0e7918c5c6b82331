// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/spearfall/internal/application/ai"
	"github.com/younwookim/spearfall/internal/application/camera"
	"github.com/younwookim/spearfall/internal/application/replay"
	"github.com/younwookim/spearfall/internal/application/scene"
	"github.com/younwookim/spearfall/internal/application/state"
	"github.com/younwookim/spearfall/internal/application/system"
	"github.com/younwookim/spearfall/internal/domain/entity"
	"github.com/younwookim/spearfall/internal/domain/geom"
	"github.com/younwookim/spearfall/internal/infrastructure/asset"
	"github.com/younwookim/spearfall/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorPlatform = color.RGBA{90, 70, 50, 255}
	colorPlayer   = color.RGBA{60, 120, 220, 255}
	colorEnemy    = color.RGBA{200, 60, 60, 255}
	colorSpear    = color.RGBA{120, 90, 40, 255}
	colorStuck    = color.RGBA{80, 60, 30, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 150}
	colorBarEdge  = color.RGBA{0, 0, 0, 255}
	colorBarFill  = color.RGBA{255, 255, 255, 255}
	colorDefault  = color.RGBA{200, 255, 253, 255}
)

// SpriteSource supplies scaled sprite art; missing art yields false
type SpriteSource interface {
	Scaled(name string, w, h int, mode asset.ScaleMode) (image.Image, bool)
}

// Options configures a Playing scene
type Options struct {
	Physics   *config.PhysicsConfig
	Stage     *config.StageConfig
	StageName string

	// Saver persists editor changes; Editor enables the platform keys
	Saver  system.StageSaver
	Editor bool

	// Composer and Sprites may be nil, everything is then drawn as rects
	Composer system.PlatformComposer
	Sprites  SpriteSource

	Seed int64

	// Recorder captures simulated ticks; Replayer substitutes recorded
	// commands for live input. Either may be nil.
	Recorder *replay.Recorder
	Replayer *replay.Replayer
}

// Playing is the main gameplay scene
type Playing struct {
	opts  Options
	state state.GameState

	stage  *system.Stage
	world  *system.World
	camera *camera.Camera
	rng    *rand.Rand

	input  *system.InputSystem
	app    *system.AppHandler
	motion *system.MotionHandler
	editor *system.EditorHandler
	cmds   []entity.Command

	screenW int
	screenH int
	bg      color.Color

	// cursor overrides the mouse position in tests
	cursor func() geom.Vec2

	platformImages map[*entity.Obstacle]*ebiten.Image
	sprites        map[string]*ebiten.Image
}

// New creates a new Playing scene
func New(opts Options) (*Playing, error) {
	disp := opts.Physics.Display
	cam := opts.Physics.Camera

	p := &Playing{
		opts:           opts,
		state:          state.StatePlaying,
		world:          system.NewWorld(opts.Physics),
		camera:         camera.New(float64(disp.ScreenWidth), float64(disp.ScreenHeight), cam.DeadZone, cam.Smoothness),
		rng:            rand.New(rand.NewSource(opts.Seed)),
		app:            &system.AppHandler{},
		motion:         system.NewMotionHandler(),
		screenW:        disp.ScreenWidth,
		screenH:        disp.ScreenHeight,
		bg:             parseHexColor(opts.Stage.Background.Color, colorDefault),
		platformImages: make(map[*entity.Obstacle]*ebiten.Image),
		sprites:        make(map[string]*ebiten.Image),
	}
	p.cursor = p.mouseWorld

	if err := p.load(); err != nil {
		return nil, err
	}

	handlers := []system.Handler{p.app}
	if opts.Editor {
		p.state = state.StateEditing
		p.editor = &system.EditorHandler{
			Stage:    p.stage,
			Saver:    opts.Saver,
			Name:     opts.StageName,
			Cursor:   func() geom.Vec2 { return p.cursor() },
			OnChange: p.stageChanged,
		}
		handlers = append(handlers, p.editor)
	}
	handlers = append(handlers, p.motion)
	p.input = system.NewInputSystem(handlers...)

	return p, nil
}

// load builds the stage and populates the world from it
func (p *Playing) load() error {
	p.stage = system.LoadStage(p.opts.Stage, p.opts.Composer)
	clear(p.platformImages)

	policies := func(name string) (entity.DecisionSource, error) {
		return ai.New(name, p.rng)
	}
	if err := p.world.LoadStage(p.stage, policies); err != nil {
		return fmt.Errorf("failed to load stage %s: %w", p.opts.StageName, err)
	}

	if pl := p.world.Player(); pl != nil {
		p.camera.SnapTo(pl.Rect)
	}
	if p.editor != nil {
		p.editor.Stage = p.stage
	}
	return nil
}

func (p *Playing) stageChanged(s *system.Stage) {
	p.world.SetObstacles(s.Obstacles())
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	return nil, p.step(dt, p.input.Poll())
}

// step runs one frame for the given input events
func (p *Playing) step(dt float64, events []system.InputEvent) error {
	p.input.DispatchAll(events)

	req := p.app.Take()
	if req.Quit {
		return ebiten.Termination
	}
	if req.Reload && p.state == state.StateGameOver {
		if err := p.restart(); err != nil {
			return err
		}
	}
	if req.TogglePause {
		p.togglePause()
	}

	p.cmds = p.motion.Commands(p.cmds[:0])

	if p.state.Simulating() {
		p.simulate(dt)
	}

	if pl := p.world.Player(); pl != nil {
		p.camera.Update(pl.Rect)
	}
	return nil
}

func (p *Playing) simulate(dt float64) {
	cmds := p.cmds
	if rp := p.opts.Replayer; rp != nil {
		var ok bool
		if dt, cmds, ok = rp.Next(); !ok {
			log.Printf("Replay finished after %d frames", rp.TotalFrames())
			p.state = state.StateGameOver
			return
		}
	}
	if rec := p.opts.Recorder; rec != nil {
		rec.Record(dt, cmds)
	}

	res := p.world.Step(dt, cmds)
	if res.FellOut {
		log.Printf("Game over: player fell out of stage %s", p.opts.StageName)
		p.state = state.StateGameOver
		if rec := p.opts.Recorder; rec != nil {
			rec.Stop()
		}
	}
}

func (p *Playing) togglePause() {
	switch p.state {
	case state.StatePlaying, state.StateEditing:
		p.state = state.StatePaused
	case state.StatePaused:
		p.state = p.runState()
	}
}

func (p *Playing) runState() state.GameState {
	if p.opts.Editor {
		return state.StateEditing
	}
	return state.StatePlaying
}

func (p *Playing) restart() error {
	p.motion.Reset()
	if err := p.load(); err != nil {
		return err
	}
	if p.opts.Replayer != nil {
		p.opts.Replayer.Reset()
	}
	p.state = p.runState()
	log.Printf("Stage %s reloaded", p.opts.StageName)
	return nil
}

// State returns the current run state
func (p *Playing) State() state.GameState { return p.state }

// World returns the simulated world
func (p *Playing) World() *system.World { return p.world }

// Stage returns the loaded stage
func (p *Playing) Stage() *system.Stage { return p.stage }

func (p *Playing) mouseWorld() geom.Vec2 {
	x, y := ebiten.CursorPosition()
	return p.camera.ReversePoint(geom.V(float64(x), float64(y)))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg)

	p.drawPlatforms(screen)
	for _, v := range p.world.Views() {
		switch v.Kind {
		case entity.KindPlayer:
			p.drawActor(screen, v, p.opts.Physics.Player.Sprite, colorPlayer)
		case entity.KindEnemy:
			p.drawActor(screen, v, p.opts.Physics.Enemy.Sprite, colorEnemy)
		case entity.KindSpear:
			p.drawSpear(screen, v)
		}
	}

	if p.opts.Editor {
		ebitenutil.DebugPrintAt(screen, "EDITOR  1:add  3:save  4:delete", 10, p.screenH-20)
	}

	switch p.state {
	case state.StatePaused:
		p.drawPauseBars(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image) {
	for _, pl := range p.stage.Platforms {
		r := p.camera.Apply(pl.Obstacle.Rect())
		if pl.Art == nil {
			fillRect(screen, r, colorPlatform)
			continue
		}

		img, ok := p.platformImages[pl.Obstacle]
		if !ok {
			img = ebiten.NewImageFromImage(pl.Art)
			p.platformImages[pl.Obstacle] = img
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.X, r.Y)
		screen.DrawImage(img, op)
	}
}

// sprite returns the ebiten image for a named sprite at w x h, or nil
func (p *Playing) sprite(name string, w, h int) *ebiten.Image {
	if name == "" || p.opts.Sprites == nil {
		return nil
	}
	key := fmt.Sprintf("%s@%dx%d", name, w, h)
	if img, ok := p.sprites[key]; ok {
		return img
	}

	var img *ebiten.Image
	if src, ok := p.opts.Sprites.Scaled(name, w, h, asset.ScalePixel); ok {
		img = ebiten.NewImageFromImage(src)
	}
	p.sprites[key] = img
	return img
}

func (p *Playing) drawActor(screen *ebiten.Image, v system.EntityView, spriteName string, fallback color.Color) {
	r := p.camera.Apply(v.Rect)

	img := p.sprite(spriteName, int(v.Rect.W), int(v.Rect.H))
	if img == nil {
		fillRect(screen, r, fallback)
		return
	}

	op := &ebiten.DrawImageOptions{}
	if !v.FacingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(v.Rect.W, 0)
	}
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}

func (p *Playing) drawSpear(screen *ebiten.Image, v system.EntityView) {
	r := p.camera.Apply(v.Rect)
	c := r.Center()

	img := p.sprite(p.opts.Physics.Spear.Sprite, int(v.Rect.W), int(v.Rect.H))
	if img == nil {
		clr := colorSpear
		if v.Stuck {
			clr = colorStuck
		}
		half := v.Rect.W / 2
		dx, dy := math.Cos(v.Rotation)*half, math.Sin(v.Rotation)*half
		vector.StrokeLine(screen, float32(c.X-dx), float32(c.Y-dy), float32(c.X+dx), float32(c.Y+dy), 3, clr, true)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-v.Rect.W/2, -v.Rect.H/2)
	op.GeoM.Rotate(v.Rotation)
	op.GeoM.Translate(c.X, c.Y)
	screen.DrawImage(img, op)
}

func (p *Playing) drawPauseBars(screen *ebiten.Image) {
	for _, bar := range []geom.Rect{geom.R(10, 10, 10, 30), geom.R(30, 10, 10, 30)} {
		fillRect(screen, bar.Inflate(2, 2), colorBarEdge)
		fillRect(screen, bar, colorBarFill)
	}
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	fillRect(screen, geom.R(0, 0, float64(p.screenW), float64(p.screenH)), colorOverlay)
	text := "GAME OVER\n\nPress R to restart\nPress ESC to quit"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func fillRect(dst *ebiten.Image, r geom.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// parseHexColor parses "#RRGGBB", returning fallback on any error
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{r, g, b, 255}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.motion.Reset()
}
