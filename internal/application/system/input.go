package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/spearfall/internal/domain/entity"
	"github.com/younwookim/spearfall/internal/domain/geom"
	"github.com/younwookim/spearfall/internal/infrastructure/config"
)

// InputEvent is one key transition
type InputEvent struct {
	Key  ebiten.Key
	Down bool
}

// HandleResult tells the dispatcher whether to offer an event to the
// next handler
type HandleResult int

const (
	Continue HandleResult = iota
	Handled
)

// Handler consumes input events
type Handler interface {
	HandleEvent(ev InputEvent) HandleResult
}

// InputSystem turns ebiten key state into events and feeds them to the
// handlers in order
type InputSystem struct {
	handlers []Handler

	pressed  []ebiten.Key
	released []ebiten.Key
	events   []InputEvent
}

// NewInputSystem creates a new input system dispatching to handlers
func NewInputSystem(handlers ...Handler) *InputSystem {
	return &InputSystem{handlers: handlers}
}

// Poll collects this frame's key transitions from ebiten.
// Presses come before releases so a key tapped within one frame is not
// left held.
func (s *InputSystem) Poll() []InputEvent {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])

	s.events = s.events[:0]
	for _, k := range s.pressed {
		s.events = append(s.events, InputEvent{Key: k, Down: true})
	}
	for _, k := range s.released {
		s.events = append(s.events, InputEvent{Key: k, Down: false})
	}
	return s.events
}

// Dispatch offers ev to each handler until one returns Handled
func (s *InputSystem) Dispatch(ev InputEvent) HandleResult {
	for _, h := range s.handlers {
		if h.HandleEvent(ev) == Handled {
			return Handled
		}
	}
	return Continue
}

// DispatchAll dispatches every event in order
func (s *InputSystem) DispatchAll(events []InputEvent) {
	for _, ev := range events {
		s.Dispatch(ev)
	}
}

// Update polls ebiten and dispatches the frame's events
func (s *InputSystem) Update() {
	s.DispatchAll(s.Poll())
}

// Key bindings
var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys  = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace}
	fireKeys  = []ebiten.Key{ebiten.KeyF, ebiten.KeyJ}
)

func keyIn(k ebiten.Key, keys []ebiten.Key) bool {
	for _, c := range keys {
		if c == k {
			return true
		}
	}
	return false
}

// MotionHandler turns movement keys into player commands.
// Direction keys are level triggered, jump and fire are edge triggered.
type MotionHandler struct {
	held map[ebiten.Key]bool

	stop bool
	jump bool
	fire bool
}

// NewMotionHandler creates a motion handler with nothing held
func NewMotionHandler() *MotionHandler {
	return &MotionHandler{held: make(map[ebiten.Key]bool)}
}

// HandleEvent implements Handler
func (h *MotionHandler) HandleEvent(ev InputEvent) HandleResult {
	switch {
	case keyIn(ev.Key, leftKeys), keyIn(ev.Key, rightKeys):
		if ev.Down {
			h.held[ev.Key] = true
		} else {
			delete(h.held, ev.Key)
			if !h.anyHeld(leftKeys) && !h.anyHeld(rightKeys) {
				h.stop = true
			}
		}
		return Handled
	case keyIn(ev.Key, jumpKeys):
		if ev.Down {
			h.jump = true
		}
		return Handled
	case keyIn(ev.Key, fireKeys):
		if ev.Down {
			h.fire = true
		}
		return Handled
	}
	return Continue
}

func (h *MotionHandler) anyHeld(keys []ebiten.Key) bool {
	for _, k := range keys {
		if h.held[k] {
			return true
		}
	}
	return false
}

// Commands appends this tick's commands to buf and clears the one-shot ones
func (h *MotionHandler) Commands(buf []entity.Command) []entity.Command {
	left, right := h.anyHeld(leftKeys), h.anyHeld(rightKeys)
	switch {
	case left && right:
		buf = append(buf, entity.CmdStopHorizontal)
	case left:
		buf = append(buf, entity.CmdMoveLeft)
	case right:
		buf = append(buf, entity.CmdMoveRight)
	case h.stop:
		buf = append(buf, entity.CmdStopHorizontal)
	}
	if h.jump {
		buf = append(buf, entity.CmdJump)
	}
	if h.fire {
		buf = append(buf, entity.CmdFire)
	}

	h.stop, h.jump, h.fire = false, false, false
	return buf
}

// Reset forgets held keys and pending commands
func (h *MotionHandler) Reset() {
	clear(h.held)
	h.stop, h.jump, h.fire = false, false, false
}

// AppRequests are application level requests raised by keys
type AppRequests struct {
	Quit        bool
	TogglePause bool
	Reload      bool
}

// AppHandler handles quit, pause and reload keys
type AppHandler struct {
	pending AppRequests
}

// HandleEvent implements Handler
func (h *AppHandler) HandleEvent(ev InputEvent) HandleResult {
	if !ev.Down {
		return Continue
	}
	switch ev.Key {
	case ebiten.KeyEscape:
		h.pending.Quit = true
	case ebiten.KeyP:
		h.pending.TogglePause = true
	case ebiten.KeyR:
		h.pending.Reload = true
	default:
		return Continue
	}
	return Handled
}

// Take returns the pending requests and clears them
func (h *AppHandler) Take() AppRequests {
	r := h.pending
	h.pending = AppRequests{}
	return r
}

// StageSaver persists an edited stage
type StageSaver interface {
	SaveStage(name string, cfg *config.StageConfig) error
}

// EditorHandler edits stage platforms under the cursor.
// 1 adds a platform, 4 deletes the one under the cursor, 3 saves.
// Every edit is saved right away.
type EditorHandler struct {
	Stage  *Stage
	Saver  StageSaver
	Name   string
	Cursor func() geom.Vec2 // world coordinates

	// OnChange is called after the platform set changes
	OnChange func(*Stage)
}

// HandleEvent implements Handler
func (h *EditorHandler) HandleEvent(ev InputEvent) HandleResult {
	if !ev.Down {
		return Continue
	}
	switch ev.Key {
	case ebiten.KeyDigit1:
		h.add()
	case ebiten.KeyDigit4:
		h.remove()
	case ebiten.KeyDigit3:
		h.save()
	default:
		return Continue
	}
	return Handled
}

func (h *EditorHandler) cursor() geom.Vec2 {
	if h.Cursor == nil {
		return geom.Vec2{}
	}
	return h.Cursor()
}

func (h *EditorHandler) add() {
	c := h.cursor()
	h.Stage.AddPlatform(config.PlatformConfig{X: c.X, Y: c.Y})
	h.changed()
}

func (h *EditorHandler) remove() {
	i := h.Stage.PlatformAt(h.cursor())
	if i < 0 {
		return
	}
	h.Stage.RemovePlatform(i)
	h.changed()
}

func (h *EditorHandler) changed() {
	if h.OnChange != nil {
		h.OnChange(h.Stage)
	}
	h.save()
}

func (h *EditorHandler) save() {
	if h.Saver == nil {
		return
	}
	if err := h.Saver.SaveStage(h.Name, h.Stage.Config); err != nil {
		log.Printf("Failed to save stage %s: %v", h.Name, err)
		return
	}
	log.Printf("Saved stage %s (%d platforms)", h.Name, len(h.Stage.Platforms))
}
