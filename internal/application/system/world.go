package system

import (
	"fmt"

	"github.com/younwookim/spearfall/internal/domain/entity"
	"github.com/younwookim/spearfall/internal/domain/geom"
	"github.com/younwookim/spearfall/internal/infrastructure/config"
)

// StepResult reports what happened during one World.Step
type StepResult struct {
	// FellOut is true only on the tick the player first drops past the
	// fall threshold.
	FellOut bool

	Player        entity.CollisionOutcome
	SpearsFired   int
	SpearsEvicted int
	EnemiesLost   int // enemies removed after falling out
}

// EntityView is a read-only snapshot of one actor for rendering
type EntityView struct {
	ID          entity.EntityID
	Kind        entity.Kind
	Rect        geom.Rect
	Rotation    float64
	FacingRight bool
	Stuck       bool
	Grounded    bool
}

// PolicyFactory builds a decision source from a stage policy name
type PolicyFactory func(name string) (entity.DecisionSource, error)

// World owns the obstacles and actors of one running stage and advances
// them with a fixed order: player, enemies, spears.
type World struct {
	config *config.PhysicsConfig

	obstacles []*entity.Obstacle
	player    *entity.Player
	enemies   []*entity.Enemy
	spears    []*entity.Spear

	nextID   entity.EntityID
	spearSeq uint64
	clock    float64
	fellOut  bool
}

// NewWorld creates an empty world
func NewWorld(cfg *config.PhysicsConfig) *World {
	return &World{config: cfg}
}

// Config returns the physics configuration
func (w *World) Config() *config.PhysicsConfig { return w.config }

// Clock returns the simulated time in seconds
func (w *World) Clock() float64 { return w.clock }

// Step advances the world by dt seconds. cmds are player commands for
// this tick and are applied in order before any integration.
func (w *World) Step(dt float64, cmds []entity.Command) StepResult {
	var res StepResult

	dt = w.clampDT(dt)
	w.clock += dt

	if w.player != nil {
		for _, cmd := range cmds {
			if cmd == entity.CmdFire {
				w.fire(&res)
				continue
			}
			w.player.ApplyCommand(cmd)
		}
		res.Player = w.player.Integrate(dt, w.obstacles)
	}

	w.updateEnemies(dt, &res)

	for _, s := range w.spears {
		s.Update(dt, w.obstacles)
	}
	res.SpearsEvicted += w.enforceSpearCap()

	if w.player != nil && !w.fellOut && w.player.Rect.Y > w.config.World.FallThreshold {
		w.fellOut = true
		res.FellOut = true
	}

	return res
}

func (w *World) clampDT(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if limit := w.config.Physics.MaxDT; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

func (w *World) fire(res *StepResult) {
	w.spawnSpear(w.player.Rect.Center(), w.player.AimDirection())
	res.SpearsFired++
	res.SpearsEvicted += w.enforceSpearCap()
}

func (w *World) updateEnemies(dt float64, res *StepResult) {
	var target *geom.Rect
	if w.player != nil {
		r := w.player.Rect
		target = &r
	}

	alive := w.enemies[:0]
	for _, e := range w.enemies {
		e.Think(target)
		e.Update(dt, w.obstacles)
		if e.Rect.Y > w.config.World.FallThreshold {
			res.EnemiesLost++
			continue
		}
		alive = append(alive, e)
	}
	clear(w.enemies[len(alive):])
	w.enemies = alive
}

// enforceSpearCap drops the oldest spears until the cap holds
func (w *World) enforceSpearCap() int {
	limit := w.config.World.SpearCap
	if limit <= 0 {
		return 0
	}

	evicted := 0
	for len(w.spears) > limit {
		oldest := 0
		for i, s := range w.spears {
			if s.OlderThan(w.spears[oldest]) {
				oldest = i
			}
		}
		w.spears = append(w.spears[:oldest], w.spears[oldest+1:]...)
		evicted++
	}
	return evicted
}

// FellOut reports whether the player has dropped out of the stage since
// the last Reset
func (w *World) FellOut() bool { return w.fellOut }

// Obstacles returns the obstacles in scan order
func (w *World) Obstacles() []*entity.Obstacle { return w.obstacles }

// SetObstacles replaces every obstacle, keeping the given order
func (w *World) SetObstacles(obs []*entity.Obstacle) {
	w.obstacles = append([]*entity.Obstacle(nil), obs...)
}

// AddObstacle appends an obstacle built from rect and an optional mask
func (w *World) AddObstacle(rect geom.Rect, mask *entity.Mask) *entity.Obstacle {
	o := entity.NewMaskedObstacle(w.allocID(), rect, mask)
	w.obstacles = append(w.obstacles, o)
	return o
}

// RemoveObstacleAt removes the first obstacle whose rect contains p
func (w *World) RemoveObstacleAt(p geom.Vec2) bool {
	for i, o := range w.obstacles {
		if o.Rect().ContainsPoint(p) {
			w.obstacles = append(w.obstacles[:i], w.obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// SpawnPlayer places the player with its top-left corner at pos,
// replacing any previous player
func (w *World) SpawnPlayer(pos geom.Vec2) *entity.Player {
	c := w.config.Player
	loco := entity.Locomotion{MoveAccel: c.MoveAccel, JumpImpulse: c.JumpImpulse}
	p := entity.NewPlayer(w.allocID(), pos.X, pos.Y, c.Width, c.Height, loco)
	w.applyPhysics(&p.KineticBody)
	w.player = p
	w.fellOut = false
	return p
}

// SpawnEnemy places an enemy with its top-left corner at pos
func (w *World) SpawnEnemy(pos geom.Vec2, policy entity.DecisionSource) *entity.Enemy {
	c := w.config.Enemy
	loco := entity.Locomotion{MoveAccel: c.MoveAccel, JumpImpulse: c.JumpImpulse}
	e := entity.NewEnemy(w.allocID(), pos.X, pos.Y, c.Width, c.Height, loco, policy)
	w.applyPhysics(&e.KineticBody)
	w.enemies = append(w.enemies, e)
	return e
}

// SpawnSpear launches a spear centered on center toward direction.
// The population cap is enforced right away.
func (w *World) SpawnSpear(center, direction geom.Vec2) *entity.Spear {
	s := w.spawnSpear(center, direction)
	w.enforceSpearCap()
	return s
}

func (w *World) spawnSpear(center, direction geom.Vec2) *entity.Spear {
	c := w.config.Spear
	s := entity.NewSpear(w.allocID(), center, c.Width, c.Height, direction, c.LaunchSpeed, w.clock, w.spearSeq)
	w.spearSeq++
	w.applyPhysics(&s.KineticBody)
	w.spears = append(w.spears, s)
	return s
}

func (w *World) applyPhysics(b *entity.KineticBody) {
	b.Gravity = geom.V(0, w.config.Physics.Gravity)
	b.MaxSpeed = w.config.Physics.MaxSpeed
}

func (w *World) allocID() entity.EntityID {
	w.nextID++
	return w.nextID
}

// Player returns the player, or nil
func (w *World) Player() *entity.Player { return w.player }

// Enemies returns the live enemies
func (w *World) Enemies() []*entity.Enemy { return w.enemies }

// Spears returns the live spears, oldest first
func (w *World) Spears() []*entity.Spear { return w.spears }

// Views snapshots every actor for the renderer: player, enemies, spears
func (w *World) Views() []EntityView {
	views := make([]EntityView, 0, 1+len(w.enemies)+len(w.spears))

	if p := w.player; p != nil {
		views = append(views, EntityView{
			ID:          p.ID(),
			Kind:        entity.KindPlayer,
			Rect:        p.Rect,
			FacingRight: p.Facing == entity.FacingRight,
			Grounded:    p.Grounded,
		})
	}
	for _, e := range w.enemies {
		views = append(views, EntityView{
			ID:          e.ID(),
			Kind:        entity.KindEnemy,
			Rect:        e.Rect,
			FacingRight: e.Facing == entity.FacingRight,
			Grounded:    e.Grounded,
		})
	}
	for _, s := range w.spears {
		views = append(views, EntityView{
			ID:          s.ID(),
			Kind:        entity.KindSpear,
			Rect:        s.Rect,
			Rotation:    s.Rotation,
			FacingRight: s.Velocity.X >= 0,
			Stuck:       s.Stuck,
			Grounded:    s.Grounded,
		})
	}
	return views
}

// Reset removes every actor and clears the fall-out flag.
// Obstacles are kept.
func (w *World) Reset() {
	w.player = nil
	w.enemies = nil
	w.spears = nil
	w.fellOut = false
	w.clock = 0
	w.spearSeq = 0
}

// LoadStage resets the world and populates it from stage: obstacles,
// the player at the spawn point and every enemy spawn
func (w *World) LoadStage(stage *Stage, policies PolicyFactory) error {
	w.Reset()
	w.SetObstacles(stage.Obstacles())

	w.SpawnPlayer(geom.V(stage.Config.PlayerSpawn.X, stage.Config.PlayerSpawn.Y))

	for _, sp := range stage.Config.Enemies {
		var policy entity.DecisionSource
		if policies != nil {
			p, err := policies(sp.Policy)
			if err != nil {
				return fmt.Errorf("failed to build enemy policy: %w", err)
			}
			policy = p
		}
		w.SpawnEnemy(geom.V(sp.X, sp.Y), policy)
	}

	return nil
}
