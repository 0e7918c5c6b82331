package entity

import "github.com/younwookim/spearfall/internal/domain/geom"

// Enemy defaults, pixels and seconds
const (
	DefaultEnemyWidth       = 40.0
	DefaultEnemyHeight      = 40.0
	DefaultEnemyJumpImpulse = 350.0
	DefaultEnemyMoveAccel   = 3000.0
)

// Observation is what a decision source sees of the world each tick
type Observation struct {
	Self      geom.Rect
	Velocity  geom.Vec2
	Grounded  bool
	HitWall   bool // horizontal contact on the previous tick
	Target    geom.Rect
	HasTarget bool
}

// Features returns the normalized input vector used by learned policies:
// target dx, target dy, grounded, vx, vy.
func (o Observation) Features() []float64 {
	var dx, dy float64
	if o.HasTarget {
		d := o.Target.Center().Sub(o.Self.Center())
		dx, dy = d.X/1000, d.Y/1000
	}
	grounded := 0.0
	if o.Grounded {
		grounded = 1
	}
	return []float64{dx, dy, grounded, o.Velocity.X / 500, o.Velocity.Y / 500}
}

// DecisionSource picks one command per tick for a non-player actor
type DecisionSource interface {
	Decide(obs Observation) Command
}

// Enemy is an actor steered by a pluggable decision source
type Enemy struct {
	KineticBody
	Locomotion

	id          EntityID
	Policy      DecisionSource
	LastCommand Command
	LastOutcome CollisionOutcome
}

// NewEnemy creates an enemy whose top-left corner is at (x, y).
// A nil policy leaves the enemy idle.
func NewEnemy(id EntityID, x, y, w, h float64, loco Locomotion, policy DecisionSource) *Enemy {
	return &Enemy{
		KineticBody: NewKineticBody(geom.R(x, y, w, h)),
		Locomotion:  loco,
		id:          id,
		Policy:      policy,
	}
}

// ID returns the enemy's identifier
func (e *Enemy) ID() EntityID { return e.id }

// Body returns the enemy's kinetic body
func (e *Enemy) Body() *KineticBody { return &e.KineticBody }

// ApplyCommand applies a movement command
func (e *Enemy) ApplyCommand(cmd Command) {
	e.Locomotion.Apply(&e.KineticBody, cmd)
}

// Observe builds the enemy's view of the world, target is usually the player
func (e *Enemy) Observe(target *geom.Rect) Observation {
	obs := Observation{
		Self:     e.Rect,
		Velocity: e.Velocity,
		Grounded: e.Grounded,
		HitWall:  e.LastOutcome.Horizontal > 0,
	}
	if target != nil {
		obs.Target = *target
		obs.HasTarget = true
	}
	return obs
}

// Think asks the policy for a command and applies it
func (e *Enemy) Think(target *geom.Rect) Command {
	cmd := CmdNone
	if e.Policy != nil {
		cmd = e.Policy.Decide(e.Observe(target))
	}
	e.ApplyCommand(cmd)
	e.LastCommand = cmd
	return cmd
}

// Update integrates the enemy's body and remembers the outcome
func (e *Enemy) Update(dt float64, obstacles []*Obstacle) CollisionOutcome {
	e.LastOutcome = e.Integrate(dt, obstacles)
	return e.LastOutcome
}
