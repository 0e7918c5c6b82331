package entity

import "github.com/younwookim/spearfall/internal/domain/geom"

// Default body tuning in pixels and seconds.
const (
	DefaultGravity  = 980.0 // px/s², downward
	DefaultMaxSpeed = 300.0 // px/s
)

// KineticBody is the motion and collision state shared by every dynamic
// actor. Actors embed it and drive it through Acceleration.
type KineticBody struct {
	Rect         geom.Rect
	Velocity     geom.Vec2
	Acceleration geom.Vec2 // cleared after every Integrate
	Gravity      geom.Vec2
	MaxSpeed     float64

	// Grounded is true iff the last vertical scan snapped the body onto
	// an obstacle's top edge while falling.
	Grounded bool
}

// NewKineticBody creates a body at rect with default gravity and max speed
func NewKineticBody(rect geom.Rect) KineticBody {
	return KineticBody{
		Rect:     rect,
		Gravity:  geom.V(0, DefaultGravity),
		MaxSpeed: DefaultMaxSpeed,
	}
}

// CollisionOutcome counts the obstacles a body touched on each axis
// during one Integrate call.
type CollisionOutcome struct {
	Vertical   int
	Horizontal int
}

// Collided reports whether any contact happened this tick
func (c CollisionOutcome) Collided() bool {
	return c.Vertical > 0 || c.Horizontal > 0
}

// Integrate advances the body by dt seconds and resolves overlap with
// obstacles. The step is discrete: the rect moves first, then the vertical
// axis is resolved, then the horizontal axis on the corrected rect.
//
// Obstacles are scanned in slice order. When several obstacles are touched
// on one axis every snap is applied in that order, so the last one wins.
// A masked obstacle whose mask misses the body is skipped and the scan
// goes on with the next obstacle.
func (b *KineticBody) Integrate(dt float64, obstacles []*Obstacle) CollisionOutcome {
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	b.Velocity = b.Velocity.Add(b.Gravity.Scale(dt))
	b.Velocity = b.Velocity.ClampLen(b.MaxSpeed)

	b.Rect = b.Rect.Translate(b.Velocity.Scale(dt))

	var out CollisionOutcome
	out.Vertical = b.resolveVertical(obstacles)
	out.Horizontal = b.resolveHorizontal(obstacles)

	b.Acceleration = geom.Vec2{}
	return out
}

// resolveVertical snaps the body out of every touched obstacle along Y
func (b *KineticBody) resolveVertical(obstacles []*Obstacle) int {
	b.Grounded = false

	hits := b.touching(obstacles)
	falling := b.Velocity.Y > 0
	rising := b.Velocity.Y < 0

	for _, o := range hits {
		r := o.Rect()
		if falling {
			b.Rect.SetBottom(r.Top())
			b.Velocity.Y = 0
			b.Grounded = true
		} else if rising {
			b.Rect.SetTop(r.Bottom())
			b.Velocity.Y = 0
		}
	}
	return len(hits)
}

// resolveHorizontal snaps the body out of every touched obstacle along X
func (b *KineticBody) resolveHorizontal(obstacles []*Obstacle) int {
	hits := b.touching(obstacles)
	right := b.Velocity.X > 0
	left := b.Velocity.X < 0

	for _, o := range hits {
		r := o.Rect()
		if right {
			b.Rect.SetRight(r.Left())
			b.Velocity.X = 0
		} else if left {
			b.Rect.SetLeft(r.Right())
			b.Velocity.X = 0
		}
	}
	return len(hits)
}

// touching collects the obstacles in contact with the current rect.
// Hits are gathered before any snap so one axis scan sees a single rect.
func (b *KineticBody) touching(obstacles []*Obstacle) []*Obstacle {
	var hits []*Obstacle
	for _, o := range obstacles {
		if o.Touches(b.Rect) {
			hits = append(hits, o)
		}
	}
	return hits
}
