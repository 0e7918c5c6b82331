package entity

import "github.com/younwookim/spearfall/internal/domain/geom"

// Spear defaults, pixels and seconds
const (
	DefaultSpearWidth       = 40.0
	DefaultSpearHeight      = 8.0
	DefaultSpearLaunchSpeed = 500.0
)

// Spear is a thrown projectile. It flies under gravity until its first
// contact and then stays stuck where it landed for good.
type Spear struct {
	KineticBody

	id        EntityID
	Stuck     bool
	CreatedAt float64 // world clock seconds at spawn
	Seq       uint64  // spawn order, breaks CreatedAt ties
	Rotation  float64 // radians, cosmetic only
}

// NewSpear creates a spear centered on center. direction is normalized and
// scaled by launchSpeed; a zero direction gives a spear with no velocity.
func NewSpear(id EntityID, center geom.Vec2, w, h float64, direction geom.Vec2, launchSpeed, createdAt float64, seq uint64) *Spear {
	s := &Spear{
		KineticBody: NewKineticBody(geom.RectAt(center, w, h)),
		id:          id,
		CreatedAt:   createdAt,
		Seq:         seq,
	}
	s.Velocity = direction.Normalize().Scale(launchSpeed)
	if !s.Velocity.IsZero() {
		s.Rotation = s.Velocity.Angle()
	}
	return s
}

// ID returns the spear's identifier
func (s *Spear) ID() EntityID { return s.id }

// Body returns the spear's kinetic body
func (s *Spear) Body() *KineticBody { return &s.KineticBody }

// Update advances a flying spear. Any collision sticks it permanently
// and leaves the rotation as it was before impact.
func (s *Spear) Update(dt float64, obstacles []*Obstacle) {
	if s.Stuck {
		return
	}

	if s.Integrate(dt, obstacles).Collided() {
		s.Stuck = true
		return
	}

	if !s.Velocity.IsZero() {
		s.Rotation = s.Velocity.Angle()
	}
}

// OlderThan reports whether s was spawned before o
func (s *Spear) OlderThan(o *Spear) bool {
	if s.CreatedAt != o.CreatedAt {
		return s.CreatedAt < o.CreatedAt
	}
	return s.Seq < o.Seq
}
