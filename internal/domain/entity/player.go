package entity

import "github.com/younwookim/spearfall/internal/domain/geom"

// Player defaults, pixels and seconds
const (
	DefaultPlayerWidth       = 50.0
	DefaultPlayerHeight      = 50.0
	DefaultPlayerJumpImpulse = 400.0
	DefaultPlayerMoveAccel   = 4000.0
)

// Player is the user-controlled actor
type Player struct {
	KineticBody
	Locomotion

	id EntityID
}

// NewPlayer creates a player whose top-left corner is at (x, y)
func NewPlayer(id EntityID, x, y, w, h float64, loco Locomotion) *Player {
	return &Player{
		KineticBody: NewKineticBody(geom.R(x, y, w, h)),
		Locomotion:  loco,
		id:          id,
	}
}

// ID returns the player's identifier
func (p *Player) ID() EntityID { return p.id }

// Body returns the player's kinetic body
func (p *Player) Body() *KineticBody { return &p.KineticBody }

// ApplyCommand applies a movement command. CmdFire is the world's
// business since it spawns a new entity.
func (p *Player) ApplyCommand(cmd Command) {
	p.Locomotion.Apply(&p.KineticBody, cmd)
}

// AimDirection is the launch hint for a thrown spear: the current
// velocity, or the facing direction when standing still.
func (p *Player) AimDirection() geom.Vec2 {
	if !p.Velocity.IsZero() {
		return p.Velocity
	}
	return geom.V(p.Facing.Sign(), 0)
}
