package entity

// Locomotion is the grounded move/jump command surface shared by the
// player and enemies. It has no air control.
type Locomotion struct {
	MoveAccel   float64 // px/s² applied while a direction is held
	JumpImpulse float64 // upward speed set on jump, px/s
	Facing      Facing

	// Flips counts facing changes; the renderer mirrors the sprite on each.
	Flips int
}

// MoveLeft accelerates the body left when grounded
func (l *Locomotion) MoveLeft(b *KineticBody) {
	if !b.Grounded {
		return
	}
	b.Acceleration.X = -l.MoveAccel
	l.face(FacingLeft)
}

// MoveRight accelerates the body right when grounded
func (l *Locomotion) MoveRight(b *KineticBody) {
	if !b.Grounded {
		return
	}
	b.Acceleration.X = l.MoveAccel
	l.face(FacingRight)
}

// Jump launches the body upward when grounded. Grounded is cleared at
// once so a second jump in the same tick is ignored.
func (l *Locomotion) Jump(b *KineticBody) {
	if !b.Grounded {
		return
	}
	b.Velocity.Y = -l.JumpImpulse
	b.Grounded = false
}

// StopHorizontal kills horizontal acceleration and velocity
func (l *Locomotion) StopHorizontal(b *KineticBody) {
	b.Acceleration.X = 0
	b.Velocity.X = 0
}

// Apply routes a movement command to the matching method.
// Returns false for commands locomotion does not handle (CmdFire, CmdNone).
func (l *Locomotion) Apply(b *KineticBody, cmd Command) bool {
	switch cmd {
	case CmdMoveLeft:
		l.MoveLeft(b)
	case CmdMoveRight:
		l.MoveRight(b)
	case CmdJump:
		l.Jump(b)
	case CmdStopHorizontal:
		l.StopHorizontal(b)
	default:
		return false
	}
	return true
}

func (l *Locomotion) face(f Facing) {
	if l.Facing != f {
		l.Facing = f
		l.Flips++
	}
}
