package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Kind tells the renderer which actor variant an entity is
type Kind int

const (
	KindPlayer Kind = iota
	KindSpear
	KindEnemy
	KindObstacle
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindSpear:
		return "Spear"
	case KindEnemy:
		return "Enemy"
	case KindObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Facing is the cosmetic horizontal orientation of an actor
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Command is one discrete actor command. Player input and enemy
// decision sources share this vocabulary.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdJump
	CmdStopHorizontal
	CmdFire
)

// String returns the string representation of the command
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdJump:
		return "Jump"
	case CmdStopHorizontal:
		return "StopHorizontal"
	case CmdFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// Actor is a dynamic entity that accepts commands
type Actor interface {
	ID() EntityID
	Body() *KineticBody
	ApplyCommand(cmd Command)
}
