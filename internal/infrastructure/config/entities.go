package config

// ActorConfig describes a walking actor (player or enemy)
type ActorConfig struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	JumpImpulse float64 `json:"jumpImpulse"`
	MoveAccel   float64 `json:"moveAccel"`
	Sprite      string  `json:"sprite,omitempty"`
}

// SpearConfig describes the thrown projectile
type SpearConfig struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	LaunchSpeed float64 `json:"launchSpeed"`
	Sprite      string  `json:"sprite,omitempty"`
}
