package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display"`
	Physics PhysicsSettings `json:"physics"`
	Player  ActorConfig     `json:"player"`
	Enemy   ActorConfig     `json:"enemy"`
	Spear   SpearConfig     `json:"spear"`
	World   WorldConfig     `json:"world"`
	Camera  CameraConfig    `json:"camera"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// PhysicsSettings are shared by every kinetic body
type PhysicsSettings struct {
	Gravity  float64 `json:"gravity"`  // px/s², positive is down
	MaxSpeed float64 `json:"maxSpeed"` // speed cap, px/s
	MaxDT    float64 `json:"maxDt"`    // longest step the world integrates, seconds
}

type WorldConfig struct {
	FallThreshold float64 `json:"fallThreshold"` // player top past this Y ends the run
	SpearCap      int     `json:"spearCap"`
}

type CameraConfig struct {
	DeadZone   float64 `json:"deadZone"`
	Smoothness float64 `json:"smoothness"`
}
