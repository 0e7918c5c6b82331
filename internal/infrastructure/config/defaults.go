package config

// Defaults returns the stock tuning values
func Defaults() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  400,
			ScreenHeight: 400,
			Scale:        2,
			Framerate:    60,
			Title:        "Spearfall",
		},
		Physics: PhysicsSettings{
			Gravity:  980,
			MaxSpeed: 300,
			MaxDT:    0.05,
		},
		Player: ActorConfig{Width: 50, Height: 50, JumpImpulse: 400, MoveAccel: 4000},
		Enemy:  ActorConfig{Width: 40, Height: 40, JumpImpulse: 350, MoveAccel: 3000},
		Spear:  SpearConfig{Width: 40, Height: 8, LaunchSpeed: 500},
		World: WorldConfig{
			FallThreshold: 1000,
			SpearCap:      5,
		},
		Camera: CameraConfig{
			DeadZone:   50,
			Smoothness: 0.05,
		},
	}
}

// DefaultTileSize is used when a stage omits tileSize
const DefaultTileSize = 16

// applyDefaults fills zero fields from Defaults
func applyDefaults(cfg *PhysicsConfig) {
	d := Defaults()

	if cfg.Display.ScreenWidth == 0 {
		cfg.Display.ScreenWidth = d.Display.ScreenWidth
	}
	if cfg.Display.ScreenHeight == 0 {
		cfg.Display.ScreenHeight = d.Display.ScreenHeight
	}
	if cfg.Display.Scale == 0 {
		cfg.Display.Scale = d.Display.Scale
	}
	if cfg.Display.Framerate == 0 {
		cfg.Display.Framerate = d.Display.Framerate
	}
	if cfg.Display.Title == "" {
		cfg.Display.Title = d.Display.Title
	}

	if cfg.Physics.Gravity == 0 {
		cfg.Physics.Gravity = d.Physics.Gravity
	}
	if cfg.Physics.MaxSpeed == 0 {
		cfg.Physics.MaxSpeed = d.Physics.MaxSpeed
	}
	if cfg.Physics.MaxDT == 0 {
		cfg.Physics.MaxDT = d.Physics.MaxDT
	}

	applyActorDefaults(&cfg.Player, d.Player)
	applyActorDefaults(&cfg.Enemy, d.Enemy)

	if cfg.Spear.Width == 0 {
		cfg.Spear.Width = d.Spear.Width
	}
	if cfg.Spear.Height == 0 {
		cfg.Spear.Height = d.Spear.Height
	}
	if cfg.Spear.LaunchSpeed == 0 {
		cfg.Spear.LaunchSpeed = d.Spear.LaunchSpeed
	}

	if cfg.World.FallThreshold == 0 {
		cfg.World.FallThreshold = d.World.FallThreshold
	}
	if cfg.World.SpearCap == 0 {
		cfg.World.SpearCap = d.World.SpearCap
	}

	if cfg.Camera.DeadZone == 0 {
		cfg.Camera.DeadZone = d.Camera.DeadZone
	}
	if cfg.Camera.Smoothness == 0 {
		cfg.Camera.Smoothness = d.Camera.Smoothness
	}
}

func applyActorDefaults(a *ActorConfig, d ActorConfig) {
	if a.Width == 0 {
		a.Width = d.Width
	}
	if a.Height == 0 {
		a.Height = d.Height
	}
	if a.JumpImpulse == 0 {
		a.JumpImpulse = d.JumpImpulse
	}
	if a.MoveAccel == 0 {
		a.MoveAccel = d.MoveAccel
	}
}

func applyStageDefaults(cfg *StageConfig, name string) {
	if cfg.ID == "" {
		cfg.ID = name
	}
	if cfg.TileSize == 0 {
		cfg.TileSize = DefaultTileSize
	}
	if cfg.Background.Color == "" {
		cfg.Background.Color = "#C8FFFD"
	}
}
