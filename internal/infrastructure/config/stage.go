package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	TileSize    int                `json:"tileSize"`
	Background  BackgroundConfig   `json:"background"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	Platforms   []PlatformConfig   `json:"platforms"`
	Enemies     []EnemySpawnConfig `json:"enemies,omitempty"`
}

type BackgroundConfig struct {
	Color string `json:"color"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlatformConfig is a 9-slice platform: top-left corner at (X, Y) and
// TileW x TileH middle tiles between the border pieces
type PlatformConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	TileW int     `json:"tileW"`
	TileH int     `json:"tileH"`
}

type EnemySpawnConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Policy string  `json:"policy"`
}
