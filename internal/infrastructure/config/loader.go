package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Stage   *StageConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS.
// Stages cannot be saved through a loader built this way.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json, filling missing values from Defaults
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	data, err := fs.ReadFile(l.fsys, stagePath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	applyStageDefaults(&cfg, name)

	return &cfg, nil
}

// LoadStageOrEmpty loads a stage, returning an empty one when the file
// does not exist yet (editor mode starts from nothing)
func (l *Loader) LoadStageOrEmpty(name string) (*StageConfig, error) {
	cfg, err := l.LoadStage(name)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &StageConfig{Name: name}
		applyStageDefaults(cfg, name)
		return cfg, nil
	}
	return cfg, err
}

// SaveStage writes a stage file under the loader's base path
func (l *Loader) SaveStage(name string, cfg *StageConfig) error {
	if l.basePath == "" {
		return fmt.Errorf("failed to save stage %s: loader has no base path", name)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stage %s: %w", name, err)
	}

	path := filepath.Join(l.basePath, filepath.FromSlash(stagePath(name)))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create stage dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write stage %s: %w", name, err)
	}

	return nil
}

// LoadAll loads physics.json and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	st, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Stage:   st,
	}, nil
}

func stagePath(name string) string {
	return "stages/" + name + ".json"
}
