package system

import (
	"image"

	"github.com/younwookim/spearfall/internal/domain/entity"
	"github.com/younwookim/spearfall/internal/domain/geom"
	"github.com/younwookim/spearfall/internal/infrastructure/config"
)

// PlatformComposer renders the art for a platform with tileW x tileH
// middle tiles. ok is false when the art is unavailable.
type PlatformComposer interface {
	ComposePlatform(tileW, tileH int) (img image.Image, ok bool)
}

// Platform is one placed platform and the obstacle built from it
type Platform struct {
	Desc     config.PlatformConfig
	Obstacle *entity.Obstacle
	Art      image.Image // nil when drawn as a flat rect
}

// Stage is a stage config expanded into obstacles
type Stage struct {
	Config    *config.StageConfig
	Platforms []Platform

	composer PlatformComposer
	nextID   entity.EntityID
}

// PlatformRect returns the plain collision rect of a platform: corner
// pieces plus the middle tiles on each axis
func PlatformRect(p config.PlatformConfig, tileSize int) geom.Rect {
	t := float64(tileSize)
	return geom.R(p.X, p.Y, float64(2+p.TileW)*t, float64(2+p.TileH)*t)
}

// LoadStage expands a StageConfig into platforms. composer may be nil.
func LoadStage(cfg *config.StageConfig, composer PlatformComposer) *Stage {
	s := &Stage{
		Config:   cfg,
		composer: composer,
	}
	for _, p := range cfg.Platforms {
		s.Platforms = append(s.Platforms, s.build(p))
	}
	return s
}

func (s *Stage) build(p config.PlatformConfig) Platform {
	s.nextID++

	if s.composer != nil {
		if img, ok := s.composer.ComposePlatform(p.TileW, p.TileH); ok {
			b := img.Bounds()
			rect := geom.R(p.X, p.Y, float64(b.Dx()), float64(b.Dy()))
			mask := entity.MaskFromImage(img, entity.DefaultAlphaThreshold)
			return Platform{
				Desc:     p,
				Obstacle: entity.NewMaskedObstacle(s.nextID, rect, mask),
				Art:      img,
			}
		}
	}

	return Platform{
		Desc:     p,
		Obstacle: entity.NewObstacle(s.nextID, PlatformRect(p, s.Config.TileSize)),
	}
}

// Obstacles returns the platform obstacles in stage order
func (s *Stage) Obstacles() []*entity.Obstacle {
	obs := make([]*entity.Obstacle, len(s.Platforms))
	for i, p := range s.Platforms {
		obs[i] = p.Obstacle
	}
	return obs
}

// AddPlatform appends a platform to both the stage and its config
func (s *Stage) AddPlatform(p config.PlatformConfig) Platform {
	placed := s.build(p)
	s.Platforms = append(s.Platforms, placed)
	s.Config.Platforms = append(s.Config.Platforms, p)
	return placed
}

// PlatformAt returns the index of the first platform containing pt, or -1
func (s *Stage) PlatformAt(pt geom.Vec2) int {
	for i, p := range s.Platforms {
		if p.Obstacle.Rect().ContainsPoint(pt) {
			return i
		}
	}
	return -1
}

// RemovePlatform deletes the platform at index i from the stage and its config
func (s *Stage) RemovePlatform(i int) {
	if i < 0 || i >= len(s.Platforms) {
		return
	}
	s.Platforms = append(s.Platforms[:i], s.Platforms[i+1:]...)
	s.Config.Platforms = append(s.Config.Platforms[:i], s.Config.Platforms[i+1:]...)
}
