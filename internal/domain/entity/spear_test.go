package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spearfall/internal/domain/geom"
)

func newTestSpear(dir geom.Vec2) *Spear {
	return NewSpear(7, geom.V(100, 100), DefaultSpearWidth, DefaultSpearHeight, dir, DefaultSpearLaunchSpeed, 0, 0)
}

func TestNewSpear(t *testing.T) {
	s := newTestSpear(geom.V(3, 4))

	require.NotNil(t, s)
	assert.Equal(t, EntityID(7), s.ID())
	assert.Equal(t, geom.V(100, 100), s.Rect.Center())
	assert.InDelta(t, 300.0, s.Velocity.X, 1e-9)
	assert.InDelta(t, 400.0, s.Velocity.Y, 1e-9)
	assert.InDelta(t, math.Atan2(4, 3), s.Rotation, 1e-9)
	assert.False(t, s.Stuck)
}

func TestNewSpear_ZeroDirection(t *testing.T) {
	s := newTestSpear(geom.Vec2{})

	assert.Equal(t, geom.Vec2{}, s.Velocity)
	assert.Equal(t, 0.0, s.Rotation)
}

func TestSpear_FlightCurvesUnderGravity(t *testing.T) {
	s := newTestSpear(geom.V(1, 0))
	dt := 1.0 / 60.0

	prev := s.Rect.Center()
	for i := 0; i < 30; i++ {
		s.Update(dt, nil)
		c := s.Rect.Center()

		require.False(t, s.Stuck)
		require.Greater(t, c.X, prev.X, "keeps moving right")
		require.Greater(t, c.Y, prev.Y, "gravity pulls it down")
		require.LessOrEqual(t, s.Velocity.Len(), s.MaxSpeed+1e-9)
		require.InDelta(t, s.Velocity.Angle(), s.Rotation, 1e-9, "rotation follows velocity")
		prev = c
	}
}

func TestSpear_StuckIsPermanent(t *testing.T) {
	wall := []*Obstacle{NewObstacle(1, geom.R(130, 0, 20, 300))}
	s := newTestSpear(geom.V(1, 0))
	dt := 1.0 / 60.0

	for i := 0; i < 60 && !s.Stuck; i++ {
		s.Update(dt, wall)
	}
	require.True(t, s.Stuck, "spear should hit the wall within a second")

	rect := s.Rect
	rotation := s.Rotation
	for i := 0; i < 120; i++ {
		s.Update(dt, wall)
		s.Update(dt, nil)
	}

	assert.Equal(t, rect, s.Rect, "a stuck spear never moves again")
	assert.Equal(t, rotation, s.Rotation)
	assert.True(t, s.Stuck)
}

func TestSpear_StickKeepsPreImpactRotation(t *testing.T) {
	floor := []*Obstacle{NewObstacle(1, geom.R(0, 110, 500, 20))}
	s := newTestSpear(geom.V(1, 1))
	before := s.Rotation

	s.Update(0.05, floor)

	require.True(t, s.Stuck)
	assert.Equal(t, before, s.Rotation, "cosmetic step is skipped on impact")
}

func TestSpear_OlderThan(t *testing.T) {
	a := NewSpear(1, geom.Vec2{}, 1, 1, geom.Vec2{}, 0, 1.0, 1)
	b := NewSpear(2, geom.Vec2{}, 1, 1, geom.Vec2{}, 0, 2.0, 2)
	c := NewSpear(3, geom.Vec2{}, 1, 1, geom.Vec2{}, 0, 2.0, 3)

	assert.True(t, a.OlderThan(b))
	assert.False(t, b.OlderThan(a))
	assert.True(t, b.OlderThan(c), "sequence breaks timestamp ties")
}
