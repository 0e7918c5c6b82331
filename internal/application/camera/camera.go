// Package camera maps world coordinates to screen coordinates while
// following a target.
package camera

import (
	"math"

	"github.com/younwookim/spearfall/internal/domain/geom"
)

// Camera defaults
const (
	DefaultDeadZone   = 50.0
	DefaultSmoothness = 0.05
)

// Camera is a viewport that eases toward a target rect. It only reads
// physics state.
type Camera struct {
	Width, Height float64
	DeadZone      float64 // no movement while both axes are within this distance
	Smoothness    float64 // fraction of the remaining distance covered per update

	offset geom.Vec2 // world position of the viewport's top-left corner
}

// New creates a camera with the given viewport size
func New(width, height, deadZone, smoothness float64) *Camera {
	return &Camera{
		Width:      width,
		Height:     height,
		DeadZone:   deadZone,
		Smoothness: smoothness,
	}
}

// desired returns the offset that centers target
func (c *Camera) desired(target geom.Rect) geom.Vec2 {
	center := target.Center()
	return geom.V(center.X-c.Width/2, center.Y-c.Height/2)
}

// Update moves the camera toward target. Nothing happens while the
// target is inside the dead zone on both axes.
func (c *Camera) Update(target geom.Rect) {
	want := c.desired(target)
	d := want.Sub(c.offset)

	if math.Abs(d.X) <= c.DeadZone && math.Abs(d.Y) <= c.DeadZone {
		return
	}
	c.offset = c.offset.Add(d.Scale(c.Smoothness))
}

// SnapTo centers the camera on target immediately
func (c *Camera) SnapTo(target geom.Rect) {
	c.offset = c.desired(target)
}

// Offset returns the world position of the viewport's top-left corner
func (c *Camera) Offset() geom.Vec2 { return c.offset }

// Apply converts a world rect to screen space
func (c *Camera) Apply(r geom.Rect) geom.Rect {
	return r.Translate(c.offset.Scale(-1))
}

// ApplyPoint converts a world point to screen space
func (c *Camera) ApplyPoint(p geom.Vec2) geom.Vec2 {
	return p.Sub(c.offset)
}

// ReversePoint converts a screen point to world space
func (c *Camera) ReversePoint(p geom.Vec2) geom.Vec2 {
	return p.Add(c.offset)
}
