package entity

import (
	"math"

	"github.com/younwookim/spearfall/internal/domain/geom"
)

// Obstacle is one static platform segment. It is immutable once built;
// bodies only read it.
type Obstacle struct {
	id   EntityID
	rect geom.Rect
	mask *Mask
}

// NewObstacle creates a rect-only obstacle
func NewObstacle(id EntityID, rect geom.Rect) *Obstacle {
	return &Obstacle{id: id, rect: rect}
}

// NewMaskedObstacle creates an obstacle with a pixel occupancy mask.
// A nil mask behaves like NewObstacle.
func NewMaskedObstacle(id EntityID, rect geom.Rect, mask *Mask) *Obstacle {
	return &Obstacle{id: id, rect: rect, mask: mask}
}

// ID returns the obstacle's identifier
func (o *Obstacle) ID() EntityID { return o.id }

// Rect returns the collision rectangle
func (o *Obstacle) Rect() geom.Rect { return o.rect }

// Mask returns the occupancy mask, or nil
func (o *Obstacle) Mask() *Mask { return o.mask }

// HasMask reports whether pixel-accurate checks apply
func (o *Obstacle) HasMask() bool { return o.mask != nil }

// Touches reports whether body is in contact with the obstacle.
// Coarse rect overlap first; with a mask, at least one occupied pixel
// must also fall under the body's filled rect.
func (o *Obstacle) Touches(body geom.Rect) bool {
	if !o.rect.Overlaps(body) {
		return false
	}
	if o.mask == nil {
		return true
	}

	x0 := int(math.Floor(body.Left() - o.rect.X))
	y0 := int(math.Floor(body.Top() - o.rect.Y))
	x1 := int(math.Ceil(body.Right() - o.rect.X))
	y1 := int(math.Ceil(body.Bottom() - o.rect.Y))
	return o.mask.OverlapsRect(x0, y0, x1, y1)
}
