package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{name: "unit x", in: V(5, 0), want: V(1, 0)},
		{name: "diagonal", in: V(3, 4), want: V(0.6, 0.8)},
		{name: "zero stays zero", in: Vec2{}, want: Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestVec2_ClampLen(t *testing.T) {
	v := V(300, 400).ClampLen(100)
	assert.InDelta(t, 100.0, v.Len(), 1e-9)
	assert.InDelta(t, 60.0, v.X, 1e-9, "direction preserved")
	assert.InDelta(t, 80.0, v.Y, 1e-9, "direction preserved")

	short := V(3, 4)
	assert.Equal(t, short, short.ClampLen(100), "shorter vectors untouched")
	assert.Equal(t, Vec2{}, Vec2{}.ClampLen(0))
}

func TestVec2_Angle(t *testing.T) {
	assert.InDelta(t, 0.0, V(1, 0).Angle(), 1e-9)
	assert.InDelta(t, math.Pi/2, V(0, 1).Angle(), 1e-9)
	assert.InDelta(t, math.Pi, V(-1, 0).Angle(), 1e-9)
	assert.InDelta(t, -math.Pi/2, V(0, -1).Angle(), 1e-9)
}

func TestRect_Edges(t *testing.T) {
	r := R(10, 20, 30, 40)

	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, V(25, 40), r.Center())
}

func TestRect_Overlaps(t *testing.T) {
	base := R(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "identical", other: R(0, 0, 10, 10), want: true},
		{name: "partial", other: R(5, 5, 10, 10), want: true},
		{name: "contained", other: R(2, 2, 2, 2), want: true},
		{name: "touching right edge", other: R(10, 0, 10, 10), want: false},
		{name: "touching bottom edge", other: R(0, 10, 10, 10), want: false},
		{name: "disjoint", other: R(50, 50, 5, 5), want: false},
		{name: "sub-pixel overlap", other: R(9.5, 9.5, 5, 5), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap is symmetric")
		})
	}
}

func TestRect_Setters(t *testing.T) {
	r := R(0, 0, 50, 50)

	r.SetBottom(100)
	assert.Equal(t, 50.0, r.Y)
	assert.Equal(t, 100.0, r.Bottom())

	r.SetTop(120)
	assert.Equal(t, 120.0, r.Top())

	r.SetRight(200)
	assert.Equal(t, 150.0, r.X)

	r.SetLeft(-5)
	assert.Equal(t, -5.0, r.Left())
	assert.Equal(t, 50.0, r.W, "size is kept")

	r.SetCenter(V(0, 0))
	assert.Equal(t, V(0, 0), r.Center())
}

func TestRect_TranslateAndContains(t *testing.T) {
	r := R(0, 0, 10, 10).Translate(V(5, -5))
	assert.Equal(t, R(5, -5, 10, 10), r)

	assert.True(t, r.ContainsPoint(V(5, -5)))
	assert.False(t, r.ContainsPoint(V(15, 0)), "right edge excluded")

	assert.Equal(t, R(-1, -1, 12, 12), R(0, 0, 10, 10).Inflate(2, 2))
	assert.Equal(t, R(-5, -10, 10, 20), RectAt(V(0, 0), 10, 20))
}
