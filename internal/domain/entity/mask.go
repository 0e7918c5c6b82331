package entity

import (
	"image"
	"math/bits"
)

// DefaultAlphaThreshold is the alpha value a pixel must exceed to count
// as occupied when building a mask from art.
const DefaultAlphaThreshold = 127

// Mask is a per-pixel occupancy bitset covering an obstacle's rect.
// Bit (x, y) is pixel (x, y) relative to the rect's top-left corner.
type Mask struct {
	w, h int
	bits []uint64
}

// NewMask creates an empty w x h mask
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{
		w:    w,
		h:    h,
		bits: make([]uint64, (w*h+63)/64),
	}
}

// NewFilledMask creates a w x h mask with every bit set
func NewFilledMask(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// MaskFromImage builds a mask from an image's alpha channel.
// A pixel is occupied when its 8-bit alpha is greater than threshold.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x-b.Min.X, y-b.Min.Y, true)
			}
		}
	}
	return m
}

// Size returns the mask dimensions in pixels
func (m *Mask) Size() (w, h int) {
	return m.w, m.h
}

// Set sets or clears bit (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.w + x
	if on {
		m.bits[i/64] |= 1 << (i % 64)
	} else {
		m.bits[i/64] &^= 1 << (i % 64)
	}
}

// At reports whether bit (x, y) is set. Out of range is unset.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	i := y*m.w + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of occupied pixels
func (m *Mask) Count() int {
	n := 0
	for _, word := range m.bits {
		n += bits.OnesCount64(word)
	}
	return n
}

// OverlapsRect reports whether any occupied pixel lies inside the
// half-open window [x0, x1) x [y0, y1). The window is clipped to the mask.
func (m *Mask) OverlapsRect(x0, y0, x1, y1 int) bool {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > m.w {
		x1 = m.w
	}
	if y1 > m.h {
		y1 = m.h
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) {
				return true
			}
		}
	}
	return false
}
