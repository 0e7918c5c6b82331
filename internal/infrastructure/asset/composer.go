package asset

import (
	"image"

	"golang.org/x/image/draw"
)

// Platform piece names under the composer's directory
const (
	PieceTopLeft     = "topleft"
	PieceTop         = "top"
	PieceTopRight    = "topright"
	PieceLeft        = "left"
	PieceCenter      = "center"
	PieceRight       = "right"
	PieceBottomLeft  = "bottomleft"
	PieceBottom      = "bottom"
	PieceBottomRight = "bottomright"
)

var platformPieces = []string{
	PieceTopLeft, PieceTop, PieceTopRight,
	PieceLeft, PieceCenter, PieceRight,
	PieceBottomLeft, PieceBottom, PieceBottomRight,
}

// Composer builds 9-slice platform images from nine piece textures
type Composer struct {
	cache *Cache
	dir   string
}

// NewComposer creates a composer reading <dir>/<piece>.png from cache
func NewComposer(cache *Cache, dir string) *Composer {
	return &Composer{cache: cache, dir: dir}
}

func (c *Composer) pieces() (map[string]image.Image, bool) {
	out := make(map[string]image.Image, len(platformPieces))
	for _, name := range platformPieces {
		img, ok := c.cache.Image(c.dir + "/" + name + ".png")
		if !ok {
			return nil, false
		}
		out[name] = img
	}
	return out, true
}

// ComposePlatform draws a platform with tileW x tileH middle tiles.
// Corner sizes set the border widths and the top and left edges set the
// tile pitch. ok is false when any piece is missing.
func (c *Composer) ComposePlatform(tileW, tileH int) (image.Image, bool) {
	if tileW < 0 || tileH < 0 {
		return nil, false
	}
	p, ok := c.pieces()
	if !ok {
		return nil, false
	}

	tl := p[PieceTopLeft].Bounds()
	bl := p[PieceBottomLeft].Bounds()
	tr := p[PieceTopRight].Bounds()
	stepX := p[PieceTop].Bounds().Dx()
	stepY := p[PieceLeft].Bounds().Dy()

	width := tl.Dx() + tileW*stepX + tr.Dx()
	height := tl.Dy() + tileH*stepY + bl.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	blit := func(name string, x, y int) {
		src := p[name]
		draw.Copy(dst, image.Pt(x, y), src, src.Bounds(), draw.Over, nil)
	}

	// top row
	x := 0
	blit(PieceTopLeft, x, 0)
	x += tl.Dx()
	for i := 0; i < tileW; i++ {
		blit(PieceTop, x, 0)
		x += stepX
	}
	blit(PieceTopRight, x, 0)

	// middle rows
	for j := 0; j < tileH; j++ {
		y := tl.Dy() + j*stepY
		x = 0
		blit(PieceLeft, x, y)
		x += p[PieceLeft].Bounds().Dx()
		for i := 0; i < tileW; i++ {
			blit(PieceCenter, x, y)
			x += p[PieceCenter].Bounds().Dx()
		}
		blit(PieceRight, x, y)
	}

	// bottom row
	y := height - bl.Dy()
	x = 0
	blit(PieceBottomLeft, x, y)
	x += bl.Dx()
	for i := 0; i < tileW; i++ {
		blit(PieceBottom, x, y)
		x += p[PieceBottom].Bounds().Dx()
	}
	blit(PieceBottomRight, x, y)

	return dst, true
}
