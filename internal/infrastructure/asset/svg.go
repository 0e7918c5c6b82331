package asset

import (
	"bytes"
	"errors"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterizeSVG renders svg data to an RGBA image. A zero width or height
// uses the document's view box.
func rasterizeSVG(data []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 {
		width = int(math.Ceil(icon.ViewBox.W))
		height = int(math.Ceil(icon.ViewBox.H))
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("svg has an empty view box")
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
