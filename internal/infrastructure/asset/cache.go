// Package asset loads and caches sprite images.
//
// Images are read through an fs.FS, decoded once and memoized. PNG is
// decoded with the standard codecs and SVG is rasterized at its view box
// size. Missing art is never fatal: lookups report absence and callers
// fall back to flat shapes.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"

	"golang.org/x/image/draw"
)

// ScaleMode picks the resampling kernel for Scaled
type ScaleMode int

const (
	// ScalePixel keeps hard pixel edges
	ScalePixel ScaleMode = iota
	// ScaleSmooth interpolates
	ScaleSmooth
)

func (m ScaleMode) scaler() draw.Scaler {
	if m == ScaleSmooth {
		return draw.CatmullRom
	}
	return draw.NearestNeighbor
}

type scaledKey struct {
	name string
	w, h int
	mode ScaleMode
}

// Cache decodes images on first use and keeps them
type Cache struct {
	fsys fs.FS

	mu      sync.Mutex
	images  map[string]image.Image
	scaled  map[scaledKey]image.Image
	missing map[string]error
}

// NewCache creates a cache reading from fsys
func NewCache(fsys fs.FS) *Cache {
	return &Cache{
		fsys:    fsys,
		images:  make(map[string]image.Image),
		scaled:  make(map[scaledKey]image.Image),
		missing: make(map[string]error),
	}
}

// Load returns the named image, decoding it on first use. Failures are
// remembered so a broken file is read only once.
func (c *Cache) Load(name string) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(name)
}

func (c *Cache) load(name string) (image.Image, error) {
	if img, ok := c.images[name]; ok {
		return img, nil
	}
	if err, ok := c.missing[name]; ok {
		return nil, err
	}

	img, err := c.decode(name)
	if err != nil {
		c.missing[name] = err
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Asset not found: %s", name)
		} else {
			log.Printf("Failed to load asset %s: %v", name, err)
		}
		return nil, err
	}

	c.images[name] = img
	return img, nil
}

func (c *Cache) decode(name string) (image.Image, error) {
	data, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if strings.EqualFold(path.Ext(name), ".svg") {
		img, err := rasterizeSVG(data, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize %s: %w", name, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}

// Image returns the named image, or false when it is missing or broken
func (c *Cache) Image(name string) (image.Image, bool) {
	img, err := c.Load(name)
	return img, err == nil
}

// Scaled returns the named image resampled to w x h. Results are cached
// per size and mode.
func (c *Cache) Scaled(name string, w, h int, mode ScaleMode) (image.Image, bool) {
	if w <= 0 || h <= 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := scaledKey{name: name, w: w, h: h, mode: mode}
	if img, ok := c.scaled[key]; ok {
		return img, true
	}

	src, err := c.load(name)
	if err != nil {
		return nil, false
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	mode.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	c.scaled[key] = dst
	return dst, true
}
