package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/quarrel/assets"
)

var errImageMissing = errors.New("render: image missing")

// imageCache holds decoded sprite images by key. A key that failed once
// stays failed until Reset so a bad path is not re-read every frame.
type imageCache struct {
	images  map[string]*ebiten.Image
	missing map[string]error
}

func newImageCache() *imageCache {
	return &imageCache{
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]error),
	}
}

// get returns the cached image, loading it on first use. fresh reports
// whether this call was the one that hit the failure.
func (c *imageCache) get(key string) (img *ebiten.Image, fresh bool, err error) {
	if key == "" {
		return nil, false, fmt.Errorf("%w: empty key", errImageMissing)
	}
	if img := c.images[key]; img != nil {
		return img, false, nil
	}
	if err := c.missing[key]; err != nil {
		return nil, false, err
	}
	img, err = loadImage(key)
	if err != nil {
		c.missing[key] = err
		return nil, true, err
	}
	c.images[key] = img
	return img, false, nil
}

// Reset drops every cached image and failure, used after a hot reload.
func (c *imageCache) Reset() {
	clear(c.images)
	clear(c.missing)
}

func loadImage(key string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(key); err == nil {
		return img, nil
	}
	for _, p := range []string{key, filepath.Join("assets", key)} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("%w: %s", errImageMissing, key)
}
