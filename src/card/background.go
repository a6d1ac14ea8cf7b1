package card

import (
	"image"
	"os"
	"path/filepath"
	"sync"

	// Background assets are gifs today; png/jpeg kept registered so swapped
	// assets keep decoding.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Cache lazily loads background images by asset id from a directory and
// keeps them decoded. A failed load is cached too (as absent), so a missing
// asset is probed once and the renderer falls back to solid fill.
type Cache struct {
	dir string

	mu     sync.Mutex
	images map[string]image.Image
}

// NewCache returns a cache reading assets from dir.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir, images: make(map[string]image.Image)}
}

// Get returns the decoded background for assetID, loading it on first use.
// ok is false when the asset is missing or undecodable.
func (c *Cache) Get(assetID string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, seen := c.images[assetID]; seen {
		return img, img != nil
	}
	img := c.load(assetID)
	c.images[assetID] = img
	return img, img != nil
}

func (c *Cache) load(assetID string) image.Image {
	// Base ensures an asset id can never escape the assets directory.
	f, err := os.Open(filepath.Join(c.dir, filepath.Base(assetID)))
	if err != nil {
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	return img
}

// CoverRect computes where a srcW×srcH image lands on a dstW×dstH surface
// with CSS background-size:cover semantics: preserve aspect ratio, fill the
// surface, center-crop the overflowing axis. A wider image fits height and
// crops width; a taller one fits width and crops height.
func CoverRect(srcW, srcH, dstW, dstH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 {
		return image.Rect(0, 0, dstW, dstH)
	}
	srcAspect := float64(srcW) / float64(srcH)
	dstAspect := float64(dstW) / float64(dstH)
	var drawW, drawH, offX, offY float64
	if srcAspect > dstAspect {
		drawH = float64(dstH)
		drawW = float64(srcW) * float64(dstH) / float64(srcH)
		offX = (float64(dstW) - drawW) / 2
	} else {
		drawW = float64(dstW)
		drawH = float64(srcH) * float64(dstW) / float64(srcW)
		offY = (float64(dstH) - drawH) / 2
	}
	return image.Rect(int(offX), int(offY), int(offX+drawW+0.5), int(offY+drawH+0.5))
}

// drawCover scales src over the whole surface with cover fit. The scaled
// rect may extend past the surface; drawing clips to the surface bounds.
func drawCover(dst *image.RGBA, src image.Image) {
	b := dst.Bounds()
	sb := src.Bounds()
	r := CoverRect(sb.Dx(), sb.Dy(), b.Dx(), b.Dy()).Add(b.Min)
	xdraw.ApproxBiLinear.Scale(dst, r, src, sb, xdraw.Src, nil)
}
