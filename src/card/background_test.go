package card

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCoverRect(t *testing.T) {
	cases := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
		want                   image.Rectangle
	}{
		// Wider than the surface: fit height, center-crop width.
		{"wide", 1600, 400, 800, 400, image.Rect(-400, 0, 1200, 400)},
		// Taller than the surface: fit width, center-crop height.
		{"tall", 800, 800, 800, 400, image.Rect(0, -200, 800, 600)},
		// Equal aspect: exact fill.
		{"exact", 1600, 800, 800, 400, image.Rect(0, 0, 800, 400)},
		{"degenerate", 0, 0, 800, 400, image.Rect(0, 0, 800, 400)},
	}
	for _, tc := range cases {
		if got := CoverRect(tc.srcW, tc.srcH, tc.dstW, tc.dstH); got != tc.want {
			t.Errorf("%s: CoverRect = %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestCacheLoadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	f, err := os.Create(filepath.Join(dir, "fall2024.gif"))
	if err != nil {
		t.Fatalf("create asset: %v", err)
	}
	// PNG content behind a .gif name still decodes; the cache sniffs format.
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode asset: %v", err)
	}
	f.Close()

	c := NewCache(dir)
	got, ok := c.Get("fall2024.gif")
	if !ok || got == nil {
		t.Fatal("expected asset to load")
	}
	again, ok := c.Get("fall2024.gif")
	if !ok || again != got {
		t.Fatal("expected cached image on second lookup")
	}
}

func TestCacheMissFallsBack(t *testing.T) {
	c := NewCache(t.TempDir())
	if _, ok := c.Get("winter2025.gif"); ok {
		t.Fatal("missing asset should not load")
	}
	// Negative result is cached too.
	if _, ok := c.Get("winter2025.gif"); ok {
		t.Fatal("missing asset should stay missing")
	}
}
