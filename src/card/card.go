// Package card renders the fixed-layout achievement card summarizing a
// user's or a marathon's aggregate stats.
package card

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Card surface dimensions in pixels.
const (
	Width  = 800
	Height = 400
)

// Layout constants. The card is a fixed design: border inset 25 with a 10px
// stroke, left/right text margins at 60, stat tiles on even fifths.
const (
	borderInset = 25
	borderWidth = 10
	leftX       = 60
	rightX      = Width - 60
	titleY      = 85
	subtitleY   = 110
	readoutY    = 220
	captionY    = 250
	statY       = 330
	statLabelY  = statY + 18
	historyY    = 75
	historyStep = 16
)

const subtitle = "WaniKani Reading Marathon"

// Card holds everything Render needs. Render is a pure function of this
// value: identical cards produce pixel-identical surfaces, which the
// export-then-restore sharing flow depends on.
type Card struct {
	DisplayName string
	TotalHours  float64
	Count       int
	Pages       int
	Characters  int
	Sources     int
	// Community switches the count tile label from MARATHONS to
	// PARTICIPANTS and disables the history ticker.
	Community bool
	// History holds pre-abbreviated ticker entries in matched-marathon
	// order (user mode only).
	History []string
	Accent  color.RGBA
	// Export draws the background photo (or a solid fallback) plus the
	// gradient overlay. Preview mode leaves the background transparent for
	// compositing over the page.
	Export bool
	// Background is the theme image for export mode; nil falls back to a
	// solid fill until the asset finishes loading.
	Background image.Image
}

var numPrinter = message.NewPrinter(language.English)

// Render draws the card onto a fresh surface. The previous surface contents
// never leak through: every render starts from a cleared image.
func Render(c Card) *image.RGBA {
	fontsOnce.Do(loadFaces)
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))

	if c.Export {
		if c.Background != nil {
			drawCover(img, c.Background)
		} else {
			fill(img, img.Bounds(), color.RGBA{R: 0x23, G: 0x23, B: 0x23, A: 0xff})
		}
		drawGradient(img)
	}

	strokeBorder(img, c.Accent)

	white := color.RGBA{255, 255, 255, 255}
	dim60 := color.RGBA{255, 255, 255, 153}
	dim70 := color.RGBA{255, 255, 255, 178}
	dim50 := color.RGBA{255, 255, 255, 128}

	drawText(img, titleFace, strings.ToUpper(c.DisplayName), leftX, titleY, alignLeft, white)
	drawText(img, subtitleFace, subtitle, leftX, subtitleY, alignLeft, dim60)

	drawText(img, readoutFace, FormatDuration(c.TotalHours), Width/2, readoutY, alignCenter, white)
	drawText(img, captionFace, "TOTAL TIME READ", Width/2, captionY, alignCenter, c.Accent)

	countLabel := "MARATHONS"
	if c.Community {
		countLabel = "PARTICIPANTS"
	}
	tiles := []struct {
		label, value string
	}{
		{countLabel, strconv.Itoa(c.Count)},
		{"PAGES", groupedOrDash(c.Pages)},
		{"CHARS", groupedOrDash(c.Characters)},
		{"SOURCES", strconv.Itoa(c.Sources)},
	}
	spacing := Width / 5
	for i, tile := range tiles {
		x := spacing * (i + 1)
		drawText(img, statValueFace, tile.value, x, statY, alignCenter, white)
		drawText(img, statLabelFace, tile.label, x, statLabelY, alignCenter, dim50)
	}

	if !c.Community && len(c.History) > 0 {
		for i, entry := range c.History {
			drawText(img, historyFace, entry, rightX, historyY+i*historyStep, alignRight, dim70)
		}
	}
	return img
}

// FormatDuration renders decimal hours as the big readout: 4.25 -> "4h 15m".
func FormatDuration(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
}

// groupedOrDash formats n with locale thousands separators, or an en dash
// when the stat is zero or absent.
func groupedOrDash(n int) string {
	if n <= 0 {
		return "–"
	}
	return numPrinter.Sprintf("%d", n)
}

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// drawText draws s with its baseline at y, shadowed for contrast on busy
// backgrounds (shadow pass first, then the main pass).
func drawText(dst *image.RGBA, face font.Face, s string, x, y int, a align, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	w := d.MeasureString(s).Ceil()
	switch a {
	case alignCenter:
		x -= w / 2
	case alignRight:
		x -= w
	}
	shadow := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 180}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 2)},
	}
	shadow.DrawString(s)
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(s)
}

// strokeBorder draws the 10px accent frame. The stroke is centered on the
// inset path, so it spans inset-5..inset+5 on every edge.
func strokeBorder(img *image.RGBA, col color.RGBA) {
	outer := borderInset - borderWidth/2
	inner := borderInset + borderWidth/2
	fill(img, image.Rect(outer, outer, Width-outer, inner), col)
	fill(img, image.Rect(outer, Height-inner, Width-outer, Height-outer), col)
	fill(img, image.Rect(outer, inner, inner, Height-inner), col)
	fill(img, image.Rect(Width-inner, inner, Width-outer, Height-inner), col)
}

func fill(img *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// drawGradient applies the export overlay: black ramping from 20% alpha at
// the left edge to 50% at the right, matching the page's card overlay.
func drawGradient(img *image.RGBA) {
	b := img.Bounds()
	w := b.Dx()
	for x := b.Min.X; x < b.Max.X; x++ {
		a := 0.2 + 0.3*float64(x-b.Min.X)/float64(w-1)
		keep := 1 - a
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(float64(img.Pix[i+0]) * keep)
			img.Pix[i+1] = uint8(float64(img.Pix[i+1]) * keep)
			img.Pix[i+2] = uint8(float64(img.Pix[i+2]) * keep)
		}
	}
}
