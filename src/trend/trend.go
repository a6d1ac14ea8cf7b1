// Package trend renders a user's per-marathon metric history as a line
// chart. Building the sparse series is marathon.BuildSeries; this package
// only turns labels+values into pixels.
package trend

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default chart dimensions, matching the page's chart panel proportions.
const (
	DefaultWidth  = 900
	DefaultHeight = 320
)

// Series is one user's metric across marathons, chronological ascending.
// Labels and Values are aligned; marathons without a data point are simply
// absent rather than zero-filled.
type Series struct {
	Metric string
	Labels []string
	Values []float64
}

// Render draws the series as an accent-colored line chart and returns the
// decoded PNG. An empty series is an error: callers should suppress the
// chart instead of rendering an empty frame.
func Render(s Series, accent color.RGBA, width, height int) (image.Image, error) {
	if len(s.Values) == 0 || len(s.Labels) != len(s.Values) {
		return nil, fmt.Errorf("no data points for metric %q", s.Metric)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	stroke := drawing.Color{R: accent.R, G: accent.G, B: accent.B, A: 255}
	fill := drawing.Color{R: accent.R, G: accent.G, B: accent.B, A: 26}

	xs := make([]float64, len(s.Values))
	ys := append([]float64(nil), s.Values...)
	ticks := make([]chart.Tick, 0, len(s.Labels)+1)
	maxY := 0.0
	for i, v := range s.Values {
		x := float64(i + 1)
		xs[i] = x
		ticks = append(ticks, chart.Tick{Value: x, Label: s.Labels[i]})
		if v > maxY {
			maxY = v
		}
	}
	// Pad single-point series so go-chart has a non-zero X range.
	minR, maxR := 0.5, float64(len(xs))+0.5
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: 2, Label: ""})
		maxR = 2.0
	}

	metricLabel := strings.ToUpper(s.Metric)
	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:  "Marathon",
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: minR, Max: maxR},
		},
		YAxis: chart.YAxis{
			Name:  metricLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(maxY)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    metricLabel,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 3,
					StrokeColor: stroke,
					FillColor:   fill,
					DotWidth:    5,
					DotColor:    stroke,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering %s chart: %w", s.Metric, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding %s chart: %w", s.Metric, err)
	}
	return img, nil
}

// axisMax rounds a data maximum up to a nice zero-based axis bound.
func axisMax(max float64) float64 {
	if max <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(max)))
	return math.Ceil(max*1.05/mag) * mag
}
