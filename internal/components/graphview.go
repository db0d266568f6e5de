package components

import (
	"math"
	"strings"

	"contour/internal/graph"
)

// Graph rendering defaults. The x range is fixed; the y range adapts to the
// sampled values so the interesting part of the curve fills the canvas.
const (
	graphXMin = -10.0
	graphXMax = 10.0
	graphYCap = 100.0 // clamp runaway ranges so asymptotes stay readable
)

// RenderGraph plots a compiled function on a width×height character canvas.
// Undefined points leave gaps, so discontinuities render as path breaks.
func RenderGraph(plot *graph.Plot, width, height int) string {
	if plot == nil || width < 8 || height < 3 {
		return ""
	}

	points := plot.Sample(graphXMin, graphXMax, width)

	ymin, ymax := yRange(points)
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	// Axes first so the curve draws over them.
	if col := columnFor(0, graphXMin, graphXMax, width); col >= 0 {
		for row := 0; row < height; row++ {
			canvas[row][col] = '│'
		}
	}
	if row := rowFor(0, ymin, ymax, height); row >= 0 {
		for col := 0; col < width; col++ {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for i, p := range points {
		if !p.OK {
			continue
		}
		y := clamp(p.Y, -graphYCap, graphYCap)
		row := rowFor(y, ymin, ymax, height)
		if row < 0 || i >= width {
			continue
		}
		canvas[row][i] = '•'
	}

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// yRange finds the value range of the defined samples, clamped and padded,
// always spanning zero so the x axis is visible.
func yRange(points []graph.Point) (float64, float64) {
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if !p.OK {
			continue
		}
		y := clamp(p.Y, -graphYCap, graphYCap)
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	if ymin > ymax {
		return -1, 1
	}
	ymin = math.Min(ymin, 0)
	ymax = math.Max(ymax, 0)
	if ymax-ymin < 1e-9 {
		ymin, ymax = ymin-1, ymax+1
	}
	pad := (ymax - ymin) * 0.05
	return ymin - pad, ymax + pad
}

func columnFor(x, xmin, xmax float64, width int) int {
	if x < xmin || x > xmax {
		return -1
	}
	col := int((x - xmin) / (xmax - xmin) * float64(width-1))
	if col < 0 || col >= width {
		return -1
	}
	return col
}

func rowFor(y, ymin, ymax float64, height int) int {
	if y < ymin || y > ymax {
		return -1
	}
	// Row zero is the top of the canvas.
	row := int((ymax - y) / (ymax - ymin) * float64(height-1))
	if row < 0 || row >= height {
		return -1
	}
	return row
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
