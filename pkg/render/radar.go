package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/boekenvak/impactviz/models"
)

const (
	radarWidth  = 6 * vg.Inch
	radarHeight = 6 * vg.Inch
)

// gridRings are the fractional radii of the reference circles.
var gridRings = []float64{0.25, 0.5, 0.75, 1.0}

// Radar renders one genre's category profile as a radial histogram:
// categories as evenly spaced spokes, proportion as radius, closed polygon.
// An all-zero profile renders the grid and labels with a degenerate shape
// instead of failing.
func Radar(profile models.GenreCategoryProfile, dpi int, path string) error {
	k := len(profile.Categories)
	if k == 0 {
		return fmt.Errorf("profile for %s has no categories", profile.Genre)
	}

	p := plot.New()
	p.Title.Text = models.GenreLongName(profile.Genre)
	p.HideAxes()

	// Scale radii to the largest value so the shape fills the chart; an
	// all-zero row keeps scale 1 and collapses to the center.
	maxVal := 0.0
	for _, v := range profile.Values {
		maxVal = math.Max(maxVal, v)
	}
	scale := 1.0
	if maxVal > 0 {
		scale = 1 / maxVal
	}

	addRadarGrid(p, k)
	addSpokeLabels(p, profile.Categories)

	if !profile.IsZero() {
		shape := make(plotter.XYs, k+1)
		for i, v := range profile.Values {
			x, y := polar(i, k, v*scale)
			shape[i] = plotter.XY{X: x, Y: y}
		}
		shape[k] = shape[0] // close the polygon
		poly, err := plotter.NewPolygon(shape)
		if err != nil {
			return fmt.Errorf("failed to build radar polygon: %w", err)
		}
		poly.Color = hueShape
		poly.LineStyle.Color = hueFirst
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
	}

	// Fix the data range so label placement is independent of the values.
	p.X.Min, p.X.Max = -1.35, 1.35
	p.Y.Min, p.Y.Max = -1.35, 1.35

	return savePNG(p, radarWidth, radarHeight, dpi, path)
}

// polar converts a spoke index and radius to chart coordinates. Spoke 0
// points up; spokes advance clockwise.
func polar(i, k int, r float64) (float64, float64) {
	theta := math.Pi/2 - 2*math.Pi*float64(i)/float64(k)
	return r * math.Cos(theta), r * math.Sin(theta)
}

func addRadarGrid(p *plot.Plot, k int) {
	// Concentric reference rings.
	const segments = 72
	for _, ring := range gridRings {
		circle := make(plotter.XYs, segments+1)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / segments
			circle[s] = plotter.XY{X: ring * math.Cos(theta), Y: ring * math.Sin(theta)}
		}
		if line, err := plotter.NewLine(circle); err == nil {
			line.LineStyle.Color = hueGrid
			line.LineStyle.Width = vg.Points(0.5)
			p.Add(line)
		}
	}
	// One spoke per category.
	for i := 0; i < k; i++ {
		x, y := polar(i, k, 1)
		if line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: x, Y: y}}); err == nil {
			line.LineStyle.Color = hueGrid
			line.LineStyle.Width = vg.Points(0.5)
			p.Add(line)
		}
	}
}

func addSpokeLabels(p *plot.Plot, categories []string) {
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(categories)),
		Labels: make([]string, len(categories)),
	}
	for i, c := range categories {
		x, y := polar(i, len(categories), 1.12)
		labels.XYs[i] = plotter.XY{X: x, Y: y}
		labels.Labels[i] = c
	}
	if l, err := plotter.NewLabels(labels); err == nil {
		p.Add(l)
	}
}
