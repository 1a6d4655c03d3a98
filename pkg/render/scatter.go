package render

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/boekenvak/impactviz/models"
	"github.com/boekenvak/impactviz/pkg/keyness"
)

const (
	scatterWidth  = 7 * vg.Inch
	scatterHeight = 5 * vg.Inch
)

// KeynessScatter renders one genre's keyness rows as a labeled scatter:
// x = keyness in the genre, y = keyness in the other genres, identity line
// for orientation, one glyph color per qualitative label.
func KeynessScatter(rows []models.GenreKeynessRow, genre string, dpi int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Impact terms distinctive for %s", models.GenreLongName(genre))
	p.X.Label.Text = fmt.Sprintf("Keyness in %s", models.GenreLongName(genre))
	p.Y.Label.Text = "Keyness in other genres"
	p.Legend.Top = true

	// One scatter per color label, in first-seen order so legends are stable.
	groups := make(map[string]plotter.XYs)
	var order []string
	for _, row := range rows {
		if _, ok := groups[row.ColorLabel]; !ok {
			order = append(order, row.ColorLabel)
		}
		groups[row.ColorLabel] = append(groups[row.ColorLabel], plotter.XY{
			X: row.KeynessInGenre,
			Y: row.KeynessInOthers,
		})
	}
	for rank, label := range order {
		s, err := plotter.NewScatter(groups[label])
		if err != nil {
			return fmt.Errorf("failed to build scatter: %w", err)
		}
		s.GlyphStyle.Color = colorFor(label, rank)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(label, s)
	}

	if err := addTermLabels(p, rows); err != nil {
		return err
	}
	addIdentity(p, rows)

	return savePNG(p, scatterWidth, scatterHeight, dpi, path)
}

func addTermLabels(p *plot.Plot, rows []models.GenreKeynessRow) error {
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(rows)),
		Labels: make([]string, len(rows)),
	}
	for i, row := range rows {
		labels.XYs[i] = plotter.XY{X: row.KeynessInGenre, Y: row.KeynessInOthers}
		labels.Labels[i] = row.Term
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("failed to build labels: %w", err)
	}
	l.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(2)}
	p.Add(l)
	return nil
}

// addIdentity draws y = x across the data range, as the study's scatters do.
func addIdentity(p *plot.Plot, rows []models.GenreKeynessRow) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range rows {
		lo = math.Min(lo, math.Min(row.KeynessInGenre, row.KeynessInOthers))
		hi = math.Max(hi, math.Max(row.KeynessInGenre, row.KeynessInOthers))
	}
	if lo > hi {
		return
	}
	line, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return
	}
	line.LineStyle.Color = hueGrid
	p.Add(line)
}

// DiffScatter renders a two-genre frequency comparison with the head/tail
// terms labeled.
func DiffScatter(rows []keyness.DiffRow, genreA, genreB string, dpi int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", models.GenreLongName(genreA), models.GenreLongName(genreB))
	p.X.Label.Text = fmt.Sprintf("Term frequency in %s", models.GenreLongName(genreA))
	p.Y.Label.Text = fmt.Sprintf("Term frequency in %s", models.GenreLongName(genreB))
	p.Legend.Top = true

	groups := make(map[string]plotter.XYs)
	var order []string
	labeled := plotter.XYLabels{}
	for _, row := range rows {
		if _, ok := groups[row.Sign]; !ok {
			order = append(order, row.Sign)
		}
		groups[row.Sign] = append(groups[row.Sign], plotter.XY{X: row.FreqA, Y: row.FreqB})
		if row.Labeled {
			labeled.XYs = append(labeled.XYs, plotter.XY{X: row.FreqA, Y: row.FreqB})
			labeled.Labels = append(labeled.Labels, row.Term)
		}
	}
	for rank, sign := range order {
		s, err := plotter.NewScatter(groups[sign])
		if err != nil {
			return fmt.Errorf("failed to build scatter: %w", err)
		}
		s.GlyphStyle.Color = colorFor(sign, rank)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(sign, s)
	}

	l, err := plotter.NewLabels(labeled)
	if err != nil {
		return fmt.Errorf("failed to build labels: %w", err)
	}
	l.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(2)}
	p.Add(l)

	// Identity line over the joint range.
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range rows {
		lo = math.Min(lo, math.Min(row.FreqA, row.FreqB))
		hi = math.Max(hi, math.Max(row.FreqA, row.FreqB))
	}
	if lo <= hi {
		if line, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}}); err == nil {
			line.LineStyle.Color = hueGrid
			p.Add(line)
		}
	}

	return savePNG(p, scatterWidth, scatterHeight, dpi, path)
}

// savePNG writes the plot at an explicit DPI. Write failure is fatal for this
// file only.
func savePNG(p *plot.Plot, w, h vg.Length, dpi int, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
