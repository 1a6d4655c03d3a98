// Package keyness implements the genre-vs-rest prevalence analysis.
//
// For a target genre, every other genre's rows are collapsed into a synthetic
// "Other genres" counterpart per term, keyness is the log-ratio of a term's
// in-genre frequency over its corpus frequency, and terms are ranked by the
// absolute keyness difference between the target and the rest.
package keyness

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/boekenvak/impactviz/models"
	"github.com/boekenvak/impactviz/pkg/stats"
)

// ErrEmptyResult signals that a genre yields no plottable rows after the
// join and finiteness filtering. Callers log and skip, they do not abort.
var ErrEmptyResult = errors.New("no plottable rows after join")

// Options control a single genre's aggregation.
type Options struct {
	TargetGenre string
	TopN        int
	// ColorByImpactType selects the fixed impact-type palette for the scatter
	// hue. When false the hue is binary: stronger in the target genre vs
	// stronger in the other genres.
	ColorByImpactType bool
}

// termStats is the per-term average of the numeric fields.
type termStats struct {
	term         string
	freqInGenre  float64
	freqInCorpus float64
	impactType   string
}

// Aggregate computes the ranked keyness rows for one target genre.
// Returns ErrEmptyResult when nothing survives the inner join and filtering.
func Aggregate(records []models.ImpactTermRecord, opts Options) ([]models.GenreKeynessRow, error) {
	if opts.TopN < 1 {
		return nil, fmt.Errorf("top_n must be >= 1, got %d", opts.TopN)
	}

	var target, rest []models.ImpactTermRecord
	for _, r := range records {
		if r.Genre == opts.TargetGenre {
			target = append(target, r)
		} else {
			rest = append(rest, r)
		}
	}

	targetByTerm, targetOrder := collapse(target)
	restByTerm, _ := collapse(rest)

	var rows []models.GenreKeynessRow
	for _, term := range targetOrder {
		t := targetByTerm[term]
		o, ok := restByTerm[term]
		if !ok {
			continue // inner join: term unique to the target genre
		}
		kg := logRatio(t.freqInGenre, t.freqInCorpus)
		ko := logRatio(o.freqInGenre, o.freqInCorpus)
		if !isFinite(kg) || !isFinite(ko) {
			continue // log of zero/negative is undefined, treat as missing
		}
		row := models.GenreKeynessRow{
			Term:            term,
			Genre:           opts.TargetGenre,
			KeynessInGenre:  kg,
			KeynessInOthers: ko,
			KeynessDiff:     math.Abs(kg - ko),
			ImpactType:      t.impactType,
		}
		row.ColorLabel = colorLabel(row, opts)
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyResult
	}

	// Stable sort keeps input order on ties, so repeated runs over the same
	// table produce identical output.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].KeynessDiff > rows[j].KeynessDiff
	})
	if len(rows) > opts.TopN {
		rows = rows[:opts.TopN]
	}
	return rows, nil
}

// collapse groups records by term and averages every numeric field, excluding
// missing values from each mean. Returns the per-term stats and the terms in
// first-seen order.
func collapse(records []models.ImpactTermRecord) (map[string]termStats, []string) {
	type acc struct {
		inGenre    []float64
		inCorpus   []float64
		impactType string
	}
	groups := make(map[string]*acc)
	var order []string
	for _, r := range records {
		g, ok := groups[r.Term]
		if !ok {
			g = &acc{impactType: r.ImpactType}
			groups[r.Term] = g
			order = append(order, r.Term)
		}
		g.inGenre = append(g.inGenre, r.FreqInGenre)
		g.inCorpus = append(g.inCorpus, r.FreqInCorpus)
		if g.impactType == "" {
			g.impactType = r.ImpactType
		}
	}

	out := make(map[string]termStats, len(groups))
	for term, g := range groups {
		out[term] = termStats{
			term:         term,
			freqInGenre:  stats.MeanValid(g.inGenre),
			freqInCorpus: stats.MeanValid(g.inCorpus),
			impactType:   g.impactType,
		}
	}
	return out, order
}

func logRatio(num, den float64) float64 {
	if num <= 0 || den <= 0 || math.IsNaN(num) || math.IsNaN(den) {
		return math.NaN()
	}
	return math.Log(num / den)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func colorLabel(row models.GenreKeynessRow, opts Options) string {
	if opts.ColorByImpactType {
		if row.ImpactType == "" {
			return "unknown"
		}
		return row.ImpactType
	}
	if row.KeynessInGenre >= row.KeynessInOthers {
		return "stronger in " + models.GenreLongName(opts.TargetGenre)
	}
	return "stronger in other genres"
}
