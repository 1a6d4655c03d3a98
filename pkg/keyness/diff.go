package keyness

import (
	"math"
	"sort"

	"github.com/boekenvak/impactviz/models"
	"github.com/boekenvak/impactviz/pkg/stats"
)

// DiffRow is one point of a two-genre frequency comparison.
type DiffRow struct {
	Term     string
	FreqA    float64 // x: term frequency in genre A
	FreqB    float64 // y: term frequency in genre B
	SignDiff float64 // FreqA - FreqB
	AbsDiff  float64
	Sign     string // "more in <genre A>" or "more in <genre B>"
	Labeled  bool   // part of the head/tail selection that gets a text label
}

// GenreDiff compares a term's in-genre frequencies between two genres.
// Terms present in only one of the genres are excluded (inner join). Rows are
// ordered by signed difference ascending; the topN head and tail rows are
// marked for labeling, as the study's difference scatters do.
func GenreDiff(records []models.ImpactTermRecord, genreA, genreB string, topN int) ([]DiffRow, error) {
	var a, b []models.ImpactTermRecord
	for _, r := range records {
		switch r.Genre {
		case genreA:
			a = append(a, r)
		case genreB:
			b = append(b, r)
		}
	}
	byTermA, orderA := collapse(a)
	byTermB, _ := collapse(b)

	signA := "more in " + models.GenreLongName(genreA)
	signB := "more in " + models.GenreLongName(genreB)

	var rows []DiffRow
	for _, term := range orderA {
		ta := byTermA[term]
		tb, ok := byTermB[term]
		if !ok {
			continue
		}
		if math.IsNaN(ta.freqInGenre) || math.IsNaN(tb.freqInGenre) {
			continue
		}
		d := ta.freqInGenre - tb.freqInGenre
		row := DiffRow{
			Term:     term,
			FreqA:    ta.freqInGenre,
			FreqB:    tb.freqInGenre,
			SignDiff: d,
			AbsDiff:  math.Abs(d),
			Sign:     signB,
		}
		if d >= 0 {
			row.Sign = signA
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyResult
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SignDiff < rows[j].SignDiff
	})
	for i := range rows {
		if i < topN || i >= len(rows)-topN {
			rows[i].Labeled = true
		}
	}
	return rows, nil
}

// DiffSummary reports how many terms lean each way, plus the mean absolute
// difference over all joined terms.
type DiffSummary struct {
	MoreInA     int
	MoreInB     int
	Neutral     int
	MeanAbsDiff float64
}

// Summarize tallies the direction counts of a diff result.
func Summarize(rows []DiffRow) DiffSummary {
	var s DiffSummary
	abs := make([]float64, 0, len(rows))
	for _, r := range rows {
		switch {
		case r.SignDiff > 0:
			s.MoreInA++
		case r.SignDiff < 0:
			s.MoreInB++
		default:
			s.Neutral++
		}
		abs = append(abs, r.AbsDiff)
	}
	s.MeanAbsDiff = stats.MeanValid(abs)
	return s
}
