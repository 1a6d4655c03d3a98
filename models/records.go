// Package models defines the typed records shared by the analysis pipelines.
package models

import "math"

// ImpactTermRecord is one row of the impact-term prevalence table.
// A (Term, Genre) pair is not guaranteed unique in the source data;
// aggregation averages duplicates.
type ImpactTermRecord struct {
	Term         string
	Genre        string
	FreqInGenre  float64 // normalized frequency within the genre; NaN = missing
	FreqInCorpus float64 // normalized frequency within the whole corpus; NaN = missing
	ImpactType   string  // prevalent impact type (affect, style, narrative, reflection); may be empty
}

// HasFreqs reports whether both frequency fields carry real values.
func (r ImpactTermRecord) HasFreqs() bool {
	return !math.IsNaN(r.FreqInGenre) && !math.IsNaN(r.FreqInCorpus)
}

// GenreKeynessRow is one plottable point of the genre-vs-rest keyness analysis.
type GenreKeynessRow struct {
	Term            string
	Genre           string
	KeynessInGenre  float64 // x coordinate
	KeynessInOthers float64 // y coordinate
	KeynessDiff     float64 // |KeynessInGenre - KeynessInOthers|
	ImpactType      string
	ColorLabel      string // qualitative hue for the scatter
}

// TopicProportionRecord is one row of the per-book topic-proportion table.
// A (ISBN, Genre, TopicID) triple appears once per category the topic maps
// to; those rows split the same underlying probability mass.
type TopicProportionRecord struct {
	ISBN       string
	Genre      string
	TopicID    string
	Category   string
	Proportion float64 // in [0,1]
}

// AdjustedProportionRecord carries the per-category share after cross-listed
// topics have been split and the book has been renormalized to sum to 1.
type AdjustedProportionRecord struct {
	ISBN       string
	Genre      string
	TopicID    string
	Category   string
	Adjusted   float64
	Original   float64 // proportion before splitting, kept for diagnostics
	SplitCount int     // number of categories the topic maps to in this book
}

// GenreCategoryProfile is one genre's category distribution. Values sum to 1
// across categories, or are all zero when the genre has no source data.
type GenreCategoryProfile struct {
	Genre      string
	Categories []string // column order, shared across all profiles of a run
	Values     []float64
}

// Value returns the proportion for a category, 0 when absent.
func (p GenreCategoryProfile) Value(category string) float64 {
	for i, c := range p.Categories {
		if c == category {
			return p.Values[i]
		}
	}
	return 0
}

// IsZero reports whether the profile carries no mass at all.
func (p GenreCategoryProfile) IsZero() bool {
	for _, v := range p.Values {
		if v != 0 {
			return false
		}
	}
	return true
}
