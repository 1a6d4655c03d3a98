// Package topics turns per-book topic proportions into genre-level category
// profiles for the radial histograms.
//
// Topics cross-listed in several categories appear once per category in the
// input; those rows split the same probability mass, so each topic's
// proportion is divided by its category count before anything is aggregated.
package topics

import (
	"math"
	"sort"

	"github.com/boekenvak/impactviz/models"
)

// ApplyRenames rewrites category labels through the configured rename map,
// normalizing historical spelling variants before aggregation. Returns a new
// slice; the input is not mutated.
func ApplyRenames(records []models.TopicProportionRecord, renames map[string]string) []models.TopicProportionRecord {
	out := make([]models.TopicProportionRecord, len(records))
	copy(out, records)
	if len(renames) == 0 {
		return out
	}
	for i := range out {
		if canonical, ok := renames[out[i].Category]; ok {
			out[i].Category = canonical
		}
	}
	return out
}

type bookKey struct {
	isbn  string
	genre string
}

type topicKey struct {
	bookKey
	topic string
}

// Adjust splits each cross-listed topic's proportion evenly over its
// categories and then renormalizes every (isbn, genre) group to sum to
// exactly 1, guarding against floating-point drift and against input
// proportions that do not already sum to 1 across a book's topics.
func Adjust(records []models.TopicProportionRecord) []models.AdjustedProportionRecord {
	// Distinct categories per (isbn, genre, topic).
	split := make(map[topicKey]map[string]struct{})
	for _, r := range records {
		k := topicKey{bookKey{r.ISBN, r.Genre}, r.TopicID}
		if split[k] == nil {
			split[k] = make(map[string]struct{})
		}
		split[k][r.Category] = struct{}{}
	}

	adjusted := make([]models.AdjustedProportionRecord, 0, len(records))
	bookTotals := make(map[bookKey]float64)
	for _, r := range records {
		if math.IsNaN(r.Proportion) {
			continue // row lacks a usable proportion, excluded from aggregation
		}
		k := topicKey{bookKey{r.ISBN, r.Genre}, r.TopicID}
		n := len(split[k])
		rec := models.AdjustedProportionRecord{
			ISBN:       r.ISBN,
			Genre:      r.Genre,
			TopicID:    r.TopicID,
			Category:   r.Category,
			Adjusted:   r.Proportion / float64(n),
			Original:   r.Proportion,
			SplitCount: n,
		}
		adjusted = append(adjusted, rec)
		bookTotals[adjustedBookKey(rec)] += rec.Adjusted
	}

	for i := range adjusted {
		if total := bookTotals[adjustedBookKey(adjusted[i])]; total > 0 {
			adjusted[i].Adjusted /= total
		}
	}
	return adjusted
}

func adjustedBookKey(r models.AdjustedProportionRecord) bookKey {
	return bookKey{r.ISBN, r.Genre}
}

// Profiles aggregates adjusted proportions to one GenreCategoryProfile per
// genre, in the given genre order. The category column order is the sorted
// union of observed categories, shared by every profile. Genres without data
// emit all-zero rows.
func Profiles(adjusted []models.AdjustedProportionRecord, genreOrder []string) []models.GenreCategoryProfile {
	catSet := make(map[string]struct{})
	genreCat := make(map[string]map[string]float64)
	genreTotal := make(map[string]float64)
	for _, r := range adjusted {
		catSet[r.Category] = struct{}{}
		if genreCat[r.Genre] == nil {
			genreCat[r.Genre] = make(map[string]float64)
		}
		genreCat[r.Genre][r.Category] += r.Adjusted
		genreTotal[r.Genre] += r.Adjusted
	}

	categories := make([]string, 0, len(catSet))
	for c := range catSet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	profiles := make([]models.GenreCategoryProfile, 0, len(genreOrder))
	for _, genre := range genreOrder {
		p := models.GenreCategoryProfile{
			Genre:      genre,
			Categories: categories,
			Values:     make([]float64, len(categories)),
		}
		if total := genreTotal[genre]; total > 0 {
			for i, c := range categories {
				p.Values[i] = genreCat[genre][c] / total
			}
		}
		profiles = append(profiles, p)
	}
	return profiles
}
