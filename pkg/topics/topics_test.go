package topics

import (
	"math"
	"testing"

	"github.com/boekenvak/impactviz/models"
)

func row(isbn, genre, topic, category string, p float64) models.TopicProportionRecord {
	return models.TopicProportionRecord{
		ISBN:       isbn,
		Genre:      genre,
		TopicID:    topic,
		Category:   category,
		Proportion: p,
	}
}

func TestApplyRenames(t *testing.T) {
	records := []models.TopicProportionRecord{
		row("X", "Suspense", "10", "Cultuur", 0.5),
		row("X", "Suspense", "11", "War", 0.5),
	}
	renamed := ApplyRenames(records, map[string]string{"Cultuur": "Culture"})

	if renamed[0].Category != "Culture" {
		t.Errorf("renamed[0].Category = %q, want %q", renamed[0].Category, "Culture")
	}
	if renamed[1].Category != "War" {
		t.Errorf("renamed[1].Category = %q, want %q", renamed[1].Category, "War")
	}
	// Input must stay untouched.
	if records[0].Category != "Cultuur" {
		t.Errorf("input mutated: records[0].Category = %q", records[0].Category)
	}
}

func TestAdjust_SplitsCrossListedTopics(t *testing.T) {
	// Topic 10 maps to two categories with proportion 0.5; topic 11 to one
	// category with 0.5. The book already sums to 1, so renormalization is a
	// no-op and the split values survive unchanged.
	records := []models.TopicProportionRecord{
		row("X", "Suspense", "10", "Culture", 0.5),
		row("X", "Suspense", "10", "Romance", 0.5),
		row("X", "Suspense", "11", "War", 0.5),
	}

	adjusted := Adjust(records)
	if len(adjusted) != 3 {
		t.Fatalf("len(adjusted) = %d, want 3", len(adjusted))
	}

	byCategory := make(map[string]models.AdjustedProportionRecord)
	for _, a := range adjusted {
		byCategory[a.Category] = a
	}
	if got := byCategory["Culture"].Adjusted; math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Culture adjusted = %v, want 0.25", got)
	}
	if got := byCategory["Romance"].Adjusted; math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Romance adjusted = %v, want 0.25", got)
	}
	if got := byCategory["War"].Adjusted; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("War adjusted = %v, want 0.5", got)
	}
	if byCategory["Culture"].SplitCount != 2 {
		t.Errorf("Culture SplitCount = %d, want 2", byCategory["Culture"].SplitCount)
	}

	// The split halves of topic 10 sum back to its original proportion.
	sum := byCategory["Culture"].Adjusted + byCategory["Romance"].Adjusted
	if math.Abs(sum-byCategory["Culture"].Original) > 1e-12 {
		t.Errorf("split sum = %v, want original %v", sum, byCategory["Culture"].Original)
	}
}

func TestAdjust_RenormalizesPerBook(t *testing.T) {
	// Input proportions do not sum to 1; per-book renormalization must fix
	// the totals anyway.
	records := []models.TopicProportionRecord{
		row("X", "Suspense", "10", "Culture", 0.3),
		row("X", "Suspense", "11", "War", 0.3),
		row("Y", "Suspense", "10", "Culture", 0.8),
	}

	adjusted := Adjust(records)

	totals := make(map[string]float64)
	for _, a := range adjusted {
		totals[a.ISBN] += a.Adjusted
	}
	for isbn, total := range totals {
		if math.Abs(total-1) > 1e-9 {
			t.Errorf("book %s total = %v, want 1", isbn, total)
		}
	}
}

func TestAdjust_SkipsMissingProportions(t *testing.T) {
	records := []models.TopicProportionRecord{
		row("X", "Suspense", "10", "Culture", 0.5),
		{ISBN: "X", Genre: "Suspense", TopicID: "11", Category: "War", Proportion: math.NaN()},
	}

	adjusted := Adjust(records)
	if len(adjusted) != 1 {
		t.Fatalf("len(adjusted) = %d, want 1", len(adjusted))
	}
	if adjusted[0].Category != "Culture" {
		t.Errorf("kept category = %q, want Culture", adjusted[0].Category)
	}
}

func TestProfiles_SumToOneAndFollowOrder(t *testing.T) {
	records := []models.TopicProportionRecord{
		row("X", "Suspense", "10", "Culture", 0.5),
		row("X", "Suspense", "10", "Romance", 0.5),
		row("X", "Suspense", "11", "War", 0.5),
		row("Y", "Romanticism", "12", "Romance", 1.0),
	}
	order := []string{"Romanticism", "Suspense", "Young_adult"}

	profiles := Profiles(Adjust(records), order)
	if len(profiles) != 3 {
		t.Fatalf("len(profiles) = %d, want 3", len(profiles))
	}

	for i, genre := range order {
		if profiles[i].Genre != genre {
			t.Errorf("profiles[%d].Genre = %q, want %q", i, profiles[i].Genre, genre)
		}
	}

	for _, p := range profiles {
		sum := 0.0
		for _, v := range p.Values {
			sum += v
		}
		if p.IsZero() {
			continue
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("profile %s sums to %v, want 1", p.Genre, sum)
		}
	}

	// A genre with no data still yields a valid all-zero row.
	last := profiles[2]
	if last.Genre != "Young_adult" || !last.IsZero() {
		t.Errorf("expected all-zero profile for Young_adult, got %+v", last)
	}

	// Categories are the sorted union, shared across profiles; absent
	// categories read as 0.
	wantCats := []string{"Culture", "Romance", "War"}
	for _, p := range profiles {
		if len(p.Categories) != len(wantCats) {
			t.Fatalf("profile %s categories = %v, want %v", p.Genre, p.Categories, wantCats)
		}
		for i, c := range wantCats {
			if p.Categories[i] != c {
				t.Errorf("profile %s categories[%d] = %q, want %q", p.Genre, i, p.Categories[i], c)
			}
		}
	}
	romanticism := profiles[0]
	if got := romanticism.Value("War"); got != 0 {
		t.Errorf("Romanticism War share = %v, want 0", got)
	}
	if got := romanticism.Value("Romance"); math.Abs(got-1) > 1e-9 {
		t.Errorf("Romanticism Romance share = %v, want 1", got)
	}

	// Suspense: Culture 0.25, Romance 0.25, War 0.5.
	suspense := profiles[1]
	if got := suspense.Value("War"); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Suspense War share = %v, want 0.5", got)
	}
}
