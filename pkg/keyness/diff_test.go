package keyness

import (
	"errors"
	"math"
	"testing"

	"github.com/boekenvak/impactviz/models"
)

func TestGenreDiff(t *testing.T) {
	records := []models.ImpactTermRecord{
		record("tension", "Suspense", 0.05, 0.02),
		record("tension", "Romanticism", 0.01, 0.02),
		record("longing", "Suspense", 0.01, 0.02),
		record("longing", "Romanticism", 0.06, 0.02),
		record("plot", "Suspense", 0.03, 0.02), // only in one genre, dropped
	}

	rows, err := GenreDiff(records, "Suspense", "Romanticism", 1)
	if err != nil {
		t.Fatalf("GenreDiff() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// Sorted by signed diff ascending: longing (-0.05) before tension (+0.04).
	if rows[0].Term != "longing" || rows[1].Term != "tension" {
		t.Fatalf("order = %q, %q, want longing, tension", rows[0].Term, rows[1].Term)
	}
	if rows[0].Sign != "more in Romance" {
		t.Errorf("rows[0].Sign = %q, want %q", rows[0].Sign, "more in Romance")
	}
	if rows[1].Sign != "more in Suspense" {
		t.Errorf("rows[1].Sign = %q, want %q", rows[1].Sign, "more in Suspense")
	}
	for i, row := range rows {
		if !row.Labeled {
			t.Errorf("rows[%d].Labeled = false, want true with topN=1 over 2 rows", i)
		}
	}

	s := Summarize(rows)
	if s.MoreInA != 1 || s.MoreInB != 1 || s.Neutral != 0 {
		t.Errorf("Summarize() = %+v, want one term each way", s)
	}
	wantMean := (0.05 + 0.04) / 2
	if math.Abs(s.MeanAbsDiff-wantMean) > 1e-12 {
		t.Errorf("MeanAbsDiff = %v, want %v", s.MeanAbsDiff, wantMean)
	}
}

func TestGenreDiff_NoSharedTerms(t *testing.T) {
	records := []models.ImpactTermRecord{
		record("tension", "Suspense", 0.05, 0.02),
		record("longing", "Romanticism", 0.06, 0.02),
	}

	_, err := GenreDiff(records, "Suspense", "Romanticism", 5)
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("GenreDiff() error = %v, want ErrEmptyResult", err)
	}
}
