package keyness

import (
	"math"
	"testing"
)

func TestObserved(t *testing.T) {
	// Term occurs 15 times overall, 10 of them in the target corpus; both
	// corpora hold 100 tokens.
	observed := Observed(10, 15, 100, 100)
	want := [2][2]float64{{10, 5}, {90, 95}}
	if observed != want {
		t.Fatalf("Observed() = %v, want %v", observed, want)
	}
}

func TestExpected(t *testing.T) {
	expected := Expected([2][2]float64{{10, 5}, {90, 95}})
	want := [2][2]float64{{7.5, 7.5}, {92.5, 92.5}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(expected[i][j]-want[i][j]) > 1e-12 {
				t.Errorf("Expected()[%d][%d] = %v, want %v", i, j, expected[i][j], want[i][j])
			}
		}
	}
}

func TestLogLikelihood(t *testing.T) {
	observed := [2][2]float64{{10, 5}, {90, 95}}
	g2, dir := LogLikelihood(observed)

	// 2 * (10*ln(10/7.5) + 5*ln(5/7.5) + 90*ln(90/92.5) + 95*ln(95/92.5))
	if math.Abs(g2-1.8341418) > 1e-4 {
		t.Errorf("LogLikelihood() = %v, want ~1.8341418", g2)
	}
	if dir != More {
		t.Errorf("direction = %v, want More", dir)
	}
}

func TestLogLikelihood_UnderRepresented(t *testing.T) {
	observed := [2][2]float64{{5, 10}, {95, 90}}
	g2, dir := LogLikelihood(observed)
	if dir != Less {
		t.Errorf("direction = %v, want Less", dir)
	}
	if g2 < 0 {
		t.Errorf("LogLikelihood() = %v, want >= 0", g2)
	}
}

func TestLogLikelihood_EmptyCell(t *testing.T) {
	// A zero cell must not produce NaN thanks to the smoothing term.
	observed := [2][2]float64{{0, 10}, {100, 90}}
	g2, _ := LogLikelihood(observed)
	if math.IsNaN(g2) || math.IsInf(g2, 0) {
		t.Fatalf("LogLikelihood() = %v, want finite", g2)
	}
}
