package keyness

import "math"

// Log-likelihood keyness over 2x2 contingency tables, the count-based
// companion to the log-ratio statistic. Cell layout:
//
//	[0][0] term frequency in the target corpus
//	[0][1] term frequency in the reference corpus
//	[1][0] remaining tokens in the target corpus
//	[1][1] remaining tokens in the reference corpus

// smoothing keeps the log defined for empty cells.
const smoothing = 1e-20

// Direction tells whether a term is over- or under-represented in the target.
type Direction int

const (
	Less Direction = iota
	More
)

func (d Direction) String() string {
	if d == More {
		return "more"
	}
	return "less"
}

// Observed builds the contingency table for one term.
// termTarget is the term's frequency in the target corpus, termTotal its
// frequency over all corpora, targetTotal and refTotal the corpus sizes.
func Observed(termTarget, termTotal, targetTotal, refTotal float64) [2][2]float64 {
	termRef := termTotal - termTarget
	return [2][2]float64{
		{termTarget, termRef},
		{targetTotal - termTarget, refTotal - termRef},
	}
}

// Expected computes the expected-value table under independence.
func Expected(observed [2][2]float64) [2][2]float64 {
	total := observed[0][0] + observed[0][1] + observed[1][0] + observed[1][1]
	row0 := observed[0][0] + observed[0][1]
	row1 := observed[1][0] + observed[1][1]
	col0 := observed[0][0] + observed[1][0]
	col1 := observed[0][1] + observed[1][1]
	return [2][2]float64{
		{row0 * col0 / total, row0 * col1 / total},
		{row1 * col0 / total, row1 * col1 / total},
	}
}

// LogLikelihood computes the G2 log-likelihood ratio for an observed table
// and the direction of the effect in the target corpus.
func LogLikelihood(observed [2][2]float64) (float64, Direction) {
	expected := Expected(observed)
	sum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sum += observed[i][j] * math.Log((observed[i][j]+smoothing)/(expected[i][j]+smoothing))
		}
	}
	dir := Less
	if observed[0][0] > expected[0][0] {
		dir = More
	}
	return 2 * sum, dir
}
