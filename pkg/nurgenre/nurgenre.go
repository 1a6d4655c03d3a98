// Package nurgenre maps NUR codes (the Dutch book-trade classification) to
// the study's genre labels.
package nurgenre

import "strconv"

// Codes inside the fiction band that have an explicit genre assignment.
var nurMappings = map[int]string{
	300: "Literary_fiction",
	301: "Literary_fiction",
	302: "Literary_fiction",
	305: "Literary_thriller",
	313: "Suspense",
	330: "Suspense",
	331: "Suspense",
	332: "Suspense",
	339: "Suspense",
	334: "Fantasy_fiction",
	280: "Children_fiction",
	281: "Children_fiction",
	282: "Children_fiction",
	283: "Children_fiction",
	284: "Young_adult",
	285: "Young_adult",
	342: "Historical_fiction",
	343: "Romanticism",
	344: "Regional_fiction",
}

const (
	fictionLow  = 280
	fictionHigh = 350
)

// Genre maps a single NUR code to its genre label. Unmapped codes inside the
// 280..349 band are "Other fiction", everything else "Non-fiction".
func Genre(nur int) string {
	if genre, ok := nurMappings[nur]; ok {
		return genre
	}
	if nur >= fictionLow && nur < fictionHigh {
		return "Other fiction"
	}
	return "Non-fiction"
}

// GenreFromCodes resolves a list of NUR codes (as strings, empty entries
// ignored) to one genre label. The first explicitly mapped code wins; with
// none mapped, any code in the fiction band yields "Other fiction", otherwise
// "Non-fiction". Returns ("", false) when no parseable code remains.
func GenreFromCodes(codes []string) (string, bool) {
	parsed := make([]int, 0, len(codes))
	for _, c := range codes {
		if c == "" {
			continue
		}
		n, err := strconv.Atoi(c)
		if err != nil {
			continue
		}
		parsed = append(parsed, n)
	}
	if len(parsed) == 0 {
		return "", false
	}

	for _, n := range parsed {
		if genre, ok := nurMappings[n]; ok {
			return genre, true
		}
	}
	for _, n := range parsed {
		if n >= fictionLow && n < fictionHigh {
			return "Other fiction", true
		}
	}
	return "Non-fiction", true
}
