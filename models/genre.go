package models

// The genre labels come from the NUR classification of the Dutch book trade,
// collapsed to the label set used throughout the study.

// DefaultGenreOrder is the fixed display and output ordering for genres.
// Plot files are named and sequenced by this order, not by insertion order.
var DefaultGenreOrder = []string{
	"Children_fiction",
	"Fantasy_fiction",
	"Historical_fiction",
	"Literary_fiction",
	"Literary_thriller",
	"Non-fiction",
	"Other fiction",
	"Regional_fiction",
	"Romanticism",
	"Suspense",
	"Young_adult",
}

// genreShort maps genre labels to abbreviated axis labels.
var genreShort = map[string]string{
	"Children_fiction":   "Child. fic",
	"Fantasy_fiction":    "Fantasy",
	"Historical_fiction": "Hist. fic",
	"Literary_fiction":   "Lit. fic",
	"Literary_thriller":  "Lit. thrill",
	"Non-fiction":        "Non-fic",
	"Other fiction":      "Oth. fic",
	"Regional_fiction":   "Reg. fic",
	"Romanticism":        "Romance",
	"Suspense":           "Suspense",
	"Young_adult":        "YA",
	"unknown":            "Unkn.",
}

// genreLong maps genre labels to full display names.
var genreLong = map[string]string{
	"Children_fiction":   "Children's fiction",
	"Fantasy_fiction":    "Fantasy fiction",
	"Historical_fiction": "Historical fiction",
	"Literary_fiction":   "Literary fiction",
	"Literary_thriller":  "Literary thriller",
	"Non-fiction":        "Non-fiction",
	"Other fiction":      "Other fiction",
	"Regional_fiction":   "Regional fiction",
	"Romanticism":        "Romance",
	"Suspense":           "Suspense",
	"Young_adult":        "YA",
	"unknown":            "Unknown",
}

// IsKnownGenre reports whether label belongs to the study's genre set.
func IsKnownGenre(label string) bool {
	_, ok := genreLong[label]
	return ok
}

// GenreShortName returns the abbreviated display name for a genre label.
// Unknown labels pass through unchanged.
func GenreShortName(label string) string {
	if s, ok := genreShort[label]; ok {
		return s
	}
	return label
}

// GenreLongName returns the full display name for a genre label.
// Unknown labels pass through unchanged.
func GenreLongName(label string) string {
	if s, ok := genreLong[label]; ok {
		return s
	}
	return label
}
