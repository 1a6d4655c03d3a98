package nurgenre

import "testing"

func TestGenre(t *testing.T) {
	tests := []struct {
		nur  int
		want string
	}{
		{300, "Literary_fiction"},
		{302, "Literary_fiction"},
		{305, "Literary_thriller"},
		{313, "Suspense"},
		{339, "Suspense"},
		{334, "Fantasy_fiction"},
		{280, "Children_fiction"},
		{285, "Young_adult"},
		{342, "Historical_fiction"},
		{343, "Romanticism"},
		{344, "Regional_fiction"},
		{310, "Other fiction"}, // fiction band, no explicit mapping
		{349, "Other fiction"},
		{350, "Non-fiction"}, // first code past the band
		{120, "Non-fiction"},
		{600, "Non-fiction"},
	}

	for _, tt := range tests {
		if got := Genre(tt.nur); got != tt.want {
			t.Errorf("Genre(%d) = %q, want %q", tt.nur, got, tt.want)
		}
	}
}

func TestGenreFromCodes(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  string
		ok    bool
	}{
		{"explicit mapping wins", []string{"310", "343"}, "Romanticism", true},
		{"fiction band fallback", []string{"310"}, "Other fiction", true},
		{"non-fiction fallback", []string{"600"}, "Non-fiction", true},
		{"empty entries ignored", []string{"", "284"}, "Young_adult", true},
		{"unparseable only", []string{"", "abc"}, "", false},
		{"no codes", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GenreFromCodes(tt.codes)
			if got != tt.want || ok != tt.ok {
				t.Errorf("GenreFromCodes(%v) = %q, %v, want %q, %v", tt.codes, got, ok, tt.want, tt.ok)
			}
		})
	}
}
