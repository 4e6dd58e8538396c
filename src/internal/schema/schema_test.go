package schema

import "testing"

func TestValidate(t *testing.T) {
	m := Movie{Title: "Alpha", Year: 2000, Rating: 7.0}
	if err := m.Validate(); err != nil {
		t.Fatalf("valid movie rejected: %v", err)
	}
	m = Movie{Title: "   ", Year: 2000, Rating: 7.0}
	if err := m.Validate(); err == nil {
		t.Fatalf("blank title accepted")
	}
	m = Movie{Title: "Old", Year: 1800, Rating: 7.0}
	if err := m.Validate(); err == nil {
		t.Fatalf("year 1800 accepted")
	}
	m = Movie{Title: "Hot", Year: 2000, Rating: 10.5}
	if err := m.Validate(); err == nil {
		t.Fatalf("rating 10.5 accepted")
	}
	m = Movie{Title: "Cold", Year: 2000, Rating: -1}
	if err := m.Validate(); err == nil {
		t.Fatalf("negative rating accepted")
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"Schitt's Creek":        "schitts creek",
		"  The  MATRIX  ":       "the matrix",
		"WALL-E":                "wall e",
		"Amélie":                "amélie",
		"2001: A Space Odyssey": "2001 a space odyssey",
		"七人の侍":                  "七人の侍",
	}
	for in, want := range cases {
		if got := NormalizeTitle(in); got != want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitlesEqual(t *testing.T) {
	if !TitlesEqual("The Matrix", "the matrix") {
		t.Fatalf("case-insensitive match failed")
	}
	if TitlesEqual("Alpha", "Beta") {
		t.Fatalf("distinct titles matched")
	}
	if TitlesEqual("七人の侍", "乱") {
		t.Fatalf("distinct non-Latin titles matched")
	}
	if !TitlesEqual("七人の侍", " 七人の侍 ") {
		t.Fatalf("padded non-Latin title did not match itself")
	}
}

func TestImdbURL(t *testing.T) {
	m := Movie{ImdbID: "tt0133093"}
	if got := m.ImdbURL(); got != "https://www.imdb.com/title/tt0133093/" {
		t.Fatalf("ImdbURL = %q", got)
	}
	if got := (Movie{}).ImdbURL(); got != "" {
		t.Fatalf("empty id produced %q", got)
	}
}
