package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FirstFilmYear is the earliest year a record may carry; nothing on
// film predates the Roundhay Garden Scene.
const FirstFilmYear = 1888

// Movie represents a single catalog record stored on disk.
type Movie struct {
	Title  string   `yaml:"title" json:"title"`
	Year   int      `yaml:"year" json:"year"`
	Rating float64  `yaml:"rating" json:"rating"`
	Poster string   `yaml:"poster,omitempty" json:"poster,omitempty"`
	ImdbID string   `yaml:"imdb_id,omitempty" json:"imdb_id,omitempty"`
	Note   string   `yaml:"note,omitempty" json:"note,omitempty"`
	Flags  []string `yaml:"flags,omitempty" json:"flags,omitempty"`
}

// ImdbURL returns the movie's IMDb page link, or "" when no id is known.
func (m Movie) ImdbURL() string {
	id := strings.TrimSpace(m.ImdbID)
	if id == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + id + "/"
}

// Validate applies the record-level validation rules.
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("title is required")
	}
	maxYear := time.Now().Year() + 1
	if m.Year < FirstFilmYear || m.Year > maxYear {
		return fmt.Errorf("year %d out of range (%d-%d)", m.Year, FirstFilmYear, maxYear)
	}
	if m.Rating < 0 || m.Rating > 10 {
		return fmt.Errorf("rating %.1f out of range (0-10)", m.Rating)
	}
	return nil
}

var apostrophes = regexp.MustCompile("[''`‘’ʼ]")
var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// NormalizeTitle lowers a title into a comparison-friendly form:
// apostrophes are removed so "Schitt's" and "Schitts" collapse
// together; every other run of non-letter, non-digit characters
// becomes a single space. Letters in any script survive, so
// non-Latin titles keep their identity.
func NormalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	t = apostrophes.ReplaceAllString(t, "")
	t = nonAlnum.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// TitlesEqual reports whether two titles refer to the same record
// (case- and punctuation-insensitive).
func TitlesEqual(a, b string) bool {
	return NormalizeTitle(a) == NormalizeTitle(b)
}
