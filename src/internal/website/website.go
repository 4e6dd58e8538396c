// Package website renders the catalog into a static HTML page.
package website

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"moviedb/src/internal/schema"
)

//go:embed index.gohtml
var indexTemplate string

//go:embed style.css
var styleCSS string

// maxFlags bounds how many country flags a card shows.
const maxFlags = 3

// PageTitle is the heading of the generated page.
const PageTitle = "My Movie App"

type card struct {
	Title   string
	Year    int
	Rating  float64
	Poster  string
	ImdbURL string
	Note    string
	Flags   []string
}

type page struct {
	Title  string
	Movies []card
}

// Generate writes index.html and style.css for the given snapshot into
// dir, creating it if needed. Returns the path of the written page.
func Generate(movies []schema.Movie, dir string) (string, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return "", fmt.Errorf("website: parse template: %w", err)
	}
	p := page{Title: PageTitle}
	for _, m := range movies {
		flags := m.Flags
		if len(flags) > maxFlags {
			flags = flags[:maxFlags]
		}
		p.Movies = append(p.Movies, card{
			Title:   m.Title,
			Year:    m.Year,
			Rating:  m.Rating,
			Poster:  m.Poster,
			ImdbURL: m.ImdbURL(),
			Note:    m.Note,
			Flags:   flags,
		})
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("website: %w", err)
	}
	out := filepath.Join(dir, "index.html")
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("website: %w", err)
	}
	if err := tmpl.Execute(f, p); err != nil {
		f.Close()
		return "", fmt.Errorf("website: render: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("website: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte(styleCSS), 0o644); err != nil {
		return "", fmt.Errorf("website: %w", err)
	}
	return out, nil
}
