package store

import (
	"encoding/json"
	"fmt"

	"moviedb/src/internal/schema"
)

// JSONStorage keeps the catalog as an indented JSON array.
type JSONStorage struct {
	Path string
}

func (s *JSONStorage) Load() ([]schema.Movie, error) {
	data, err := readFileIfExists(s.Path)
	if err != nil || data == nil {
		return nil, err
	}
	var movies []schema.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", s.Path, err)
	}
	return movies, nil
}

func (s *JSONStorage) Save(movies []schema.Movie) error {
	if movies == nil {
		movies = []schema.Movie{}
	}
	data, err := json.MarshalIndent(movies, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.Path, append(data, '\n'))
}
