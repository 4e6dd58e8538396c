package store

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"moviedb/src/internal/schema"
)

// YAMLStorage keeps the catalog as a YAML sequence of records.
type YAMLStorage struct {
	Path string
}

func (s *YAMLStorage) Load() ([]schema.Movie, error) {
	data, err := readFileIfExists(s.Path)
	if err != nil || data == nil {
		return nil, err
	}
	var movies []schema.Movie
	if err := yaml.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", s.Path, err)
	}
	return movies, nil
}

func (s *YAMLStorage) Save(movies []schema.Movie) error {
	if movies == nil {
		movies = []schema.Movie{}
	}
	data, err := yaml.Marshal(movies)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.Path, data)
}
