package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"moviedb/src/internal/schema"
)

// DefaultPath is where the catalog lives when no file is given.
const DefaultPath = "data/movies.json"

// Storage persists the whole catalog as a single snapshot. Load returns
// the full collection; Save rewrites it completely. There is no
// incremental append: every mutation is read-modify-write.
type Storage interface {
	Load() ([]schema.Movie, error)
	Save(movies []schema.Movie) error
}

// Open picks a file backend from the path's extension. JSON is the
// default format; .csv and .yaml/.yml select the others.
func Open(path string) (Storage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".json":
		return &JSONStorage{Path: path}, nil
	case ".csv":
		return &CSVStorage{Path: path}, nil
	case ".yaml", ".yml":
		return &YAMLStorage{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (use .json, .csv or .yaml)", filepath.Ext(path))
	}
}

// writeFileAtomic writes via a temp file in the same directory plus a
// rename, so a failed write never truncates the existing catalog.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close catalog: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

// readFileIfExists returns (nil, nil) for a missing file so an absent
// catalog loads as empty rather than erroring.
func readFileIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return data, nil
}

// ErrNotFound reports a title absent from the catalog.
type ErrNotFound struct{ Title string }

func (e ErrNotFound) Error() string { return fmt.Sprintf("movie %q not found", e.Title) }

// ErrDuplicate reports an add of a title that already exists.
type ErrDuplicate struct{ Title string }

func (e ErrDuplicate) Error() string { return fmt.Sprintf("movie %q already exists", e.Title) }

// Find returns the stored movie whose title matches (case- and
// punctuation-insensitive) along with its index, or ErrNotFound.
func Find(movies []schema.Movie, title string) (schema.Movie, int, error) {
	for i, m := range movies {
		if schema.TitlesEqual(m.Title, title) {
			return m, i, nil
		}
	}
	return schema.Movie{}, -1, ErrNotFound{Title: title}
}

// Add validates the record, rejects duplicates, appends it and saves
// the full snapshot. Returns the updated catalog.
func Add(s Storage, movies []schema.Movie, m schema.Movie) ([]schema.Movie, error) {
	if err := m.Validate(); err != nil {
		return movies, err
	}
	if _, _, err := Find(movies, m.Title); err == nil {
		return movies, ErrDuplicate{Title: m.Title}
	}
	next := append(append([]schema.Movie(nil), movies...), m)
	if err := s.Save(next); err != nil {
		return movies, err
	}
	return next, nil
}

// Delete removes the movie with the given title and saves the snapshot.
func Delete(s Storage, movies []schema.Movie, title string) ([]schema.Movie, error) {
	_, i, err := Find(movies, title)
	if err != nil {
		return movies, err
	}
	next := append(append([]schema.Movie(nil), movies[:i]...), movies[i+1:]...)
	if err := s.Save(next); err != nil {
		return movies, err
	}
	return next, nil
}

// SetNote attaches a note to the titled movie; an empty note removes
// any existing one. Saves the snapshot.
func SetNote(s Storage, movies []schema.Movie, title, note string) ([]schema.Movie, error) {
	_, i, err := Find(movies, title)
	if err != nil {
		return movies, err
	}
	next := append([]schema.Movie(nil), movies...)
	next[i].Note = strings.TrimSpace(note)
	if err := s.Save(next); err != nil {
		return movies, err
	}
	return next, nil
}
