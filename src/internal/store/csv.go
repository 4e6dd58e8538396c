package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"moviedb/src/internal/schema"
)

// csvHeader fixes the column order of the delimited catalog format.
var csvHeader = []string{"Title", "Year", "Rating", "Poster", "ImdbID", "Note", "Flags"}

// CSVStorage keeps the catalog as delimited rows, one movie per line,
// with flag URLs comma-joined inside their column.
type CSVStorage struct {
	Path string
}

func (s *CSVStorage) Load() ([]schema.Movie, error) {
	data, err := readFileIfExists(s.Path)
	if err != nil || data == nil {
		return nil, err
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(csvHeader)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV in %s: %w", s.Path, err)
	}
	var movies []schema.Movie
	for i, row := range rows {
		if i == 0 && row[0] == csvHeader[0] {
			continue // header row
		}
		m, err := movieFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.Path, i+1, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func (s *CSVStorage) Save(movies []schema.Movie) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range movies {
		row := []string{
			m.Title,
			strconv.Itoa(m.Year),
			strconv.FormatFloat(m.Rating, 'f', 1, 64),
			m.Poster,
			m.ImdbID,
			m.Note,
			strings.Join(m.Flags, ","),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeFileAtomic(s.Path, buf.Bytes())
}

func movieFromRow(row []string) (schema.Movie, error) {
	year, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return schema.Movie{}, fmt.Errorf("bad year %q: %w", row[1], err)
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return schema.Movie{}, fmt.Errorf("bad rating %q: %w", row[2], err)
	}
	var flags []string
	if strings.TrimSpace(row[6]) != "" {
		flags = strings.Split(row[6], ",")
	}
	return schema.Movie{
		Title:  row[0],
		Year:   year,
		Rating: rating,
		Poster: row[3],
		ImdbID: row[4],
		Note:   row[5],
		Flags:  flags,
	}, nil
}
