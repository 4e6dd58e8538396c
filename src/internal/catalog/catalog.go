// Package catalog holds the pure read-only views over a movie
// snapshot: statistics, sorted and filtered listings, random pick.
package catalog

import (
	"errors"
	"math/rand"
	"sort"

	"moviedb/src/internal/schema"
)

// ErrEmpty reports an operation that needs at least one movie.
var ErrEmpty = errors.New("there are no movies in the catalog")

// Summary aggregates rating statistics over a snapshot. When Count is
// zero the numeric fields are meaningless and Best/Worst are empty.
type Summary struct {
	Count   int
	Average float64
	Median  float64
	Best    []schema.Movie
	Worst   []schema.Movie
}

// Stats computes count, mean and median rating, and every movie tied
// at the highest and lowest rating (original order preserved).
func Stats(movies []schema.Movie) Summary {
	s := Summary{Count: len(movies)}
	if s.Count == 0 {
		return s
	}
	ratings := make([]float64, 0, len(movies))
	sum := 0.0
	for _, m := range movies {
		ratings = append(ratings, m.Rating)
		sum += m.Rating
	}
	s.Average = sum / float64(len(ratings))
	s.Median = median(ratings)

	best, worst := ratings[0], ratings[0]
	for _, r := range ratings[1:] {
		if r > best {
			best = r
		}
		if r < worst {
			worst = r
		}
	}
	for _, m := range movies {
		if m.Rating == best {
			s.Best = append(s.Best, m)
		}
		if m.Rating == worst {
			s.Worst = append(s.Worst, m)
		}
	}
	return s
}

func median(ratings []float64) float64 {
	sorted := append([]float64(nil), ratings...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// SortByRating returns a copy ordered by descending rating; ties keep
// the original relative order.
func SortByRating(movies []schema.Movie) []schema.Movie {
	out := append([]schema.Movie(nil), movies...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out
}

// SortByYear returns a copy ordered by year, latest first when
// latestFirst is set; ties keep the original relative order.
func SortByYear(movies []schema.Movie, latestFirst bool) []schema.Movie {
	out := append([]schema.Movie(nil), movies...)
	sort.SliceStable(out, func(i, j int) bool {
		if latestFirst {
			return out[i].Year > out[j].Year
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// Filter returns the movies satisfying every provided bound, in
// original order. Nil bounds impose no constraint; bounds are
// inclusive; a start year after the end year yields an empty result.
func Filter(movies []schema.Movie, minRating *float64, startYear, endYear *int) []schema.Movie {
	if startYear != nil && endYear != nil && *startYear > *endYear {
		return nil
	}
	var out []schema.Movie
	for _, m := range movies {
		if minRating != nil && m.Rating < *minRating {
			continue
		}
		if startYear != nil && m.Year < *startYear {
			continue
		}
		if endYear != nil && m.Year > *endYear {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Random picks one movie uniformly. rng may be nil to use the shared
// source; tests inject a seeded one.
func Random(movies []schema.Movie, rng *rand.Rand) (schema.Movie, error) {
	if len(movies) == 0 {
		return schema.Movie{}, ErrEmpty
	}
	if rng == nil {
		return movies[rand.Intn(len(movies))], nil
	}
	return movies[rng.Intn(len(movies))], nil
}
