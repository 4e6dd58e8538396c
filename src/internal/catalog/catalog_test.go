package catalog

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"moviedb/src/internal/schema"
)

func sample() []schema.Movie {
	return []schema.Movie{
		{Title: "Alpha", Year: 2000, Rating: 7.0},
		{Title: "Beta", Year: 2010, Rating: 9.0},
		{Title: "Gamma", Year: 2010, Rating: 9.0},
	}
}

func TestStats(t *testing.T) {
	s := Stats(sample())
	if s.Count != 3 {
		t.Fatalf("Count = %d", s.Count)
	}
	if math.Abs(s.Average-25.0/3.0) > 1e-9 {
		t.Fatalf("Average = %v", s.Average)
	}
	if s.Median != 9.0 {
		t.Fatalf("Median = %v", s.Median)
	}
	if len(s.Best) != 2 || s.Best[0].Title != "Beta" || s.Best[1].Title != "Gamma" {
		t.Fatalf("Best = %+v", s.Best)
	}
	if len(s.Worst) != 1 || s.Worst[0].Title != "Alpha" {
		t.Fatalf("Worst = %+v", s.Worst)
	}
}

func TestStatsEvenMedian(t *testing.T) {
	movies := []schema.Movie{
		{Title: "A", Year: 2000, Rating: 4.0},
		{Title: "B", Year: 2001, Rating: 6.0},
		{Title: "C", Year: 2002, Rating: 8.0},
		{Title: "D", Year: 2003, Rating: 9.0},
	}
	if got := Stats(movies).Median; got != 7.0 {
		t.Fatalf("even median = %v, want 7", got)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := Stats(nil)
	if s.Count != 0 || s.Average != 0 || len(s.Best) != 0 || len(s.Worst) != 0 {
		t.Fatalf("empty stats = %+v", s)
	}
}

func TestSortByRating(t *testing.T) {
	in := sample()
	got := SortByRating(in)
	if got[0].Title != "Beta" || got[1].Title != "Gamma" || got[2].Title != "Alpha" {
		t.Fatalf("order = %v %v %v", got[0].Title, got[1].Title, got[2].Title)
	}
	// idempotent: sorting the sorted list changes nothing
	again := SortByRating(got)
	for i := range got {
		if again[i].Title != got[i].Title {
			t.Fatalf("sort not idempotent at %d", i)
		}
	}
	// input untouched
	if in[0].Title != "Alpha" {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestSortByYear(t *testing.T) {
	got := SortByYear(sample(), true)
	if got[0].Title != "Beta" || got[1].Title != "Gamma" || got[2].Title != "Alpha" {
		t.Fatalf("latest-first order = %v %v %v", got[0].Title, got[1].Title, got[2].Title)
	}
	got = SortByYear(sample(), false)
	if got[0].Title != "Alpha" {
		t.Fatalf("oldest-first order starts with %v", got[0].Title)
	}
}

func TestFilter(t *testing.T) {
	zero := 0.0
	if got := Filter(sample(), &zero, nil, nil); len(got) != 3 || got[0].Title != "Alpha" {
		t.Fatalf("min 0 filter = %+v", got)
	}
	min := 8.0
	if got := Filter(sample(), &min, nil, nil); len(got) != 2 {
		t.Fatalf("min 8 filter = %+v", got)
	}
	start, end := 2005, 2015
	if got := Filter(sample(), nil, &start, &end); len(got) != 2 {
		t.Fatalf("year filter = %+v", got)
	}
	// inclusive bounds
	start, end = 2010, 2010
	if got := Filter(sample(), nil, &start, &end); len(got) != 2 {
		t.Fatalf("inclusive year filter = %+v", got)
	}
	// start after end: empty, not an error
	start, end = 2015, 2005
	if got := Filter(sample(), nil, &start, &end); len(got) != 0 {
		t.Fatalf("inverted bounds = %+v", got)
	}
}

func TestRandom(t *testing.T) {
	if _, err := Random(nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty catalog: want ErrEmpty, got %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		m, err := Random(sample(), rng)
		if err != nil {
			t.Fatal(err)
		}
		seen[m.Title] = true
	}
	if len(seen) != 3 {
		t.Fatalf("100 draws hit %d of 3 movies", len(seen))
	}
}
