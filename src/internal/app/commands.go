package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moviedb/src/internal/catalog"
	"moviedb/src/internal/countries"
	"moviedb/src/internal/fuzzy"
	"moviedb/src/internal/omdb"
	"moviedb/src/internal/schema"
	"moviedb/src/internal/store"
	"moviedb/src/internal/website"
)

func (a *App) listMovies() {
	if !a.requireMovies() {
		return
	}
	a.printf("%d movies in total\n", len(a.movies))
	renderMovieTable(a.out, a.movies)
}

func (a *App) addMovie() {
	title, ok := a.promptNonEmpty("Enter movie name: ")
	if !ok {
		return
	}
	res, ok := a.lookupMovie(title)
	if !ok {
		return
	}
	movie := res.Movie
	if _, _, err := store.Find(a.movies, movie.Title); err == nil {
		a.errorf("Movie '%s' already exists!", movie.Title)
		return
	}
	if len(res.Countries) > 0 {
		codes, err := countries.Fetch(context.Background(), a.countriesURL)
		if err != nil {
			a.noticef("Could not resolve country flags: %v", err)
		} else {
			urls, missing := codes.FlagURLs(res.Countries, 3)
			movie.Flags = urls
			for _, name := range missing {
				a.noticef("Country '%s' not found.", name)
			}
		}
	}
	next, err := store.Add(a.storage, a.movies, movie)
	if err != nil {
		a.errorf("Failed to add movie: %v", err)
		return
	}
	a.movies = next
	a.successf("Movie '%s' successfully added!", movie.Title)
}

// lookupMovie resolves a typed title through OMDb, confirming partial
// matches with the user; on lookup failure it offers manual entry.
func (a *App) lookupMovie(title string) (omdb.Result, bool) {
	var res omdb.Result
	for {
		fetched, err := a.omdb.Fetch(context.Background(), title)
		if err != nil {
			a.errorf("Error fetching movie data: %v", err)
			manual, cont := a.promptYesNo("Add the movie manually instead? (Y/N): ")
			if !cont || !manual {
				return res, false
			}
			m, ok := a.promptManualMovie(title)
			if !ok {
				return res, false
			}
			res.Movie = m
			return res, true
		}
		if !schema.TitlesEqual(fetched.Movie.Title, title) {
			a.noticef("Did you mean '%s'? (Y/N)", fetched.Movie.Title)
			yes, cont := a.promptYesNo("")
			if !cont {
				return res, false
			}
			if !yes {
				a.noticef("Please enter the full movie name or refine the title.")
				title, cont = a.promptNonEmpty("Enter movie name: ")
				if !cont {
					return res, false
				}
				continue
			}
		}
		res.Movie = fetched.Movie
		res.Countries = fetched.Countries
		return res, true
	}
}

// promptManualMovie collects title, year, rating and an optional
// poster URL directly from the user.
func (a *App) promptManualMovie(title string) (schema.Movie, bool) {
	for {
		year, ok := a.promptOptionalInt(fmt.Sprintf("Enter release year for '%s': ", title))
		if !ok {
			return schema.Movie{}, false
		}
		if year == nil {
			a.errorf("Year is required for manual entry.")
			continue
		}
		rating, ok := a.promptOptionalFloat("Enter rating (0-10): ", 0, 10)
		if !ok {
			return schema.Movie{}, false
		}
		if rating == nil {
			a.errorf("Rating is required for manual entry.")
			continue
		}
		poster, ok := a.readLine("Enter poster URL (optional): ")
		if !ok {
			return schema.Movie{}, false
		}
		m := schema.Movie{Title: title, Year: *year, Rating: *rating, Poster: strings.TrimSpace(poster)}
		if err := m.Validate(); err != nil {
			a.errorf("%v", err)
			continue
		}
		return m, true
	}
}

func (a *App) deleteMovie() {
	if !a.requireMovies() {
		return
	}
	title, ok := a.promptNonEmpty("Enter movie name: ")
	if !ok {
		return
	}
	stored, _, err := store.Find(a.movies, title)
	if err != nil {
		a.errorf("Movie '%s' doesn't exist!", title)
		return
	}
	next, err := store.Delete(a.storage, a.movies, title)
	if err != nil {
		a.errorf("Failed to delete movie '%s': %v", stored.Title, err)
		return
	}
	a.movies = next
	a.successf("Movie '%s' successfully deleted.", stored.Title)
}

func (a *App) updateNote() {
	if !a.requireMovies() {
		return
	}
	title, ok := a.promptNonEmpty("Enter movie name: ")
	if !ok {
		return
	}
	stored, _, err := store.Find(a.movies, title)
	if err != nil {
		a.errorf("Movie '%s' doesn't exist!", title)
		return
	}
	note, ok := a.readLine("Enter movie notes (leave blank to remove or skip): ")
	if !ok {
		return
	}
	next, err := store.SetNote(a.storage, a.movies, title, note)
	if err != nil {
		a.errorf("Failed to update movie '%s': %v", stored.Title, err)
		return
	}
	a.movies = next
	if strings.TrimSpace(note) != "" {
		a.successf("Movie '%s' successfully updated with note: %s.", stored.Title, strings.TrimSpace(note))
	} else {
		a.successf("The note for movie '%s' removed or not added.", stored.Title)
	}
}

func (a *App) showStats() {
	if !a.requireMovies() {
		return
	}
	s := catalog.Stats(a.movies)
	a.printf("Average rating: %.1f\n", s.Average)
	a.printf("Median rating: %.1f\n", s.Median)
	for _, m := range s.Best {
		a.printf("Best movie: %s: %.1f\n", m.Title, m.Rating)
	}
	for _, m := range s.Worst {
		a.printf("Worst movie: %s: %.1f\n", m.Title, m.Rating)
	}
}

func (a *App) randomMovie() {
	m, err := catalog.Random(a.movies, a.rng)
	if err != nil {
		if errors.Is(err, catalog.ErrEmpty) {
			a.errorf("There are no movies available.")
			return
		}
		a.errorf("%v", err)
		return
	}
	a.printf("Your movie for tonight: %s, it's rated %.1f\n", m.Title, m.Rating)
}

func (a *App) searchMovie() {
	if !a.requireMovies() {
		return
	}
	query, ok := a.readLine("Enter part of movie name: ")
	if !ok {
		return
	}
	if len(strings.TrimSpace(query)) < 2 {
		a.errorf("Please enter at least 2 characters for the search.")
		return
	}
	titles := make([]string, len(a.movies))
	for i, m := range a.movies {
		titles[i] = m.Title
	}
	matches := fuzzy.Search(query, titles)
	if len(matches) == 0 {
		a.errorf("No similar movies found.")
		return
	}
	a.printf("Results for \"%s\":\n", strings.TrimSpace(query))
	for _, match := range matches {
		a.printf("%s: %.1f\n", match.Title, a.movies[match.Index].Rating)
	}
}

func (a *App) sortedByRating() {
	if !a.requireMovies() {
		return
	}
	renderMovieTable(a.out, catalog.SortByRating(a.movies))
}

func (a *App) sortedByYear() {
	if !a.requireMovies() {
		return
	}
	latestFirst, ok := a.promptYesNo("Do you want the latest movies first? (Y/N): ")
	if !ok {
		return
	}
	renderMovieTable(a.out, catalog.SortByYear(a.movies, latestFirst))
}

func (a *App) filterMovies() {
	if !a.requireMovies() {
		return
	}
	minRating, ok := a.promptOptionalFloat("Enter minimum rating (leave blank for no minimum rating): ", 0, 10)
	if !ok {
		return
	}
	startYear, ok := a.promptOptionalInt("Enter start year (leave blank for no start year): ")
	if !ok {
		return
	}
	endYear, ok := a.promptOptionalInt("Enter end year (leave blank for no end year): ")
	if !ok {
		return
	}
	filtered := catalog.Filter(a.movies, minRating, startYear, endYear)
	if len(filtered) == 0 {
		a.errorf("No movies match the filter criteria.")
		return
	}
	renderMovieTable(a.out, filtered)
}

func (a *App) generateWebsite() {
	out, err := website.Generate(a.movies, a.websiteDir)
	if err != nil {
		a.errorf("Failed to generate website: %v", err)
		return
	}
	a.successf("Website was generated successfully: %s", out)
}
