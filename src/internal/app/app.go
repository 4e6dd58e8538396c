// Package app drives the interactive menu over a catalog snapshot.
package app

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"moviedb/src/internal/omdb"
	"moviedb/src/internal/schema"
	"moviedb/src/internal/store"
)

// Options wires the app's collaborators; zero fields get defaults.
type Options struct {
	Storage      store.Storage
	In           io.Reader
	Out          io.Writer
	OMDB         omdb.Client
	CountriesURL string
	WebsiteDir   string
	Rand         *rand.Rand
}

// App owns the in-memory snapshot for one session. Mutating commands
// persist the full snapshot immediately.
type App struct {
	storage      store.Storage
	movies       []schema.Movie
	in           *bufio.Scanner
	out          io.Writer
	omdb         omdb.Client
	countriesURL string
	websiteDir   string
	rng          *rand.Rand
}

// New loads the catalog and returns a ready app. A missing catalog
// file starts an empty session; a corrupt one is an error.
func New(opts Options) (*App, error) {
	movies, err := opts.Storage.Load()
	if err != nil {
		return nil, err
	}
	dir := opts.WebsiteDir
	if dir == "" {
		dir = "_static"
	}
	return &App{
		storage:      opts.Storage,
		movies:       movies,
		in:           bufio.NewScanner(opts.In),
		out:          opts.Out,
		omdb:         opts.OMDB,
		countriesURL: opts.CountriesURL,
		websiteDir:   dir,
		rng:          opts.Rand,
	}, nil
}

// Movies exposes the current snapshot (for the root command's tests).
func (a *App) Movies() []schema.Movie { return a.movies }

type menuItem struct {
	label string
	run   func(*App)
}

// menu is the numbered dispatch table; index 0 is Exit.
var menu = []menuItem{
	{"Exit", nil},
	{"List movies", (*App).listMovies},
	{"Add movie", (*App).addMovie},
	{"Delete movie", (*App).deleteMovie},
	{"Update movie note", (*App).updateNote},
	{"Stats", (*App).showStats},
	{"Random movie", (*App).randomMovie},
	{"Search movie", (*App).searchMovie},
	{"Movies sorted by rating", (*App).sortedByRating},
	{"Movies sorted by year", (*App).sortedByYear},
	{"Filter movies", (*App).filterMovies},
	{"Generate website", (*App).generateWebsite},
}

// Run loops the menu until the user exits or input ends.
func (a *App) Run() {
	fmt.Fprintln(a.out, text.FgCyan.Sprint("\n********** My Movies Database **********"))
	for {
		fmt.Fprintln(a.out, "\nMenu:")
		for i, item := range menu {
			fmt.Fprintf(a.out, "%d. %s\n", i, item.label)
		}
		line, ok := a.readLine(fmt.Sprintf("\nEnter choice (0-%d): ", len(menu)-1))
		if !ok {
			return
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice >= len(menu) {
			a.errorf("Invalid choice. Please enter a number between 0 and %d.", len(menu)-1)
			continue
		}
		if menu[choice].run == nil {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
		fmt.Fprintln(a.out)
		menu[choice].run(a)
		if _, ok := a.readLine("\nPress enter to continue"); !ok {
			return
		}
	}
}

// readLine prompts and reads one line; ok is false at end of input.
func (a *App) readLine(prompt string) (string, bool) {
	a.printf("%s", prompt)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// promptNonEmpty re-prompts until it gets a non-blank value.
func (a *App) promptNonEmpty(prompt string) (string, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return "", false
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, true
		}
		a.errorf("Value cannot be empty.")
	}
}

// promptYesNo re-prompts until the answer is y or n.
func (a *App) promptYesNo(prompt string) (bool, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, true
		case "n":
			return false, true
		}
		a.errorf("Please enter 'Y' or 'N'.")
	}
}

// promptOptionalFloat accepts a blank line as "no bound".
func (a *App) promptOptionalFloat(prompt string, lo, hi float64) (*float64, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return nil, false
		}
		s := strings.TrimSpace(line)
		if s == "" {
			return nil, true
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			a.errorf("Invalid input. Please enter a valid rating.")
			continue
		}
		if v < lo || v > hi {
			a.errorf("Please enter a rating between %.0f and %.0f.", lo, hi)
			continue
		}
		return &v, true
	}
}

// promptOptionalInt accepts a blank line as "no bound".
func (a *App) promptOptionalInt(prompt string) (*int, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return nil, false
		}
		s := strings.TrimSpace(line)
		if s == "" {
			return nil, true
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			a.errorf("Invalid input. Please enter a valid year.")
			continue
		}
		return &v, true
	}
}

// requireMovies reports and returns false when the catalog is empty.
func (a *App) requireMovies() bool {
	if len(a.movies) == 0 {
		a.errorf("There are no movies available.")
		return false
	}
	return true
}
