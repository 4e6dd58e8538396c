// Package omdb looks up movie metadata on the OMDb API to pre-fill new
// catalog records.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"moviedb/src/internal/httpx"
	"moviedb/src/internal/schema"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

var client httpx.Doer = httpx.Default()

// SetHTTPClient allows injection for tests.
func SetHTTPClient(c httpx.Doer) { client = c }

// Result carries the fields OMDb returns that the catalog cares about,
// plus the raw country list used for flag resolution.
type Result struct {
	Movie     schema.Movie
	Countries []string
}

// Client queries one OMDb deployment with one API key.
type Client struct {
	BaseURL string
	APIKey  string
}

// Fetch resolves a title to a Result. Missing key, transport failures,
// OMDb's own "Movie not found!" and records without a usable year or
// rating all surface as errors; the caller falls back to manual entry.
func (c Client) Fetch(ctx context.Context, title string) (Result, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return Result{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return Result{}, fmt.Errorf("omdb: missing api key (set OMDB_API_KEY)")
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return Result{}, fmt.Errorf("omdb: bad base url: %w", err)
	}
	q := u.Query()
	q.Set("t", t)
	q.Set("type", "movie")
	q.Set("apikey", c.APIKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	httpx.SetUA(req)
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("omdb: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("omdb: http %d", resp.StatusCode)
	}
	var out struct {
		Response   string `json:"Response"`
		Error      string `json:"Error"`
		Title      string `json:"Title"`
		Year       string `json:"Year"`
		ImdbRating string `json:"imdbRating"`
		Poster     string `json:"Poster"`
		ImdbID     string `json:"imdbID"`
		Country    string `json:"Country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("omdb: decode: %w", err)
	}
	if !strings.EqualFold(out.Response, "true") {
		if out.Error != "" {
			return Result{}, fmt.Errorf("omdb: %s", out.Error)
		}
		return Result{}, fmt.Errorf("omdb: no results")
	}
	return mapResult(t, out.Title, out.Year, out.ImdbRating, out.Poster, out.ImdbID, out.Country)
}

func mapResult(queried, title, year, rating, poster, imdbID, country string) (Result, error) {
	var m schema.Movie
	m.Title = strings.TrimSpace(title)
	if m.Title == "" {
		m.Title = queried
	}
	y, err := parseYear(year)
	if err != nil {
		return Result{}, fmt.Errorf("omdb: %w", err)
	}
	m.Year = y
	r, err := parseRating(rating)
	if err != nil {
		return Result{}, fmt.Errorf("omdb: %w", err)
	}
	m.Rating = r
	if p := strings.TrimSpace(poster); p != "" && p != "N/A" {
		m.Poster = p
	}
	if id := strings.TrimSpace(imdbID); id != "" && id != "N/A" {
		m.ImdbID = id
	}
	res := Result{Movie: m}
	for _, c := range strings.Split(country, ",") {
		if c = strings.TrimSpace(c); c != "" && c != "N/A" {
			res.Countries = append(res.Countries, c)
		}
	}
	return res, nil
}

// parseYear tolerates OMDb range values like "2010–2012" by taking the
// leading 4 digits.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("no year in response")
	}
	if len(s) > 4 {
		s = s[:4]
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad year %q", s)
	}
	return y, nil
}

func parseRating(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("no rating in response")
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad rating %q", s)
	}
	return r, nil
}
