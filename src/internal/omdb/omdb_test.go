package omdb

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type fakeResp struct {
	status int
	body   string
}

type fakeHTTP struct {
	resp    fakeResp
	lastURL string
}

func (f *fakeHTTP) Do(req *http.Request) (*http.Response, error) {
	f.lastURL = req.URL.String()
	return &http.Response{
		StatusCode: f.resp.status,
		Body:       io.NopCloser(strings.NewReader(f.resp.body)),
		Header:     make(http.Header),
	}, nil
}

func swap(t *testing.T, f *fakeHTTP) {
	t.Helper()
	old := client
	t.Cleanup(func() { client = old })
	client = f
}

const matrixBody = `{
  "Response": "True",
  "Title": "The Matrix",
  "Year": "1999",
  "imdbRating": "8.7",
  "Poster": "https://img/matrix.jpg",
  "imdbID": "tt0133093",
  "Country": "United States, Australia"
}`

func TestFetchSuccess(t *testing.T) {
	f := &fakeHTTP{resp: fakeResp{status: 200, body: matrixBody}}
	swap(t, f)
	res, err := Client{APIKey: "k"}.Fetch(context.Background(), "the matrix")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	m := res.Movie
	if m.Title != "The Matrix" || m.Year != 1999 || m.Rating != 8.7 {
		t.Fatalf("bad mapping: %+v", m)
	}
	if m.Poster == "" || m.ImdbID != "tt0133093" {
		t.Fatalf("poster/imdb id missing: %+v", m)
	}
	if len(res.Countries) != 2 || res.Countries[1] != "Australia" {
		t.Fatalf("countries = %+v", res.Countries)
	}
	if !strings.Contains(f.lastURL, "t=the+matrix") || !strings.Contains(f.lastURL, "apikey=k") {
		t.Fatalf("query not encoded: %s", f.lastURL)
	}
}

func TestFetchAPIError(t *testing.T) {
	swap(t, &fakeHTTP{resp: fakeResp{status: 200, body: `{"Response":"False","Error":"Movie not found!"}`}})
	_, err := Client{APIKey: "k"}.Fetch(context.Background(), "nope")
	if err == nil || !strings.Contains(err.Error(), "Movie not found!") {
		t.Fatalf("want OMDb error surfaced, got %v", err)
	}
}

func TestFetchHTTPError(t *testing.T) {
	swap(t, &fakeHTTP{resp: fakeResp{status: 503, body: ""}})
	if _, err := (Client{APIKey: "k"}).Fetch(context.Background(), "x"); err == nil {
		t.Fatalf("expected error on http 503")
	}
}

func TestFetchMissingKey(t *testing.T) {
	if _, err := (Client{}).Fetch(context.Background(), "x"); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestFetchRejectsNARating(t *testing.T) {
	body := `{"Response":"True","Title":"Obscure","Year":"2001","imdbRating":"N/A","Poster":"N/A","imdbID":"tt1","Country":"N/A"}`
	swap(t, &fakeHTTP{resp: fakeResp{status: 200, body: body}})
	if _, err := (Client{APIKey: "k"}).Fetch(context.Background(), "Obscure"); err == nil {
		t.Fatalf("record without rating accepted")
	}
}

func TestFetchYearRange(t *testing.T) {
	body := `{"Response":"True","Title":"Show","Year":"2010–2012","imdbRating":"7.0","Poster":"N/A","imdbID":"tt2","Country":""}`
	swap(t, &fakeHTTP{resp: fakeResp{status: 200, body: body}})
	res, err := Client{APIKey: "k"}.Fetch(context.Background(), "Show")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Movie.Year != 2010 {
		t.Fatalf("year = %d, want 2010", res.Movie.Year)
	}
	if res.Movie.Poster != "" {
		t.Fatalf("N/A poster kept: %q", res.Movie.Poster)
	}
}
