// Package fuzzy scores approximate matches between a typed query and
// stored movie titles, tolerating typos and partial input.
package fuzzy

import (
	"sort"

	"moviedb/src/internal/schema"
)

// Threshold is the similarity a title must exceed to count as a match.
const Threshold = 60

// MaxResults caps how many candidates a search returns.
const MaxResults = 5

// Match is one scored candidate title.
type Match struct {
	Title string
	Index int // position in the original title list
	Score int // 0..100
}

// Ratio returns a 0..100 similarity between two strings after title
// normalization. Insertions and deletions cost 1, substitutions 2, and
// the score is 100*(la+lb-dist)/(la+lb); identical strings score 100.
func Ratio(a, b string) int {
	ra := []rune(schema.NormalizeTitle(a))
	rb := []rune(schema.NormalizeTitle(b))
	return ratioRunes(ra, rb)
}

func ratioRunes(ra, rb []rune) int {
	la, lb := len(ra), len(rb)
	if la == 0 && lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}
	d := editDistance(ra, rb)
	return (100*(la+lb-d) + (la+lb)/2) / (la + lb)
}

// editDistance computes weighted Levenshtein distance over runes with
// substitution cost 2, using a rolling single-row table.
func editDistance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		prev := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			cur := row[i]
			cost := prev
			if a[i-1] != b[j-1] {
				cost += 2
			}
			if del := row[i] + 1; del < cost {
				cost = del
			}
			if ins := row[i-1] + 1; ins < cost {
				cost = ins
			}
			row[i] = cost
			prev = cur
		}
	}
	return row[len(a)]
}

// PartialRatio returns the best Ratio of the query against any
// query-sized window of the candidate, so "god" still scores 100
// against "The Godfather". Falls back to the plain ratio when the
// query is not shorter than the candidate.
func PartialRatio(query, candidate string) int {
	q := []rune(schema.NormalizeTitle(query))
	c := []rune(schema.NormalizeTitle(candidate))
	if len(q) == 0 || len(c) == 0 {
		return ratioRunes(q, c)
	}
	if len(q) >= len(c) {
		return ratioRunes(q, c)
	}
	best := 0
	for i := 0; i+len(q) <= len(c); i++ {
		if s := ratioRunes(q, c[i:i+len(q)]); s > best {
			best = s
			if best == 100 {
				break
			}
		}
	}
	return best
}

// Score combines full and partial ratios for a query against a title.
func Score(query, title string) int {
	full := Ratio(query, title)
	if p := PartialRatio(query, title); p > full {
		return p
	}
	return full
}

// Search returns the titles whose similarity to the query exceeds
// Threshold, best first; ties keep the original catalog order. A blank
// query matches nothing, and an exact title always scores 100.
func Search(query string, titles []string) []Match {
	if schema.NormalizeTitle(query) == "" {
		return nil
	}
	var out []Match
	for i, title := range titles {
		if s := Score(query, title); s > Threshold {
			out = append(out, Match{Title: title, Index: i, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}
