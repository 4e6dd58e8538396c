// Package countries maps country names to ISO alpha-2 codes and flag
// image URLs, using the Rest Countries API.
package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"moviedb/src/internal/httpx"
)

// DefaultBaseURL lists all countries with just the fields we need.
const DefaultBaseURL = "https://restcountries.com/v3.1/all?fields=name,cca2"

// flagHost serves 64px flat flag images per ISO code.
const flagHost = "https://flagsapi.com"

var client httpx.Doer = httpx.Default()

// SetHTTPClient allows injection for tests.
func SetHTTPClient(c httpx.Doer) { client = c }

// Codes maps a country's common name to its ISO 3166-1 alpha-2 code.
type Codes map[string]string

// Fetch downloads the name-to-code mapping. Failures are reported to
// the caller, which degrades to a record without flags.
func Fetch(ctx context.Context, baseURL string) (Codes, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("countries: %w", err)
	}
	httpx.SetUA(req)
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("countries: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("countries: http %d", resp.StatusCode)
	}
	var out []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
		CCA2 string `json:"cca2"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("countries: decode: %w", err)
	}
	codes := Codes{}
	for _, c := range out {
		name := strings.TrimSpace(c.Name.Common)
		code := strings.TrimSpace(c.CCA2)
		if name != "" && code != "" {
			codes[name] = code
		}
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("countries: empty mapping")
	}
	return codes, nil
}

// FlagURL builds the flag image URL for an ISO alpha-2 code.
func FlagURL(code string) string {
	return fmt.Sprintf("%s/%s/flat/64.png", flagHost, strings.ToUpper(strings.TrimSpace(code)))
}

// FlagURLs resolves up to max country names to flag URLs. Names the
// mapping does not know are skipped and returned as missing; scanning
// stops once max flags have resolved, so later names are not consulted.
func (c Codes) FlagURLs(names []string, max int) (urls, missing []string) {
	for _, name := range names {
		if len(urls) >= max {
			break
		}
		name = strings.TrimSpace(name)
		if code, ok := c[name]; ok {
			urls = append(urls, FlagURL(code))
		} else {
			missing = append(missing, name)
		}
	}
	return urls, missing
}
