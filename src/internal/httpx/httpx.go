package httpx

import (
	"net/http"
	"time"
)

// Doer is the minimal HTTP client interface used across packages.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BrowserUA is a consistent desktop User-Agent for all outbound HTTP.
const BrowserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// SetUA sets the BrowserUA header on the request.
func SetUA(req *http.Request) {
	if req != nil {
		req.Header.Set("User-Agent", BrowserUA)
	}
}

// Default returns the shared client used when none is injected.
func Default() Doer { return &http.Client{Timeout: 10 * time.Second} }
