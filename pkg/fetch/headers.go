package fetch

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains Accept-Language values sent to upstream
var acceptLanguages = []string{
	"ro-RO,ro;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,ro;q=0.8",
	"ro,en-US;q=0.9,en;q=0.8",
}

// addFeedHeaders adds browser-like headers, some upstream servers reject bare clients
func addFeedHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/rss+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
	req.Header.Set("Connection", "keep-alive")
}
