// Package net owns the single HTTP client used to download dictionary
// resources.
package net

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"
)

// shared client (keep-alive, TLS session reuse).
var client = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        8,
		MaxIdleConnsPerHost: 4,
		DisableCompression:  false,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
	},
}

// NewGET builds a pre-populated download request.
func NewGET(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ua)
	return req, nil
}

// Do forwards to the shared *http.Client.
func Do(req *http.Request) (*http.Response, error) { return client.Do(req) }

const ua = "spellscan/1.0 (+https://github.com/Alfex4936/spellscan)"
