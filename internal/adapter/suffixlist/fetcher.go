// Package suffixlist resolves the public-suffix set used by the strict
// domain-validation variant. The fetch happens once at startup, outside
// the matching path, and degrades to a builtin subset when the list is
// unreachable, so matching never blocks on the network.
package suffixlist

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// builtin is the static fallback set served when the fetch fails.
var builtin = map[string]struct{}{
	"ac.uk": {}, "gov.uk": {}, "uk": {}, "co.uk": {},
	"com": {}, "org": {}, "net": {}, "edu": {}, "gov": {},
	"io": {}, "ai": {}, "dev": {}, "biz": {}, "info": {},
}

// Fetcher downloads the public suffix list with a short timeout.
type Fetcher struct {
	url     string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// NewFetcher creates a Fetcher for the given list URL.
func NewFetcher(url string, timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "suffixlist"),
	}
}

// Builtin returns a copy of the static fallback set.
func Builtin() map[string]struct{} {
	out := make(map[string]struct{}, len(builtin))
	for s := range builtin {
		out[s] = struct{}{}
	}
	return out
}

// Resolve fetches and parses the suffix list. Any failure, network or
// otherwise, is logged and answered with the builtin fallback; Resolve
// never returns an error because the caller can always proceed.
func (f *Fetcher) Resolve(ctx context.Context) map[string]struct{} {
	suffixes, err := f.fetch(ctx)
	if err != nil {
		f.logger.Warn("public suffix list unavailable, using builtin fallback", "url", f.url, "error", err)
		return Builtin()
	}

	f.logger.Info("public suffix list loaded", "suffixes", len(suffixes))
	return suffixes
}

func (f *Fetcher) fetch(ctx context.Context) (map[string]struct{}, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	suffixes := make(map[string]struct{})
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		suffixes[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(suffixes) == 0 {
		return nil, fmt.Errorf("list at %s is empty", f.url)
	}

	return suffixes, nil
}
