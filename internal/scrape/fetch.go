package scrape

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"jobwatch/internal/scrape/util"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (compatible; JobWatcher/1.0; +https://github.com/yourrepo)"
	DefaultTimeout   = 20 * time.Second

	maxPageBytes = 8 << 20
)

type FetchConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// Fetcher downloads career pages. Failures are logged and reported as an
// empty page; callers skip the company for this run.
type Fetcher struct {
	cfg     FetchConfig
	hc      *http.Client
	limiter *util.HostLimiter
}

func NewFetcher(cfg FetchConfig, limiter *util.HostLimiter) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if limiter == nil {
		limiter = util.NewHostLimiter(0, 1)
	}
	return &Fetcher{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

// Fetch returns the page body, or "" on any error, timeout or non-2xx status.
func (f *Fetcher) Fetch(ctx context.Context, url string) string {
	body, err := f.get(ctx, url)
	if err != nil {
		log.Printf("[!] Error fetching %s: %v", url, err)
		return ""
	}
	return body
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	if err := f.limiter.WaitURL(ctx, url); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	res, err := f.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("status %s", res.Status)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}
