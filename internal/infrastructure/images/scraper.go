// Package images provides best-effort scraping of illustration URLs for
// terms, with a static fallback when no provider responds.
package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
)

const scraperUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	googleImagePattern = regexp.MustCompile(`\["(http[^"]+?\.(?:jpg|jpeg|png))"`)
	bingImagePattern   = regexp.MustCompile(`murl&quot;:&quot;(http[^&]+?)&quot;`)
)

// Scraper fetches candidate image URLs for a query from public image search
// pages. Every failure is swallowed: callers get whatever was found, possibly
// just the configured fallback.
type Scraper struct {
	enabled    bool
	fallback   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewScraper builds an image scraper from configuration.
func NewScraper(cfg *config.Config, logger *logrus.Logger) *Scraper {
	timeout := time.Duration(cfg.Images.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Scraper{
		enabled:  cfg.Images.Enabled,
		fallback: cfg.Images.Fallback,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// URLs returns up to count image URLs for the query. Google is tried first,
// then Bing; when both fail the static fallback (if configured) is returned.
func (s *Scraper) URLs(ctx context.Context, query string, count int) []string {
	if !s.enabled || count <= 0 {
		return s.fallbackURLs()
	}

	encoded := url.QueryEscape(query)
	urls := s.scrape(ctx,
		fmt.Sprintf("https://www.google.com/search?tbm=isch&q=%s", encoded),
		googleImagePattern, nil, count)
	if len(urls) < count {
		urls = s.scrape(ctx,
			fmt.Sprintf("https://www.bing.com/images/search?q=%s", encoded),
			bingImagePattern, urls, count)
	}
	if len(urls) == 0 {
		return s.fallbackURLs()
	}
	return urls
}

func (s *Scraper) scrape(ctx context.Context, pageURL string, pattern *regexp.Regexp, acc []string, count int) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return acc
	}
	req.Header.Set("User-Agent", scraperUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.WithError(err).Debug("image search request failed")
		return acc
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return acc
	}

	seen := make(map[string]bool, len(acc))
	for _, u := range acc {
		seen[u] = true
	}
	for _, match := range pattern.FindAllStringSubmatch(string(body), -1) {
		if u := match[1]; !seen[u] {
			seen[u] = true
			acc = append(acc, u)
			if len(acc) >= count {
				break
			}
		}
	}
	return acc
}

func (s *Scraper) fallbackURLs() []string {
	if s.fallback == "" {
		return nil
	}
	return []string{s.fallback}
}
