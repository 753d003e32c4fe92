// SPDX-License-Identifier: GPL-3.0-only

package fetcher

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mccmnc-server/commons"

	"github.com/PuerkitoBio/goquery"
)

// ContentSelector locates the article body of a rendered wiki page.
const ContentSelector = "#mw-content-text > .mw-parser-output"

const defaultUserAgent = "mccmnc-server/1.0 (+https://en.wikipedia.org/wiki/Mobile_country_code)"

var ErrNoContent = errors.New("content container not found")

// Fetcher retrieves a wiki page and returns its content container.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Selection, error)
}

type Config struct {
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
}

type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

func NewHTTPFetcher(c Config) *HTTPFetcher {
	if c.Timeout == 0 {
		c.Timeout = commons.GetEnvDuration("FETCH_TIMEOUT", 30*time.Second)
	}
	if c.UserAgent == "" {
		c.UserAgent = commons.GetEnv("FETCH_USER_AGENT", defaultUserAgent)
	}
	if c.Client == nil {
		c.Client = &http.Client{Timeout: c.Timeout}
	}
	return &HTTPFetcher{client: c.Client, userAgent: c.UserAgent}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*goquery.Selection, error) {
	commons.Logger.Debugf("Fetching document: %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		commons.Logger.Errorf("Failed to fetch %s: %s", url, resp.Status)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	content := doc.Find(ContentSelector).First()
	if content.Length() == 0 {
		return nil, &ParseError{URL: url, Err: ErrNoContent}
	}
	return content, nil
}
