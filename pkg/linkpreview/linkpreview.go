// Package linkpreview fetches Open Graph metadata for URLs pasted into
// chat messages. Results are cached so repeated previews of the same
// link don't refetch the page.
package linkpreview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"octobot-be/internal/dto"
)

const (
	fetchTimeout = 5 * time.Second
	maxRedirects = 5
	maxBodyBytes = 2 << 20 // previews only need the <head>
	userAgent    = "Mozilla/5.0 (compatible; OctoBot/1.0)"
)

var titleTagRe = regexp.MustCompile(`(?i)<title[^>]*>([^<]*)</title>`)

type Fetcher struct {
	httpClient *http.Client
	cache      *cache.Cache
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		cache: cache.New(30*time.Minute, 10*time.Minute),
	}
}

// Fetch returns preview metadata for rawURL. Fetch never fails on
// unreachable pages; it degrades to a domain-plus-favicon preview so
// the chat surface always has something to render.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*dto.LinkPreviewResponse, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return nil, fmt.Errorf("invalid url: %s", rawURL)
	}

	if cached, found := f.cache.Get(rawURL); found {
		return cached.(*dto.LinkPreviewResponse), nil
	}

	domain := strings.TrimPrefix(parsed.Hostname(), "www.")
	preview := &dto.LinkPreviewResponse{
		Domain:  domain,
		Favicon: fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=64", domain),
		Url:     rawURL,
	}

	html, err := f.fetchHTML(ctx, rawURL)
	if err == nil {
		preview.Title = firstNonNil(
			metaContent(html, "og:title"),
			metaContent(html, "twitter:title"),
			titleTag(html),
		)
		preview.Description = firstNonNil(
			metaContent(html, "og:description"),
			metaContent(html, "twitter:description"),
			metaContent(html, "description"),
		)
		preview.Image = firstNonNil(
			metaContent(html, "og:image"),
			metaContent(html, "twitter:image"),
		)
		preview.SiteName = metaContent(html, "og:site_name")
	}

	f.cache.Set(rawURL, preview, cache.DefaultExpiration)
	return preview, nil
}

func (f *Fetcher) fetchHTML(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// metaContent pulls the content attribute of a meta tag matched by
// property or name, trying both attribute orders.
func metaContent(html, property string) *string {
	quoted := regexp.QuoteMeta(property)

	re := regexp.MustCompile(`(?i)<meta[^>]*(?:property|name)=["']` + quoted + `["'][^>]*content=["']([^"']*)["']`)
	if m := re.FindStringSubmatch(html); m != nil {
		return &m[1]
	}

	re = regexp.MustCompile(`(?i)<meta[^>]*content=["']([^"']*)["'][^>]*(?:property|name)=["']` + quoted + `["']`)
	if m := re.FindStringSubmatch(html); m != nil {
		return &m[1]
	}
	return nil
}

func titleTag(html string) *string {
	if m := titleTagRe.FindStringSubmatch(html); m != nil {
		title := strings.TrimSpace(m[1])
		if title != "" {
			return &title
		}
	}
	return nil
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
