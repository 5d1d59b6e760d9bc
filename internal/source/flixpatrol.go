package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/errors"
)

const (
	defaultFlixPatrolURL = "https://flixpatrol.com"
	defaultCountry       = "france"
	maxPageSize          = 8 << 20
)

// flixPatrolPlatforms maps catalog platforms onto FlixPatrol's platform query values.
var flixPatrolPlatforms = map[catalog.Platform]string{
	catalog.Netflix:   "netflix",
	catalog.Prime:     "amazon-prime",
	catalog.Disney:    "disney",
	catalog.HBO:       "hbo-max",
	catalog.Paramount: "paramount-plus",
	catalog.Apple:     "apple-tv",
}

// Scraper lists titles by scraping the FlixPatrol Top 10 page of a country.
type Scraper struct {
	baseURL    string
	country    string
	parser     Parser
	httpClient HTTPDoer
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithScraperBaseURL sets the FlixPatrol base URL.
func WithScraperBaseURL(base string) ScraperOption {
	return func(s *Scraper) {
		if base != "" {
			s.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithCountry sets the country whose ranking is scraped.
func WithCountry(country string) ScraperOption {
	return func(s *Scraper) {
		if country != "" {
			s.country = country
		}
	}
}

// WithParser sets the markup parser.
func WithParser(p Parser) ScraperOption {
	return func(s *Scraper) {
		if p != nil {
			s.parser = p
		}
	}
}

// WithScraperHTTPClient sets a custom HTTP client.
func WithScraperHTTPClient(c HTTPDoer) ScraperOption {
	return func(s *Scraper) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// NewScraper creates a FlixPatrol scraper.
func NewScraper(opts ...ScraperOption) *Scraper {
	s := &Scraper{
		baseURL:    defaultFlixPatrolURL,
		country:    defaultCountry,
		parser:     RegexParser{},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PageURL returns the ranking page URL for a platform and category.
func (s *Scraper) PageURL(platform catalog.Platform, category catalog.Category) string {
	name, ok := flixPatrolPlatforms[platform]
	if !ok {
		name = string(platform)
	}
	params := url.Values{}
	params.Set("platform", name)
	params.Set("type", string(category))
	return fmt.Sprintf("%s/top10/streaming/%s/?%s", s.baseURL, url.PathEscape(s.country), params.Encode())
}

// List implements Lister.
func (s *Scraper) List(ctx context.Context, platform catalog.Platform, category catalog.Category) []catalog.RankedTitle {
	titles, err := s.scrape(ctx, platform, category)
	if err != nil {
		slog.Error("Error scraping FlixPatrol",
			"platform", platform,
			"category", category,
			"parser", s.parser.Name(),
			"error", errors.NewLookupError(errors.ListingUnavailable, platform.DisplayName(), err))
		return nil
	}
	slog.Debug("Scraped FlixPatrol ranking", "platform", platform, "category", category, "titles", len(titles))
	return titles
}

func (s *Scraper) scrape(ctx context.Context, platform catalog.Platform, category catalog.Category) ([]catalog.RankedTitle, error) {
	pageURL := s.PageURL(platform, category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewStatusError("flixpatrol", resp.StatusCode, "")
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	return s.parser.Parse(page)
}
