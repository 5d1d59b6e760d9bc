package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/errors"
)

// Mirror lists titles from a pre-built JSON document, typically a raw file
// published by a scheduled scrape. The URL template may contain {platform}
// and {category} placeholders.
type Mirror struct {
	urlTemplate string
	httpClient  HTTPDoer
}

// NewMirror creates a mirror lister. A nil client uses a default HTTP client.
func NewMirror(urlTemplate string, client HTTPDoer) *Mirror {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Mirror{urlTemplate: urlTemplate, httpClient: client}
}

// URL expands the template for a platform and category.
func (m *Mirror) URL(platform catalog.Platform, category catalog.Category) string {
	r := strings.NewReplacer("{platform}", string(platform), "{category}", string(category))
	return r.Replace(m.urlTemplate)
}

// List implements Lister.
func (m *Mirror) List(ctx context.Context, platform catalog.Platform, category catalog.Category) []catalog.RankedTitle {
	titles, err := m.fetch(ctx, platform, category)
	if err != nil {
		slog.Warn("Mirror listing unavailable",
			"platform", platform,
			"category", category,
			"error", errors.NewLookupError(errors.ListingUnavailable, m.URL(platform, category), err))
		return nil
	}
	return titles
}

// mirrorEntry accepts both the snapshot format ("name") and plain lists ("title").
type mirrorEntry struct {
	Title string `json:"title"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
}

func (m *Mirror) fetch(ctx context.Context, platform catalog.Platform, category catalog.Category) ([]catalog.RankedTitle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL(platform, category), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mirror: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewStatusError("mirror", resp.StatusCode, "")
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode mirror document: %w", err)
	}

	return decodeEntries(raw), nil
}

func decodeEntries(raw []json.RawMessage) []catalog.RankedTitle {
	titles := make([]catalog.RankedTitle, 0, Limit)
	for _, element := range raw {
		if len(titles) >= Limit {
			break
		}

		var title, slug string
		var s string
		var entry mirrorEntry
		switch {
		case json.Unmarshal(element, &s) == nil:
			title = s
		case json.Unmarshal(element, &entry) == nil:
			title = entry.Title
			if title == "" {
				title = entry.Name
			}
			slug = entry.Slug
		default:
			continue
		}

		title = cleanTitle(title)
		if title == "" {
			continue
		}
		titles = append(titles, catalog.RankedTitle{Rank: len(titles) + 1, Title: title, Slug: slug})
	}
	return titles
}
