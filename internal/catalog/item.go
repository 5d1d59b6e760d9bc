package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Al69m/top10-streaming-fr/internal/lookup"
)

// ItemIDPrefix prefixes every item ID served by the addon.
const ItemIDPrefix = "tmdb:"

// Item is a Stremio meta preview, the only entity served to catalog clients.
type Item struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Poster      string `json:"poster,omitempty"`
	Description string `json:"description,omitempty"`
	ReleaseInfo string `json:"releaseInfo,omitempty"`
	IMDbRating  string `json:"imdbRating,omitempty"`
}

// Response is the body of a catalog request.
type Response struct {
	Metas []Item `json:"metas"`
}

// Assemble combines a ranked title with its resolved metadata and optional rating.
// The rating line is prepended to the synopsis only when a rating was found and
// carries at least one score.
func Assemble(title RankedTitle, meta Metadata, rating lookup.Result[Rating]) Item {
	name := meta.Name
	if name == "" {
		name = title.Title
	}

	item := Item{
		ID:          ItemIDPrefix + strconv.Itoa(meta.ProviderID),
		Type:        meta.Kind.StremioType(),
		Name:        name,
		Poster:      meta.Poster,
		Description: meta.Synopsis,
		ReleaseInfo: meta.Year,
	}

	r, ok := rating.Get()
	if !ok {
		return item
	}

	if line := RatingLine(r); line != "" {
		if item.Description == "" {
			item.Description = line
		} else {
			item.Description = line + "\n" + item.Description
		}
	}
	if r.IMDb != nil {
		item.IMDbRating = strconv.FormatFloat(*r.IMDb, 'f', 1, 64)
	}

	return item
}

// RatingLine formats the present scores as "⭐ 8.1 | 🍅 90% | Ⓜ️ 75".
// It returns an empty string when no score is present.
func RatingLine(r Rating) string {
	parts := make([]string, 0, 3)
	if r.IMDb != nil {
		parts = append(parts, fmt.Sprintf("⭐ %.1f", *r.IMDb))
	}
	if r.RottenTomatoes != nil {
		parts = append(parts, fmt.Sprintf("🍅 %d%%", *r.RottenTomatoes))
	}
	if r.Metacritic != nil {
		parts = append(parts, fmt.Sprintf("Ⓜ️ %d", *r.Metacritic))
	}
	return strings.Join(parts, " | ")
}
