// Package catalog defines the Top 10 catalogs, their identifiers, the Stremio
// manifest and the items served from each catalog.
package catalog

import (
	"fmt"
	"strings"
)

// Platform is a streaming service with a daily Top 10.
type Platform string

const (
	Netflix   Platform = "netflix"
	Prime     Platform = "prime"
	Disney    Platform = "disney"
	HBO       Platform = "hbo"
	Paramount Platform = "paramount"
	Apple     Platform = "apple"
)

var platforms = []Platform{Netflix, Prime, Disney, HBO, Paramount, Apple}

var platformNames = map[Platform]string{
	Netflix:   "Netflix",
	Prime:     "Prime Video",
	Disney:    "Disney+",
	HBO:       "Max",
	Paramount: "Paramount+",
	Apple:     "Apple TV+",
}

// Platforms returns every supported platform in manifest order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// DisplayName returns the human readable platform name.
func (p Platform) DisplayName() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return string(p)
}

// Valid reports whether p is a supported platform.
func (p Platform) Valid() bool {
	_, ok := platformNames[p]
	return ok
}

// Category is the ranking category of a catalog.
type Category string

const (
	Movies Category = "movies"
	Series Category = "series"
)

var categories = []Category{Movies, Series}

// Categories returns every supported category in manifest order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a supported category.
func (c Category) Valid() bool {
	return c == Movies || c == Series
}

// Kind returns the media kind of the titles ranked in this category.
func (c Category) Kind() Kind {
	if c == Series {
		return KindSeries
	}
	return KindMovie
}

// ID identifies a single catalog. Its string form is "<platform>-<category>",
// e.g. "netflix-movies" or "apple-series".
type ID struct {
	Platform Platform
	Category Category
}

// NewID builds a catalog ID, validating both parts.
func NewID(p Platform, c Category) (ID, error) {
	if !p.Valid() {
		return ID{}, fmt.Errorf("unknown platform %q", p)
	}
	if !c.Valid() {
		return ID{}, fmt.Errorf("unknown category %q", c)
	}
	return ID{Platform: p, Category: c}, nil
}

// ParseID parses "<platform>-<category>". Unknown platforms or categories are
// rejected rather than defaulted.
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	idx := strings.LastIndex(s, "-")
	if idx <= 0 || idx == len(s)-1 {
		return ID{}, fmt.Errorf("invalid catalog id %q: want <platform>-<category>", s)
	}
	return NewID(Platform(s[:idx]), Category(s[idx+1:]))
}

// String returns the canonical "<platform>-<category>" form.
func (id ID) String() string {
	return string(id.Platform) + "-" + string(id.Category)
}

// Type returns the Stremio content type served by the catalog.
func (id ID) Type() string {
	return id.Category.Kind().StremioType()
}

// Name returns the catalog name shown in Stremio.
func (id ID) Name() string {
	label := "Films"
	if id.Category == Series {
		label = "Séries"
	}
	return fmt.Sprintf("%s - Top 10 %s", id.Platform.DisplayName(), label)
}

// AllIDs returns every platform × category combination in manifest order.
func AllIDs() []ID {
	ids := make([]ID, 0, len(platforms)*len(categories))
	for _, p := range platforms {
		for _, c := range categories {
			ids = append(ids, ID{Platform: p, Category: c})
		}
	}
	return ids
}
