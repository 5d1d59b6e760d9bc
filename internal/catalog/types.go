package catalog

// Kind is the media kind of a title.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// StremioType returns the content type string used by the Stremio protocol.
func (k Kind) StremioType() string {
	return string(k)
}

// RankedTitle is one entry of a platform's Top 10 as published by the ranking source.
type RankedTitle struct {
	Rank  int    `json:"rank"`
	Title string `json:"title"`
	Slug  string `json:"slug,omitempty"`
}

// Metadata is the resolved description of a title.
type Metadata struct {
	ProviderID  int
	Name        string
	Synopsis    string
	Poster      string // empty when the provider has no poster
	Year        string // empty when no release date is known
	ReleaseDate string
	Kind        Kind
	IMDbID      string
}

// Rating holds the scores of a title. Every field is independently optional.
type Rating struct {
	IMDb           *float64 // 0-10
	RottenTomatoes *int     // percent
	Metacritic     *int     // 0-100
}

// Empty reports whether no score is present.
func (r Rating) Empty() bool {
	return r.IMDb == nil && r.RottenTomatoes == nil && r.Metacritic == nil
}
