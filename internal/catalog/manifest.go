package catalog

// Addon identity advertised in the manifest.
const (
	AddonID          = "community.top10.streaming.fr"
	AddonName        = "Top 10 Streaming FR"
	AddonVersion     = "1.0.0"
	AddonDescription = "Top 10 quotidien des plateformes de streaming en France (Netflix, Prime Video, Disney+, Max, Paramount+, Apple TV+)."
)

// Manifest describes the addon to Stremio clients.
type Manifest struct {
	ID          string            `json:"id"`
	Version     string            `json:"version"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Resources   []string          `json:"resources"`
	Types       []string          `json:"types"`
	IDPrefixes  []string          `json:"idPrefixes"`
	Catalogs    []ManifestCatalog `json:"catalogs"`
}

// ManifestCatalog declares one catalog in the manifest.
type ManifestCatalog struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewManifest returns the fixed addon manifest with one catalog per platform and category.
func NewManifest() Manifest {
	ids := AllIDs()
	catalogs := make([]ManifestCatalog, 0, len(ids))
	for _, id := range ids {
		catalogs = append(catalogs, ManifestCatalog{
			Type: id.Type(),
			ID:   id.String(),
			Name: id.Name(),
		})
	}

	return Manifest{
		ID:          AddonID,
		Version:     AddonVersion,
		Name:        AddonName,
		Description: AddonDescription,
		Resources:   []string{"catalog"},
		Types:       []string{KindMovie.StremioType(), KindSeries.StremioType()},
		IDPrefixes:  []string{ItemIDPrefix},
		Catalogs:    catalogs,
	}
}
