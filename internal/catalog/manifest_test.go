package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManifest(t *testing.T) {
	m := NewManifest()

	assert.Equal(t, AddonID, m.ID)
	assert.Equal(t, []string{"catalog"}, m.Resources)
	assert.Equal(t, []string{"movie", "series"}, m.Types)
	assert.Equal(t, []string{"tmdb:"}, m.IDPrefixes)
	require.Len(t, m.Catalogs, 12)

	seen := make(map[string]bool)
	for _, c := range m.Catalogs {
		assert.False(t, seen[c.ID], "duplicate catalog id %s", c.ID)
		seen[c.ID] = true

		id, err := ParseID(c.ID)
		require.NoError(t, err)
		assert.Equal(t, id.Type(), c.Type)
		assert.NotEmpty(t, c.Name)
	}
}

func TestManifestJSONShape(t *testing.T) {
	data, err := json.Marshal(NewManifest())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"id", "version", "name", "description", "resources", "types", "idPrefixes", "catalogs"} {
		assert.Contains(t, decoded, key)
	}

	first := decoded["catalogs"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"type": "movie", "id": "netflix-movies", "name": "Netflix - Top 10 Films"}, first)
}
