package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "netflix movies", input: "netflix-movies", want: ID{Platform: Netflix, Category: Movies}},
		{name: "apple series", input: "apple-series", want: ID{Platform: Apple, Category: Series}},
		{name: "case and whitespace", input: "  HBO-Series ", want: ID{Platform: HBO, Category: Series}},
		{name: "legacy underscore grammar", input: "netflix_top10", wantErr: true},
		{name: "unknown platform", input: "hulu-movies", wantErr: true},
		{name: "unknown category", input: "netflix-anime", wantErr: true},
		{name: "missing platform", input: "-movies", wantErr: true},
		{name: "missing category", input: "netflix-", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDRoundTrip(t *testing.T) {
	for _, id := range AllIDs() {
		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestAllIDs(t *testing.T) {
	ids := AllIDs()
	assert.Len(t, ids, len(Platforms())*len(Categories()))
	assert.Equal(t, "netflix-movies", ids[0].String())
	assert.Equal(t, "netflix-series", ids[1].String())
	assert.Equal(t, "apple-series", ids[len(ids)-1].String())
}

func TestIDTypeAndName(t *testing.T) {
	movies := ID{Platform: Disney, Category: Movies}
	series := ID{Platform: Paramount, Category: Series}

	assert.Equal(t, "movie", movies.Type())
	assert.Equal(t, "series", series.Type())
	assert.Equal(t, "Disney+ - Top 10 Films", movies.Name())
	assert.Equal(t, "Paramount+ - Top 10 Séries", series.Name())
}

func TestNewIDValidates(t *testing.T) {
	_, err := NewID("crunchyroll", Movies)
	assert.Error(t, err)

	_, err = NewID(Netflix, "shorts")
	assert.Error(t, err)

	id, err := NewID(Prime, Series)
	require.NoError(t, err)
	assert.Equal(t, "prime-series", id.String())
}

func TestPlatformsReturnsCopy(t *testing.T) {
	ps := Platforms()
	ps[0] = "changed"
	assert.Equal(t, Netflix, Platforms()[0])
}
