package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

// ExternalIDs returns the IMDb ID of a movie or TV show.
// An empty string with a nil error means TMDB knows no IMDb ID for it.
func (c *Client) ExternalIDs(ctx context.Context, id int, kind catalog.Kind) (string, error) {
	mediaType, err := mediaTypeFor(kind)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	endpoint := fmt.Sprintf("%s/%s/%d/external_ids?%s", c.baseURL, mediaType, id, params.Encode())

	var response struct {
		IMDbID *string `json:"imdb_id"`
	}
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return "", err
	}
	if response.IMDbID == nil {
		return "", nil
	}
	return *response.IMDbID, nil
}
