// Package source lists today's ranked titles for a platform and category.
//
// Listers never return errors: a source that is unreachable or whose markup
// no longer matches yields an empty list and a log line, and the rest of the
// pipeline simply has nothing to do.
package source

import (
	"context"
	"net/http"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

// Limit is the maximum number of titles a lister returns.
const Limit = 10

// Lister returns the ranked titles of one catalog, in ranking order.
type Lister interface {
	List(ctx context.Context, platform catalog.Platform, category catalog.Category) []catalog.RankedTitle
}

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}
