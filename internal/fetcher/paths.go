package fetcher

import (
	"fmt"
	"strings"
)

// CityListPath is the directory endpoint returning Envelope[[]City].
const CityListPath = "/api/v1/city/list"

// NewsSearchPath returns the search endpoint for the given city id.
// It returns Envelope[Article].
func NewsSearchPath(cityID int) string {
	return fmt.Sprintf("/api/v1/news/search/%d", cityID)
}

const newsSearchPrefix = "/api/v1/news/search/"

// RouteLabel maps a request path to a low-cardinality route name for spans
// and metrics.
func RouteLabel(path string) string {
	if strings.HasPrefix(path, newsSearchPrefix) {
		return newsSearchPrefix + "{id}"
	}

	return path
}
