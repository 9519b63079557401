package queries

import "errors"

// GetSitemapQuery represents a query for the combined sitemap of a
// site.
type GetSitemapQuery struct {
	Site           string
	RequestBaseURL string
}

// Validate validates the GetSitemapQuery
func (q GetSitemapQuery) Validate() error {
	if q.Site == "" {
		return errors.New("site is required")
	}
	if q.RequestBaseURL == "" {
		return errors.New("request base URL is required")
	}
	return nil
}

// GetSitemapResult represents the result of a sitemap query
type GetSitemapResult struct {
	XML      string
	Enriched bool
}
