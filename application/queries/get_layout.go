package queries

import "errors"

// GetLayoutQuery represents a query to resolve a request path to a
// content document.
type GetLayoutQuery struct {
	Path   []string
	Site   string
	Locale string
}

// Validate validates the GetLayoutQuery
func (q GetLayoutQuery) Validate() error {
	if q.Site == "" {
		return errors.New("site is required")
	}
	return nil
}
