// Package ports defines the interfaces through which the application
// layer talks to the primary and remote content repositories. The
// infrastructure layer provides the implementations.
package ports

import (
	"context"

	"contentedge/domain/content"
)

// ContentClient is the primary content repository. GetPage returns the
// document at the given path, or nil (with a nil error) when the
// repository holds no document there. An empty path addresses the
// site root.
type ContentClient interface {
	GetPage(ctx context.Context, path []string, site, language string) (*content.Document, error)
}

// SitemapSource serves the primary repository's native sitemap XML for
// a site.
type SitemapSource interface {
	GetSitemap(ctx context.Context, site string) (string, error)
}

// RemoteQuery is the secondary ("target") content repository, queried
// only for enrichment. FetchItem returns nil (with a nil error) when
// no item exists at the path; FetchChildren returns an empty slice,
// not an error, when an item has no children. Implementations perform
// a single request per call with no retries and hold no state between
// calls.
type RemoteQuery interface {
	FetchItem(ctx context.Context, path, language string) (*content.RemoteItem, error)
	FetchChildren(ctx context.Context, path, language string) ([]content.RemoteItem, error)
}
