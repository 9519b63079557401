package handlers

import (
	"context"

	"go.uber.org/zap"

	"contentedge/application/ports"
	"contentedge/application/queries"
	"contentedge/application/queries/bus"
	"contentedge/application/sitemap"
	"contentedge/pkg/errors"
)

// emptyURLSet is served as the baseline when the primary repository
// cannot deliver its native sitemap. Enrichment still runs against it.
const emptyURLSet = `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>`

// GetSitemapHandler serves the combined sitemap: the primary
// repository's native URL list enriched with remote-only documents.
type GetSitemapHandler struct {
	source      ports.SitemapSource
	synthesizer *sitemap.Service
	logger      *zap.Logger
}

// NewGetSitemapHandler creates a new sitemap query handler
func NewGetSitemapHandler(
	source ports.SitemapSource,
	synthesizer *sitemap.Service,
	logger *zap.Logger,
) *GetSitemapHandler {
	return &GetSitemapHandler{
		source:      source,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// Handle implements bus.QueryHandler. Failures anywhere in the chain
// degrade to a valid, unenriched sitemap rather than an error.
func (h *GetSitemapHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetSitemapQuery)
	if !ok {
		return nil, errors.NewInternalError("unexpected query type for sitemap handler")
	}

	base, err := h.source.GetSitemap(ctx, q.Site)
	if err != nil {
		h.logger.Warn("base sitemap unavailable, serving empty baseline",
			zap.String("site", q.Site),
			zap.Error(err),
		)
		base = emptyURLSet
	}

	combined := h.synthesizer.Synthesize(ctx, base, q.RequestBaseURL)
	return queries.GetSitemapResult{
		XML:      combined,
		Enriched: combined != base,
	}, nil
}
