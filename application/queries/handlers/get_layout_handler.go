package handlers

import (
	"context"

	"go.uber.org/zap"

	"contentedge/application/queries"
	"contentedge/application/queries/bus"
	"contentedge/application/resolver"
	"contentedge/domain/content"
	"contentedge/pkg/errors"
)

// GetLayoutHandler resolves layout queries through the fallback
// resolver.
type GetLayoutHandler struct {
	resolver *resolver.Resolver
	logger   *zap.Logger
}

// NewGetLayoutHandler creates a new layout query handler
func NewGetLayoutHandler(res *resolver.Resolver, logger *zap.Logger) *GetLayoutHandler {
	return &GetLayoutHandler{
		resolver: res,
		logger:   logger,
	}
}

// Handle implements bus.QueryHandler. A nil document in the result is
// the "not found" outcome, not an error.
func (h *GetLayoutHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetLayoutQuery)
	if !ok {
		return nil, errors.NewInternalError("unexpected query type for layout handler")
	}

	doc, err := h.resolver.Resolve(ctx, q.Path, q.Site, q.Locale)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return (*content.Document)(nil), nil
	}
	return doc, nil
}
