package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"contentedge/application/queries"
	querybus "contentedge/application/queries/bus"
	"contentedge/infrastructure/config"
)

// fallbackURLSet is the last-resort sitemap body when even the query
// pipeline fails; the endpoint never answers with an error status.
const fallbackURLSet = `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>`

// SitemapHandler handles sitemap HTTP requests
type SitemapHandler struct {
	queryBus *querybus.QueryBus
	cfg      *config.Config
	logger   *zap.Logger
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(queryBus *querybus.QueryBus, cfg *config.Config, logger *zap.Logger) *SitemapHandler {
	return &SitemapHandler{
		queryBus: queryBus,
		cfg:      cfg,
		logger:   logger,
	}
}

// GetSitemap handles GET /sitemap.xml. The response is always dynamic
// XML; a successful (possibly unenriched) sitemap carries a one-hour
// cache directive.
func (h *SitemapHandler) GetSitemap(w http.ResponseWriter, r *http.Request) {
	query := queries.GetSitemapQuery{
		Site:           h.cfg.DefaultSite,
		RequestBaseURL: requestBaseURL(r),
	}

	w.Header().Set("Content-Type", "application/xml")

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("sitemap query failed", zap.Error(err))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fallbackURLSet))
		return
	}

	res, ok := result.(queries.GetSitemapResult)
	if !ok {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fallbackURLSet))
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(res.XML))
}

// requestBaseURL reconstructs the external base URL of the request,
// honoring the forwarding proxy's protocol header.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}
