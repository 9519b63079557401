package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"contentedge/application/queries"
	querybus "contentedge/application/queries/bus"
	"contentedge/domain/content"
	"contentedge/infrastructure/config"
	"contentedge/pkg/common"
)

// LayoutHandler handles layout-resolution HTTP requests
type LayoutHandler struct {
	queryBus *querybus.QueryBus
	cfg      *config.Config
	logger   *zap.Logger
}

// NewLayoutHandler creates a new layout handler
func NewLayoutHandler(queryBus *querybus.QueryBus, cfg *config.Config, logger *zap.Logger) *LayoutHandler {
	return &LayoutHandler{
		queryBus: queryBus,
		cfg:      cfg,
		logger:   logger,
	}
}

// GetLayout handles GET /api/v1/layout. The path arrives as a single
// query parameter; site and locale fall back to the configured
// defaults when absent.
func (h *LayoutHandler) GetLayout(w http.ResponseWriter, r *http.Request) {
	site := r.URL.Query().Get("site")
	if site == "" {
		site = h.cfg.DefaultSite
	}

	query := queries.GetLayoutQuery{
		Path:   splitRequestPath(r.URL.Query().Get("path")),
		Site:   site,
		Locale: r.URL.Query().Get("locale"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("layout query failed",
			zap.Strings("path", query.Path),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError,
			common.StandardErrorCodes.InternalError, "failed to resolve layout")
		return
	}

	doc, _ := result.(*content.Document)
	if doc == nil {
		common.RespondError(w, http.StatusNotFound,
			common.StandardErrorCodes.NotFound, "no document at path")
		return
	}
	common.RespondJSON(w, http.StatusOK, doc)
}

// splitRequestPath turns a raw "/a/b/c" parameter into path segments.
// The root path yields an empty slice.
func splitRequestPath(raw string) []string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
