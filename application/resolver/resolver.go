// Package resolver turns an incoming URL path into a content document,
// falling back through a fixed chain of strategies when the primary
// repository has no exact document: direct lookup, wildcard-node
// discovery, remote enrichment of a wildcard template, and finally
// enrichment of an ancestor or root template.
package resolver

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contentedge/application/ports"
	"contentedge/domain/content"
	"contentedge/domain/services"
	"contentedge/infrastructure/config"
	"contentedge/pkg/observability"
)

// Resolver orchestrates the fallback chain. It holds no per-request
// state; every Resolve call works on its own locals, so concurrent
// resolutions need no coordination.
type Resolver struct {
	content ports.ContentClient
	remote  ports.RemoteQuery
	cfg     *config.Config
	logger  *zap.Logger
	metrics *observability.Collector
}

// NewResolver creates a new fallback resolver
func NewResolver(
	contentClient ports.ContentClient,
	remote ports.RemoteQuery,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
) *Resolver {
	return &Resolver{
		content: contentClient,
		remote:  remote,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// resolution carries the per-call state the tiers share: the sanitized
// path and any wildcard template discovered along the way.
type resolution struct {
	raw      []string
	clean    []string
	site     string
	language string

	// template is the wildcard document found during discovery,
	// consumed by the remote-enrichment tier.
	template *content.Document
}

// tier is one strategy in the fallback chain. A nil result means "this
// tier failed, advance"; the first non-nil document is terminal.
type tier struct {
	name string
	run  func(ctx context.Context, rc *resolution) *content.Document
}

// Resolve maps a raw request path to a document, or to nil when no
// tier can produce one. Nil is a valid "not found" outcome, never an
// error; remote failures inside a tier only fail that tier. The only
// error Resolve returns is the context's own.
func (r *Resolver) Resolve(ctx context.Context, rawPath []string, site, locale string) (*content.Document, error) {
	// Requests carrying system sentinels or tooling probes were never
	// real content requests; reject them before any lookup.
	if IsSentinel(site) || IsSentinel(locale) || ContainsProbe(rawPath) {
		return nil, nil
	}

	clean, language := Sanitize(rawPath, locale, r.cfg.DefaultLanguage)
	rc := &resolution{raw: rawPath, clean: clean, site: site, language: language}

	for _, t := range r.tiers() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if doc := t.run(ctx, rc); doc != nil {
			if r.metrics != nil {
				r.metrics.Resolutions.WithLabelValues(t.name).Inc()
			}
			r.logger.Debug("path resolved",
				zap.Strings("path", clean),
				zap.String("tier", t.name),
				zap.String("route", doc.Route.Name),
			)
			return doc, nil
		}
	}

	if r.metrics != nil {
		r.metrics.ResolutionMisses.Inc()
	}
	return nil, nil
}

// tiers returns the fallback chain in its fixed order. No tier is
// retried once attempted.
func (r *Resolver) tiers() []tier {
	return []tier{
		{name: "direct", run: r.tierDirect},
		{name: "wildcard", run: r.tierWildcard},
		{name: "remote", run: r.tierRemote},
		{name: "ancestor", run: r.tierAncestor},
	}
}

// tierDirect asks the primary repository for the exact document. A hit
// on a non-wildcard route is terminal; a wildcard hit means the path
// landed on a catch-all template, which the later tiers must enrich.
func (r *Resolver) tierDirect(ctx context.Context, rc *resolution) *content.Document {
	path := rc.clean
	if len(path) == 0 {
		// A fully sanitized-away path addresses the root document.
		path = nil
	}
	doc := r.getPage(ctx, path, rc.site, rc.language)
	if doc == nil || doc.IsWildcard() {
		return nil
	}
	return doc
}

// tierWildcard probes the candidate path shapes for a wildcard
// template and stores it for the enrichment tiers. It is never
// terminal on its own.
func (r *Resolver) tierWildcard(ctx context.Context, rc *resolution) *content.Document {
	if len(rc.clean) == 0 {
		return nil
	}
	rc.template, _ = r.discoverWildcard(ctx, rc.clean[0], rc.site, rc.language)
	return nil
}

// discoverWildcard probes the candidate shapes in precedence order:
// [first, *], [*], then [first] as a parent-then-probe-child subcase.
// It returns the first wildcard template found and the prefix segments
// preceding the marker.
func (r *Resolver) discoverWildcard(ctx context.Context, first, site, language string) (*content.Document, []string) {
	if doc := r.getPage(ctx, []string{first, content.Wildcard}, site, language); doc.IsWildcard() {
		return doc, []string{first}
	}
	if doc := r.getPage(ctx, []string{content.Wildcard}, site, language); doc.IsWildcard() {
		return doc, nil
	}
	// The parent may exist as a regular node with a wildcard child
	// beneath it. Any document on the probed path qualifies: the path
	// itself carries the marker.
	if parent := r.getPage(ctx, []string{first}, site, language); parent != nil && !parent.IsWildcard() {
		if doc := r.getPage(ctx, []string{first, content.Wildcard}, site, language); doc != nil {
			return doc, []string{first}
		}
	}
	return nil, nil
}

// DiscoverWildcardPrefix locates the path prefix under which the
// wildcard node lives, for callers (the sitemap synthesizer) that need
// to construct URLs for remote-only documents. An explicit override
// wins; otherwise the configured prefix and the site root are probed,
// and the configured prefix is the default when neither probe hits.
func (r *Resolver) DiscoverWildcardPrefix(ctx context.Context, site, language string) []string {
	if override := r.cfg.WildcardPrefixOverride; override != "" {
		return splitContentPath(override)
	}
	prefix := r.cfg.WildcardPrefix
	if doc := r.getPage(ctx, []string{prefix, content.Wildcard}, site, language); doc.IsWildcard() {
		return []string{prefix}
	}
	if doc := r.getPage(ctx, []string{content.Wildcard}, site, language); doc.IsWildcard() {
		return nil
	}
	return []string{prefix}
}

// tierRemote overlays the remote item's fields onto the wildcard
// template found during discovery.
func (r *Resolver) tierRemote(ctx context.Context, rc *resolution) *content.Document {
	if rc.template == nil {
		return nil
	}
	item := r.fetchRemoteItem(ctx, rc)
	if item == nil {
		return nil
	}
	return r.enrich(rc.template, item, rc)
}

// tierAncestor is the final fallback when discovery found no wildcard
// template: the parent document, then the site root, serve as the
// structural template for the same remote overlay.
func (r *Resolver) tierAncestor(ctx context.Context, rc *resolution) *content.Document {
	if rc.template != nil || len(rc.clean) == 0 {
		return nil
	}
	item := r.fetchRemoteItem(ctx, rc)
	if item == nil {
		return nil
	}
	for _, shape := range [][]string{{rc.clean[0]}, nil} {
		if template := r.getPage(ctx, shape, rc.site, rc.language); template != nil {
			return r.enrich(template, item, rc)
		}
	}
	return nil
}

// fetchRemoteItem derives the remote lookup path from the last
// requested segment and queries the target repository. Any failure,
// including an unconfigured target, reads as "no enrichment".
func (r *Resolver) fetchRemoteItem(ctx context.Context, rc *resolution) *content.RemoteItem {
	if !r.cfg.RemoteConfigured() || len(rc.clean) == 0 {
		return nil
	}
	last := rc.clean[len(rc.clean)-1]
	path := joinContentPath(r.cfg.TargetBasePath, last)

	item, err := r.remote.FetchItem(ctx, path, rc.language)
	if err != nil {
		if r.metrics != nil {
			r.metrics.RemoteQueryErrors.Inc()
		}
		r.logger.Warn("remote item fetch failed",
			zap.String("path", path),
			zap.String("language", rc.language),
			zap.Error(err),
		)
		return nil
	}
	return item
}

// enrich overlays the remote item's title and body onto a clone of the
// template and rebinds the clone's route to the remote item's identity.
func (r *Resolver) enrich(template *content.Document, item *content.RemoteItem, rc *resolution) *content.Document {
	title := item.Title()
	values := content.FieldValues{Title: &title}
	if body, ok := item.FieldValue(content.FieldContent); ok {
		values.Content = &body
	}

	doc := services.Overlay(template, values)
	doc.Route.Name = item.Name
	doc.Route.ItemID = item.ID
	if doc.Route.ItemID == "" {
		doc.Route.ItemID = uuid.NewString()
	}
	doc.Context = content.Context{Site: rc.site, Language: rc.language}
	return doc
}

// getPage wraps the content client so that primary-repository errors
// read as "no document" inside a tier. A nil path addresses the root.
func (r *Resolver) getPage(ctx context.Context, path []string, site, language string) *content.Document {
	doc, err := r.content.GetPage(ctx, path, site, language)
	if err != nil {
		r.logger.Warn("primary content lookup failed",
			zap.Strings("path", path),
			zap.String("site", site),
			zap.Error(err),
		)
		return nil
	}
	return doc
}

// joinContentPath joins a base content path and a child name with a
// single separator.
func joinContentPath(base, name string) string {
	return strings.TrimSuffix(base, "/") + "/" + name
}

// splitContentPath splits a configured prefix like "blog" or
// "news/archive" into path segments.
func splitContentPath(p string) []string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
