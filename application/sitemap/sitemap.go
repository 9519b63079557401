// Package sitemap synthesizes a combined sitemap: the primary
// repository's native URL list plus URLs derived from documents that
// exist only in the remote ("target") repository.
package sitemap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"contentedge/application/ports"
	"contentedge/application/resolver"
	"contentedge/infrastructure/config"
	"contentedge/pkg/observability"
)

const (
	urlsetCloseTag = "</urlset>"
	changeFreq     = "weekly"
	priority       = "0.5"
)

// xmlEscaper escapes the five reserved XML characters in location
// text.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// Service synthesizes sitemap entries for remote-only documents.
// Enrichment is best-effort: any failure returns the base sitemap
// unchanged.
type Service struct {
	remote   ports.RemoteQuery
	resolver *resolver.Resolver
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *observability.Collector

	// now is swapped out in tests.
	now func() time.Time
}

// NewService creates a sitemap synthesizer
func NewService(
	remote ports.RemoteQuery,
	res *resolver.Resolver,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
) *Service {
	return &Service{
		remote:   remote,
		resolver: res,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Synthesize merges URL entries for the remote repository's children
// into the base sitemap XML. The entries land immediately before the
// closing root tag, or at the end when the tag is missing. When the
// remote target is not configured, or any step of enrichment fails,
// the base sitemap is returned unchanged.
func (s *Service) Synthesize(ctx context.Context, baseXML, requestBaseURL string) string {
	if !s.cfg.RemoteConfigured() {
		return baseXML
	}

	prefix := s.resolver.DiscoverWildcardPrefix(ctx, s.cfg.DefaultSite, s.cfg.DefaultLanguage)

	children, err := s.remote.FetchChildren(ctx, s.cfg.TargetBasePath, s.cfg.DefaultLanguage)
	if err != nil {
		if s.metrics != nil {
			s.metrics.SitemapFallbacks.Inc()
		}
		s.logger.Warn("sitemap enrichment skipped",
			zap.String("basePath", s.cfg.TargetBasePath),
			zap.Error(err),
		)
		return baseXML
	}
	if len(children) == 0 {
		return baseXML
	}

	lastmod := s.now().UTC().Format(time.RFC3339)
	var entries strings.Builder
	for _, child := range children {
		loc := s.entryURL(requestBaseURL, prefix, child.Name)
		fmt.Fprintf(&entries,
			"<url><loc>%s</loc><lastmod>%s</lastmod><changefreq>%s</changefreq><priority>%s</priority></url>",
			xmlEscaper.Replace(loc), lastmod, changeFreq, priority,
		)
	}

	if s.metrics != nil {
		s.metrics.SitemapEntries.Add(float64(len(children)))
	}
	return spliceEntries(baseXML, entries.String())
}

// entryURL joins the request base URL, default site, default locale,
// wildcard prefix and child name into a location URL.
func (s *Service) entryURL(requestBaseURL string, prefix []string, name string) string {
	segments := make([]string, 0, len(prefix)+3)
	segments = append(segments, s.cfg.DefaultSite, s.cfg.DefaultLanguage)
	segments = append(segments, prefix...)
	segments = append(segments, name)
	return strings.TrimSuffix(requestBaseURL, "/") + "/" + strings.Join(segments, "/")
}

// spliceEntries inserts the synthesized entries immediately before the
// closing root tag, leaving the base document's own entries untouched.
// A sitemap without the closing tag gets them appended.
func spliceEntries(baseXML, entries string) string {
	idx := strings.LastIndex(baseXML, urlsetCloseTag)
	if idx < 0 {
		return baseXML + entries
	}
	return baseXML[:idx] + entries + baseXML[idx:]
}
