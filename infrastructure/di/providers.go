package di

import (
	"go.uber.org/zap"

	"contentedge/application/ports"
	"contentedge/application/queries"
	querybus "contentedge/application/queries/bus"
	queryhandlers "contentedge/application/queries/handlers"
	"contentedge/application/resolver"
	"contentedge/application/sitemap"
	"contentedge/infrastructure/config"
	"contentedge/infrastructure/layoutservice"
	"contentedge/infrastructure/remote"
	"contentedge/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("contentedge")
}

// ProvideLayoutServiceClient creates the primary repository client
func ProvideLayoutServiceClient(cfg *config.Config, logger *zap.Logger) *layoutservice.Client {
	return layoutservice.NewClient(cfg, logger)
}

// ProvideContentClient exposes the layout service as the content port
func ProvideContentClient(client *layoutservice.Client) ports.ContentClient {
	return client
}

// ProvideSitemapSource exposes the layout service as the sitemap port
func ProvideSitemapSource(client *layoutservice.Client) ports.SitemapSource {
	return client
}

// ProvideRemoteQuery creates the remote repository query client
func ProvideRemoteQuery(cfg *config.Config, logger *zap.Logger) ports.RemoteQuery {
	return remote.NewClient(cfg, logger)
}

// ProvideResolver creates the fallback resolver
func ProvideResolver(
	contentClient ports.ContentClient,
	remoteQuery ports.RemoteQuery,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
) *resolver.Resolver {
	return resolver.NewResolver(contentClient, remoteQuery, cfg, logger, metrics)
}

// ProvideSitemapService creates the sitemap synthesizer
func ProvideSitemapService(
	remoteQuery ports.RemoteQuery,
	res *resolver.Resolver,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
) *sitemap.Service {
	return sitemap.NewService(remoteQuery, res, cfg, logger, metrics)
}

// ProvideQueryBus creates the query bus with all handlers registered
func ProvideQueryBus(
	res *resolver.Resolver,
	sitemapService *sitemap.Service,
	sitemapSource ports.SitemapSource,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	bus := querybus.NewQueryBus()

	if err := bus.Register(queries.GetLayoutQuery{}, queryhandlers.NewGetLayoutHandler(res, logger)); err != nil {
		return nil, err
	}
	if err := bus.Register(queries.GetSitemapQuery{}, queryhandlers.NewGetSitemapHandler(sitemapSource, sitemapService, logger)); err != nil {
		return nil, err
	}

	return bus, nil
}
