package di

import (
	"go.uber.org/zap"

	"contentedge/application/ports"
	querybus "contentedge/application/queries/bus"
	"contentedge/application/resolver"
	"contentedge/application/sitemap"
	"contentedge/infrastructure/config"
	"contentedge/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	ContentClient ports.ContentClient
	SitemapSource ports.SitemapSource
	RemoteQuery   ports.RemoteQuery
	Resolver      *resolver.Resolver
	Sitemap       *sitemap.Service
	QueryBus      *querybus.QueryBus
	Metrics       *observability.Collector
}
