//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"contentedge/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideLayoutServiceClient,
	ProvideContentClient,
	ProvideSitemapSource,
	ProvideRemoteQuery,
	ProvideResolver,
	ProvideSitemapService,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
