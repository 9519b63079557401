// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"contentedge/domain/content"
)

// MockContentClient mocks ports.ContentClient
type MockContentClient struct {
	mock.Mock
}

// GetPage implements ports.ContentClient
func (m *MockContentClient) GetPage(ctx context.Context, path []string, site, language string) (*content.Document, error) {
	args := m.Called(ctx, path, site, language)
	var doc *content.Document
	if args.Get(0) != nil {
		doc = args.Get(0).(*content.Document)
	}
	return doc, args.Error(1)
}

// MockRemoteQuery mocks ports.RemoteQuery
type MockRemoteQuery struct {
	mock.Mock
}

// FetchItem implements ports.RemoteQuery
func (m *MockRemoteQuery) FetchItem(ctx context.Context, path, language string) (*content.RemoteItem, error) {
	args := m.Called(ctx, path, language)
	var item *content.RemoteItem
	if args.Get(0) != nil {
		item = args.Get(0).(*content.RemoteItem)
	}
	return item, args.Error(1)
}

// FetchChildren implements ports.RemoteQuery
func (m *MockRemoteQuery) FetchChildren(ctx context.Context, path, language string) ([]content.RemoteItem, error) {
	args := m.Called(ctx, path, language)
	var children []content.RemoteItem
	if args.Get(0) != nil {
		children = args.Get(0).([]content.RemoteItem)
	}
	return children, args.Error(1)
}

// MockSitemapSource mocks ports.SitemapSource
type MockSitemapSource struct {
	mock.Mock
}

// GetSitemap implements ports.SitemapSource
func (m *MockSitemapSource) GetSitemap(ctx context.Context, site string) (string, error) {
	args := m.Called(ctx, site)
	return args.String(0), args.Error(1)
}
