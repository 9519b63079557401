package sitemap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"contentedge/application/resolver"
	"contentedge/domain/content"
	"contentedge/infrastructure/config"
	"contentedge/pkg/errors"
	"contentedge/tests/fixtures"
	"contentedge/tests/mocks"
)

const baseSitemap = `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"><url><loc>https://example.com/website/en/about</loc></url></urlset>`

func testConfig() *config.Config {
	return &config.Config{
		DefaultSite:     "website",
		DefaultLanguage: "en",
		TargetName:      "target",
		TargetBasePath:  "/content/target",
		WildcardPrefix:  "blog",
	}
}

func newTestService(t *testing.T, contentClient *mocks.MockContentClient, remote *mocks.MockRemoteQuery, cfg *config.Config) *Service {
	t.Helper()
	logger := zap.NewNop()
	res := resolver.NewResolver(contentClient, remote, cfg, logger, nil)
	svc := NewService(remote, res, cfg, logger, nil)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

// stubWildcardAtBlog makes prefix discovery resolve ["blog"].
func stubWildcardAtBlog(contentClient *mocks.MockContentClient) {
	template := fixtures.NewDocumentBuilder().WithRouteName(content.Wildcard).Build()
	contentClient.On("GetPage", mock.Anything, []string{"blog", content.Wildcard}, "website", "en").Return(template, nil)
	contentClient.On("GetPage", mock.Anything, mock.Anything, "website", "en").Return(nil, nil)
}

func TestSynthesize_RemoteUnconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.TargetName = ""
	cfg.TargetBasePath = ""

	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)
	svc := newTestService(t, contentClient, remote, cfg)

	got := svc.Synthesize(context.Background(), baseSitemap, "https://example.com")

	assert.Equal(t, baseSitemap, got)
	remote.AssertNotCalled(t, "FetchChildren", mock.Anything, mock.Anything, mock.Anything)
}

func TestSynthesize_AppendsChildEntries(t *testing.T) {
	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)
	stubWildcardAtBlog(contentClient)

	remote.On("FetchChildren", mock.Anything, "/content/target", "en").Return([]content.RemoteItem{
		{ID: "1", Name: "post-1"},
		{ID: "2", Name: "post-2"},
	}, nil)

	svc := newTestService(t, contentClient, remote, testConfig())

	got := svc.Synthesize(context.Background(), baseSitemap, "https://example.com")

	assert.Contains(t, got, "<loc>https://example.com/website/en/blog/post-1</loc>")
	assert.Contains(t, got, "<loc>https://example.com/website/en/blog/post-2</loc>")
	assert.Contains(t, got, "<lastmod>2024-03-01T12:00:00Z</lastmod>")
	assert.Contains(t, got, "<changefreq>weekly</changefreq>")
	assert.Contains(t, got, "<priority>0.5</priority>")

	// The original entry survives unmodified and the synthesized
	// blocks land before the closing root tag.
	assert.Contains(t, got, "<loc>https://example.com/website/en/about</loc>")
	assert.Equal(t, 3, strings.Count(got, "<url>"))
	assert.True(t, strings.HasSuffix(got, "</urlset>"))
}

func TestSynthesize_InsertionPosition(t *testing.T) {
	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)
	stubWildcardAtBlog(contentClient)

	remote.On("FetchChildren", mock.Anything, "/content/target", "en").Return([]content.RemoteItem{
		{ID: "1", Name: "post-1"},
	}, nil)

	svc := newTestService(t, contentClient, remote, testConfig())

	base := "<urlset><url><loc>https://example.com/a</loc></url></urlset>"
	got := svc.Synthesize(context.Background(), base, "https://example.com")

	assert.Equal(t, 2, strings.Count(got, "<url>"))
	assert.True(t, strings.HasPrefix(got, "<urlset><url><loc>https://example.com/a</loc></url>"))
	assert.True(t, strings.HasSuffix(got, "</urlset>"))

	synthesized := strings.TrimPrefix(got, "<urlset><url><loc>https://example.com/a</loc></url>")
	assert.Contains(t, synthesized, "post-1")
}

func TestSynthesize_EscapesReservedXMLCharacters(t *testing.T) {
	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)
	stubWildcardAtBlog(contentClient)

	remote.On("FetchChildren", mock.Anything, "/content/target", "en").Return([]content.RemoteItem{
		{ID: "1", Name: `A & B <"quoted"> 'post'`},
	}, nil)

	svc := newTestService(t, contentClient, remote, testConfig())

	got := svc.Synthesize(context.Background(), baseSitemap, "https://example.com")

	assert.Contains(t, got, "A &amp; B &lt;&#34;quoted&#34;&gt; &#39;post&#39;")
	assert.NotContains(t, got, "A & B")
}

func TestSynthesize_MissingClosingTagAppends(t *testing.T) {
	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)
	stubWildcardAtBlog(contentClient)

	remote.On("FetchChildren", mock.Anything, "/content/target", "en").Return([]content.RemoteItem{
		{ID: "1", Name: "post-1"},
	}, nil)

	svc := newTestService(t, contentClient, remote, testConfig())

	base := "<urlset><url><loc>https://example.com/a</loc></url>"
	got := svc.Synthesize(context.Background(), base, "https://example.com")

	assert.True(t, strings.HasPrefix(got, base))
	assert.Contains(t, got, "post-1")
}

func TestSynthesize_RemoteFailureReturnsBaseUnchanged(t *testing.T) {
	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)
	stubWildcardAtBlog(contentClient)

	remote.On("FetchChildren", mock.Anything, "/content/target", "en").
		Return(nil, errors.NewRemoteUnavailableError(502, "bad gateway"))

	svc := newTestService(t, contentClient, remote, testConfig())

	got := svc.Synthesize(context.Background(), baseSitemap, "https://example.com")

	assert.Equal(t, baseSitemap, got)
}

func TestSynthesize_NoChildrenReturnsBaseUnchanged(t *testing.T) {
	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)
	stubWildcardAtBlog(contentClient)

	remote.On("FetchChildren", mock.Anything, "/content/target", "en").Return([]content.RemoteItem{}, nil)

	svc := newTestService(t, contentClient, remote, testConfig())

	got := svc.Synthesize(context.Background(), baseSitemap, "https://example.com")

	assert.Equal(t, baseSitemap, got)
}

func TestSynthesize_PrefixOverrideSkipsProbing(t *testing.T) {
	contentClient := new(mocks.MockContentClient)
	remote := new(mocks.MockRemoteQuery)

	cfg := testConfig()
	cfg.WildcardPrefixOverride = "stories"

	remote.On("FetchChildren", mock.Anything, "/content/target", "en").Return([]content.RemoteItem{
		{ID: "1", Name: "post-1"},
	}, nil)

	svc := newTestService(t, contentClient, remote, cfg)

	got := svc.Synthesize(context.Background(), baseSitemap, "https://example.com/")

	assert.Contains(t, got, "<loc>https://example.com/website/en/stories/post-1</loc>")
	contentClient.AssertNotCalled(t, "GetPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
