// Package layoutservice implements the primary content repository
// ports over the layout service's HTTP API. It is a thin pass-through:
// all resolution logic lives in the application layer.
package layoutservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"contentedge/domain/content"
	"contentedge/infrastructure/config"
	"contentedge/pkg/errors"
)

// Client talks to the primary layout service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a layout service client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.LayoutServiceURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// GetPage fetches the document at the given path. A 404 from the
// layout service means "no document", not an error. An empty path
// addresses the site root.
func (c *Client) GetPage(ctx context.Context, path []string, site, language string) (*content.Document, error) {
	if c.baseURL == "" {
		return nil, errors.NewConfigurationMissingError("LAYOUT_SERVICE_URL")
	}

	query := url.Values{}
	query.Set("path", "/"+strings.Join(path, "/"))
	query.Set("site", site)
	query.Set("language", language)
	endpoint := c.baseURL + "/api/layout?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewInternalError("building layout request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewRemoteUnavailableError(0, "").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.NewRemoteUnavailableError(resp.StatusCode, string(body))
	}

	var doc content.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.NewInternalError("decoding layout response").WithCause(err)
	}
	return &doc, nil
}

// GetSitemap fetches the primary repository's native sitemap XML for a
// site.
func (c *Client) GetSitemap(ctx context.Context, site string) (string, error) {
	if c.baseURL == "" {
		return "", errors.NewConfigurationMissingError("LAYOUT_SERVICE_URL")
	}

	endpoint := fmt.Sprintf("%s/sitemap.xml?site=%s", c.baseURL, url.QueryEscape(site))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.NewInternalError("building sitemap request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewRemoteUnavailableError(0, "").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.NewRemoteUnavailableError(resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewInternalError("reading sitemap response").WithCause(err)
	}

	c.logger.Debug("fetched base sitemap",
		zap.String("site", site),
		zap.Int("bytes", len(body)),
	)
	return string(body), nil
}
