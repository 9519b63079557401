// Package remote implements the query client for the secondary
// ("target") content repository: a single-request HTTP+JSON protocol
// that fetches one item or an item's children. The client holds no
// state between calls and never retries.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"contentedge/domain/content"
	"contentedge/infrastructure/config"
	"contentedge/pkg/errors"
)

// querySuffix is appended to the normalized base URL to form the
// query endpoint.
const querySuffix = "/api/graphql/v1"

// The previous generation of the target platform served queries from
// an "edge-beta" host. Configurations still carrying it are rewritten
// to the current host before path composition.
const (
	legacyHostSegment  = "edge-beta."
	currentHostSegment = "edge."
)

// apiKeyHeader carries the static authentication token.
const apiKeyHeader = "X-API-Key"

const itemFieldsQuery = `query ItemFields($path: String!, $language: String!) {
  item(path: $path, language: $language) {
    id
    name
    path
    fields {
      name
      value
    }
  }
}`

const itemChildrenQuery = `query ItemChildren($path: String!, $language: String!) {
  item(path: $path, language: $language) {
    id
    name
    path
    children {
      id
      name
      path
      url {
        path
      }
    }
  }
}`

// Client issues content queries against the remote endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a remote query client from configuration. The
// endpoint is the configured base URL with its trailing slash trimmed,
// the deprecated host segment rewritten, and the fixed query suffix
// appended. The API key override takes precedence over the default.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		endpoint:   Endpoint(cfg.RemoteEndpoint),
		apiKey:     cfg.ResolvedAPIKey(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Endpoint normalizes a configured base URL into the query endpoint.
func Endpoint(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	base := strings.TrimSuffix(baseURL, "/")
	base = strings.Replace(base, legacyHostSegment, currentHostSegment, 1)
	return base + querySuffix
}

// request is the JSON body of a query call.
type request struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// envelope is the response wrapper. A well-formed response may still
// carry application-level errors.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type itemFields struct {
	Item *struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Path   string `json:"path"`
		Fields []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	} `json:"item"`
}

type itemChildren struct {
	Item *struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Path     string `json:"path"`
		Children []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Path string `json:"path"`
			URL  struct {
				Path string `json:"path"`
			} `json:"url"`
		} `json:"children"`
	} `json:"item"`
}

// FetchItem returns the item at the given content path with its field
// values, or nil when the repository holds no item there.
func (c *Client) FetchItem(ctx context.Context, path, language string) (*content.RemoteItem, error) {
	var data itemFields
	if err := c.query(ctx, itemFieldsQuery, path, language, &data); err != nil {
		return nil, err
	}
	if data.Item == nil {
		return nil, nil
	}

	fields := make(map[string]string, len(data.Item.Fields))
	for _, f := range data.Item.Fields {
		fields[f.Name] = f.Value
	}
	return &content.RemoteItem{
		ID:     data.Item.ID,
		Name:   data.Item.Name,
		Path:   data.Item.Path,
		Fields: fields,
	}, nil
}

// FetchChildren returns the children of the item at the given content
// path. An item with no children, or no item at all, yields an empty
// slice.
func (c *Client) FetchChildren(ctx context.Context, path, language string) ([]content.RemoteItem, error) {
	var data itemChildren
	if err := c.query(ctx, itemChildrenQuery, path, language, &data); err != nil {
		return nil, err
	}
	if data.Item == nil {
		return []content.RemoteItem{}, nil
	}

	children := make([]content.RemoteItem, 0, len(data.Item.Children))
	for _, child := range data.Item.Children {
		children = append(children, content.RemoteItem{
			ID:   child.ID,
			Name: child.Name,
			Path: child.Path,
			URL:  child.URL.Path,
		})
	}
	return children, nil
}

// query sends a single request and decodes the data payload into out.
// Transport and status failures translate to RemoteUnavailable;
// envelope errors translate to RemoteQueryError. Both are terminal for
// this fetch attempt.
func (c *Client) query(ctx context.Context, queryDoc, path, language string, out interface{}) error {
	if c.endpoint == "" {
		return errors.NewConfigurationMissingError("REMOTE_ENDPOINT")
	}

	body, err := json.Marshal(request{
		Query: queryDoc,
		Variables: map[string]string{
			"path":     path,
			"language": language,
		},
	})
	if err != nil {
		return errors.NewInternalError("encoding remote query").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.NewInternalError("building remote query request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	c.logger.Debug("remote query",
		zap.String("path", path),
		zap.String("language", language),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRemoteUnavailableError(0, "").WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewRemoteUnavailableError(resp.StatusCode, "").WithCause(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewRemoteUnavailableError(resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return errors.NewRemoteQueryError([]string{fmt.Sprintf("malformed response: %v", err)})
	}
	if len(env.Errors) > 0 {
		messages := make([]string, len(env.Errors))
		for i, e := range env.Errors {
			messages[i] = e.Message
		}
		return errors.NewRemoteQueryError(messages)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.NewRemoteQueryError([]string{fmt.Sprintf("malformed data payload: %v", err)})
	}
	return nil
}
