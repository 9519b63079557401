package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contentedge/infrastructure/config"
	"contentedge/pkg/errors"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{
			name: "plain base",
			base: "https://edge.example.com",
			want: "https://edge.example.com/api/graphql/v1",
		},
		{
			name: "trailing slash trimmed",
			base: "https://edge.example.com/",
			want: "https://edge.example.com/api/graphql/v1",
		},
		{
			name: "deprecated host segment rewritten",
			base: "https://edge-beta.example.com",
			want: "https://edge.example.com/api/graphql/v1",
		},
		{
			name: "empty base stays empty",
			base: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Endpoint(tt.base))
		})
	}
}

func newTestClient(serverURL, apiKey string) *Client {
	cfg := &config.Config{
		RemoteEndpoint: serverURL,
		APIKey:         apiKey,
	}
	return NewClient(cfg, zap.NewNop())
}

func TestFetchItem_Success(t *testing.T) {
	// Arrange
	var gotRequest request
	var gotHeader http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/graphql/v1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"item":{"id":"item-1","name":"Hello","path":"/content/target/hello","fields":[{"name":"title","value":"Hello Title"},{"name":"content","value":"Body"}]}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "secret-key")

	// Act
	item, err := client.FetchItem(context.Background(), "/content/target/hello", "en")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "Hello", item.Name)
	assert.Equal(t, "/content/target/hello", item.Path)
	assert.Equal(t, "Hello Title", item.Fields["title"])
	assert.Equal(t, "Body", item.Fields["content"])

	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "secret-key", gotHeader.Get("X-API-Key"))
	assert.Contains(t, gotRequest.Query, "fields")
	assert.Equal(t, "/content/target/hello", gotRequest.Variables["path"])
	assert.Equal(t, "en", gotRequest.Variables["language"])
}

func TestFetchItem_MissingItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"item":null}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	item, err := client.FetchItem(context.Background(), "/content/target/missing", "en")

	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestFetchItem_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	item, err := client.FetchItem(context.Background(), "/content/target/x", "en")

	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.IsRemoteUnavailable(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Details["status"])
	assert.Equal(t, "upstream down", appErr.Details["body"])
}

func TestFetchItem_EnvelopeErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"field does not exist"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	item, err := client.FetchItem(context.Background(), "/content/target/x", "en")

	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.IsRemoteQuery(err))
	assert.Contains(t, err.Error(), "field does not exist")
}

func TestFetchItem_Unconfigured(t *testing.T) {
	client := newTestClient("", "")

	item, err := client.FetchItem(context.Background(), "/content/target/x", "en")

	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.IsConfigurationMissing(err))
}

func TestFetchChildren_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"item":{"id":"root","name":"target","path":"/content/target","children":[{"id":"1","name":"post-1","path":"/content/target/post-1","url":{"path":"/blog/post-1"}},{"id":"2","name":"post-2","path":"/content/target/post-2","url":{"path":"/blog/post-2"}}]}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	children, err := client.FetchChildren(context.Background(), "/content/target", "en")

	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "post-1", children[0].Name)
	assert.Equal(t, "/blog/post-1", children[0].URL)
	assert.Equal(t, "post-2", children[1].Name)
}

func TestFetchChildren_NoItemYieldsEmptySlice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"item":null}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	children, err := client.FetchChildren(context.Background(), "/content/target", "en")

	require.NoError(t, err)
	assert.NotNil(t, children)
	assert.Empty(t, children)
}

func TestAPIKeyOverridePrecedence(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		w.Write([]byte(`{"data":{"item":null}}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		RemoteEndpoint: server.URL,
		APIKey:         "default-key",
		APIKeyOverride: "override-key",
	}
	client := NewClient(cfg, zap.NewNop())

	_, err := client.FetchItem(context.Background(), "/content/target/x", "en")

	require.NoError(t, err)
	assert.Equal(t, "override-key", gotKey)
}
