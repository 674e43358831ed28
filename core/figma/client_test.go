package figma

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	figerrors "github.com/mkerrigan/figgen/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLayoutRequiresToken(t *testing.T) {
	t.Setenv(envToken, "")

	c := NewClient("")
	_, err := c.FetchLayout(context.Background(), Reference{FileKey: "abc"})

	var fe *figerrors.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, figerrors.KindMissingCredential, fe.Kind)
}

func TestFetchLayoutEnvFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "env-token", r.Header.Get("X-Figma-Token"))
		w.Write([]byte(`{"name":"f","document":{"id":"0:0","name":"Document","type":"FRAME"}}`))
	}))
	defer srv.Close()

	t.Setenv(envToken, "env-token")
	c := NewClient("", WithBaseURL(srv.URL))

	node, err := c.FetchLayout(context.Background(), Reference{FileKey: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "Document", node.Name)
}

func TestFetchLayoutWholeDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/files/abc", r.URL.Path)
		w.Write([]byte(`{
			"name": "My File",
			"document": {
				"id": "0:0", "name": "Document", "type": "FRAME",
				"children": [
					{"id": "1:1", "name": "Hero", "type": "FRAME",
					 "layoutMode": "HORIZONTAL", "itemSpacing": 8,
					 "children": [
						{"id": "1:2", "name": "Title", "type": "TEXT",
						 "characters": "Hello", "style": {"fontSize": 24}}
					 ]}
				]
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient("tok", WithBaseURL(srv.URL))
	node, err := c.FetchLayout(context.Background(), Reference{FileKey: "abc"})
	require.NoError(t, err)

	assert.Equal(t, 3, node.Count())
	hero := node.Children[0]
	assert.Equal(t, "HORIZONTAL", hero.LayoutMode)
	assert.Equal(t, 8.0, hero.ItemSpacing)
	title := hero.Children[0]
	assert.Equal(t, NodeTypeText, title.Type)
	assert.Equal(t, "Hello", title.Characters)
	assert.Equal(t, 24.0, title.Style.FontSize)
}

func TestFetchLayoutSpecificNode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/files/abc/nodes", r.URL.Path)
		// Compound ids travel with the dash delimiter.
		assert.Equal(t, "12-34", r.URL.Query().Get("ids"))
		w.Write([]byte(`{
			"name": "My File",
			"nodes": {
				"12:34": {"document": {"id": "12:34", "name": "Card", "type": "FRAME"}}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient("tok", WithBaseURL(srv.URL))
	node, err := c.FetchLayout(context.Background(), Reference{FileKey: "abc", NodeID: "12:34"})
	require.NoError(t, err)
	assert.Equal(t, "Card", node.Name)
}

func TestFetchLayoutUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status": 403, "err": "Invalid token"}`))
	}))
	defer srv.Close()

	c := NewClient("bad", WithBaseURL(srv.URL))
	_, err := c.FetchLayout(context.Background(), Reference{FileKey: "abc"})

	var fe *figerrors.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, figerrors.KindServiceError, fe.Kind)
	assert.Equal(t, 403, fe.StatusCode)
	assert.Contains(t, fe.Message, "Invalid token")
}

func TestFetchLayoutNetworkErrorSameShape(t *testing.T) {
	c := NewClient("tok", WithBaseURL("http://127.0.0.1:1"))
	_, err := c.FetchLayout(context.Background(), Reference{FileKey: "abc"})

	var fe *figerrors.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, figerrors.KindServiceError, fe.Kind)
}

func TestNodeVisibility(t *testing.T) {
	vis := true
	hidden := false

	assert.True(t, (&Node{}).IsVisible())
	assert.True(t, (&Node{Visible: &vis}).IsVisible())
	assert.False(t, (&Node{Visible: &hidden}).IsVisible())
}
