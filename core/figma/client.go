package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/mkerrigan/figgen/core/errors"
)

const defaultBaseURL = "https://api.figma.com"

// envToken is the process-level fallback when no token is configured.
const envToken = "FIGMA_TOKEN"

// Client fetches layout subtrees from the Figma REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the transport.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// NewClient builds a Client. token may be empty; the FIGMA_TOKEN
// environment variable is consulted as a fallback at call time.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resolveToken fails fast before any network call.
func (c *Client) resolveToken() (string, error) {
	if c.token != "" {
		return c.token, nil
	}
	if t := os.Getenv(envToken); t != "" {
		return t, nil
	}
	return "", errors.MissingCredential("figma")
}

// apiError is the machine-readable error body Figma returns on non-2xx.
type apiError struct {
	Status int    `json:"status"`
	Err    string `json:"err"`
}

type fileResponse struct {
	Name     string `json:"name"`
	Document *Node  `json:"document"`
}

type nodesResponse struct {
	Name  string `json:"name"`
	Nodes map[string]struct {
		Document *Node `json:"document"`
	} `json:"nodes"`
}

// FetchLayout retrieves the layout subtree for ref. A reference with a
// node id fetches just that node; otherwise the whole document root is
// returned. Every failure mode surfaces as one error shape: a
// MissingCredential before the network, or a ServiceError after.
func (c *Client) FetchLayout(ctx context.Context, ref Reference) (*Node, error) {
	token, err := c.resolveToken()
	if err != nil {
		return nil, err
	}

	if ref.NodeID != "" {
		return c.fetchNode(ctx, token, ref.FileKey, ref.NodeID)
	}
	return c.fetchDocument(ctx, token, ref.FileKey)
}

func (c *Client) fetchDocument(ctx context.Context, token, key string) (*Node, error) {
	body, err := c.get(ctx, token, fmt.Sprintf("%s/v1/files/%s", c.baseURL, url.PathEscape(key)))
	if err != nil {
		return nil, err
	}

	var resp fileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WrapService("figma", err)
	}
	if resp.Document == nil {
		return nil, errors.WrapService("figma", fmt.Errorf("response for file %s carried no document", key))
	}
	return resp.Document, nil
}

func (c *Client) fetchNode(ctx context.Context, token, key, nodeID string) (*Node, error) {
	id := transportNodeID(nodeID)
	endpoint := fmt.Sprintf("%s/v1/files/%s/nodes?ids=%s",
		c.baseURL, url.PathEscape(key), url.QueryEscape(id))

	body, err := c.get(ctx, token, endpoint)
	if err != nil {
		return nil, err
	}

	var resp nodesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WrapService("figma", err)
	}
	for _, entry := range resp.Nodes {
		if entry.Document != nil {
			return entry.Document, nil
		}
	}
	return nil, errors.WrapService("figma", fmt.Errorf("node %s not found in file %s", nodeID, key))
}

func (c *Client) get(ctx context.Context, token, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WrapService("figma", err)
	}
	req.Header.Set("X-Figma-Token", token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapService("figma", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapService("figma", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(body, &ae) == nil && ae.Err != "" {
			msg = ae.Err
		}
		return nil, errors.ServiceError("figma", resp.StatusCode, msg)
	}

	return body, nil
}
