// Package clockify is a minimal client for the Clockify v1 REST API,
// covering the operations clockfill needs: identity, name resolution,
// time-entry listing and time-entry creation.
package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.clockify.me/api/v1"

// listPageSize matches Clockify's maximum page size for project/tag listings.
const listPageSize = 5000

// NotFoundError means a configured workspace, project or tag name does not
// exist in the remote account. Resolution happens once per run, before any
// date computation, and this error aborts the run.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Client is an authenticated Clockify API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Clockify client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs an authenticated GET of path with query params and decodes
// the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, out)
}

// post performs an authenticated POST of a JSON payload to path and decodes
// the JSON response into out.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("clockify API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("clockify API error %d: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decoding clockify response: %w", err)
		}
	}
	return nil
}

// User is the authenticated Clockify user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Workspace is a Clockify workspace.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is a Clockify project within a workspace.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tag is a Clockify tag within a workspace.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CurrentUser fetches the user owning the API key.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var u User
	if err := c.get(ctx, "/user", nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Workspaces lists all workspaces visible to the user.
func (c *Client) Workspaces(ctx context.Context) ([]Workspace, error) {
	var wss []Workspace
	if err := c.get(ctx, "/workspaces", nil, &wss); err != nil {
		return nil, err
	}
	return wss, nil
}

// Projects lists all projects in a workspace.
func (c *Client) Projects(ctx context.Context, workspaceID string) ([]Project, error) {
	params := url.Values{"page-size": {fmt.Sprint(listPageSize)}}
	var ps []Project
	if err := c.get(ctx, "/workspaces/"+workspaceID+"/projects", params, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// Tags lists all tags in a workspace.
func (c *Client) Tags(ctx context.Context, workspaceID string) ([]Tag, error) {
	params := url.Values{"page-size": {fmt.Sprint(listPageSize)}}
	var ts []Tag
	if err := c.get(ctx, "/workspaces/"+workspaceID+"/tags", params, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// ResolveWorkspace returns the ID of the workspace with the given name, or
// the first workspace when name is empty.
func (c *Client) ResolveWorkspace(ctx context.Context, name string) (string, error) {
	wss, err := c.Workspaces(ctx)
	if err != nil {
		return "", err
	}
	if len(wss) == 0 {
		return "", &NotFoundError{Kind: "workspace", Name: name}
	}
	if name == "" {
		return wss[0].ID, nil
	}
	for _, ws := range wss {
		if ws.Name == name {
			return ws.ID, nil
		}
	}
	return "", &NotFoundError{Kind: "workspace", Name: name}
}

// ResolveProject returns the ID of the named project in a workspace.
func (c *Client) ResolveProject(ctx context.Context, workspaceID, name string) (string, error) {
	ps, err := c.Projects(ctx, workspaceID)
	if err != nil {
		return "", err
	}
	for _, p := range ps {
		if p.Name == name {
			return p.ID, nil
		}
	}
	return "", &NotFoundError{Kind: "project", Name: name}
}

// ResolveTag returns the ID of the named tag in a workspace.
func (c *Client) ResolveTag(ctx context.Context, workspaceID, name string) (string, error) {
	ts, err := c.Tags(ctx, workspaceID)
	if err != nil {
		return "", err
	}
	for _, t := range ts {
		if t.Name == name {
			return t.ID, nil
		}
	}
	return "", &NotFoundError{Kind: "tag", Name: name}
}
