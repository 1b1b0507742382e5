package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

const defaultTimeout = 10 * time.Second

// Client is a typed HTTP client for the calendar REST surface. Every call
// runs to completion or failure; nothing is retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the given base URL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// ListProjects fetches all projects.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type createProjectReq struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Platform    domain.Platform       `json:"platform"`
	Contents    []domain.ContentDraft `json:"contents,omitempty"`
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, name string, platform domain.Platform, description string) (*domain.Project, error) {
	var p domain.Project
	body := createProjectReq{Name: name, Description: description, Platform: platform}
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject deletes a project and all its content.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/projects/"+id, nil, nil)
}

type mutateReq struct {
	Action    string               `json:"action"`
	Content   *domain.ContentDraft `json:"content,omitempty"`
	ContentID string               `json:"contentId,omitempty"`
	Updates   *domain.ContentPatch `json:"updates,omitempty"`
}

type mutateResp struct {
	Success bool            `json:"success"`
	Content *domain.Content `json:"content,omitempty"`
}

// AddContent appends a content item to the project.
func (c *Client) AddContent(ctx context.Context, projectID string, draft domain.ContentDraft) (*domain.Content, error) {
	var resp mutateResp
	body := mutateReq{Action: "addContent", Content: &draft}
	if err := c.do(ctx, http.MethodPut, "/api/v1/projects/"+projectID, body, &resp); err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// UpdateContent patches a content item by id.
func (c *Client) UpdateContent(ctx context.Context, projectID, contentID string, patch domain.ContentPatch) error {
	body := mutateReq{Action: "updateContent", ContentID: contentID, Updates: &patch}
	return c.do(ctx, http.MethodPut, "/api/v1/projects/"+projectID, body, nil)
}

// RemoveContent deletes a content item by id.
func (c *Client) RemoveContent(ctx context.Context, projectID, contentID string) error {
	body := mutateReq{Action: "deleteContent", ContentID: contentID}
	return c.do(ctx, http.MethodPut, "/api/v1/projects/"+projectID, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError maps the server's error envelope back onto the domain sentinels
// so callers can errors.Is against them.
func (c *Client) apiError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", envelope.Error, domain.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", envelope.Error, domain.ErrValidation)
	default:
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, envelope.Error)
	}
}
