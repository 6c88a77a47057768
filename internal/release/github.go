package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIBaseURL is the public GitHub REST endpoint.
const DefaultAPIBaseURL = "https://api.github.com"

// GitHubClient lists tags through the GitHub REST API.
//
// GitHub returns tags newest-first for repositories tagged in release
// order. That ordering is not re-validated here.
type GitHubClient struct {
	baseURL string
	repo    string
	token   string
	client  *http.Client
}

// NewGitHubClient creates a client for repo ("owner/name"). A zero timeout
// leaves the http.Client without a deadline.
func NewGitHubClient(baseURL, repo string, timeout time.Duration) *GitHubClient {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &GitHubClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		repo:    repo,
		client:  &http.Client{Timeout: timeout},
	}
}

// WithToken sets a bearer token used to raise the API rate limit.
func (c *GitHubClient) WithToken(token string) *GitHubClient {
	c.token = token
	return c
}

// ListTags implements TagSource.
func (c *GitHubClient) ListTags(ctx context.Context) ([]Tag, error) {
	url := fmt.Sprintf("%s/repos/%s/tags", c.baseURL, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{Op: "creating request", Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "GET " + url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "reading response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Op: fmt.Sprintf("GET %s returned status %d: %s", url, resp.StatusCode, truncate(string(body), 200))}
	}

	var tags []Tag
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, &NetworkError{Op: "decoding tag list", Err: err}
	}
	return tags, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
