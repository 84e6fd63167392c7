package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"codeberg.org/vertexgate/server/internal/gcp"
)

const (
	globalLocation = "global"
	pageSize       = 10
	summaryResults = 5
	summaryPrompt  = "Return the summary in a markdown format."
)

var ErrEmptyQuery = errors.New("search: query and engine must not be empty")

// queries Vertex AI Search engines through the Discovery Engine REST API
type Client struct {
	baseURL    string
	project    string
	location   string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// the client must attach credentials; see gcp.DefaultHTTPClient
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(project, location string, opts ...Option) (*Client, error) {
	project = strings.TrimSpace(project)
	location = strings.TrimSpace(location)

	if project == "" {
		return nil, errors.New("search: project must not be empty")
	}

	if location == "" {
		location = globalLocation
	}

	c := &Client{
		baseURL:  endpointFor(location),
		project:  project,
		location: location,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// global engines live on the bare host, regional ones on a prefixed host
func endpointFor(location string) string {
	if location == globalLocation {
		return "https://discoveryengine.googleapis.com"
	}

	return fmt.Sprintf("https://%s-discoveryengine.googleapis.com", location)
}

func (c *Client) servingConfigURL(engineID string) string {
	return fmt.Sprintf("%s/v1/projects/%s/locations/%s/collections/default_collection/engines/%s/servingConfigs/default_config:search",
		c.baseURL, c.project, c.location, url.PathEscape(engineID))
}

// runs query against engineID and returns the raw JSON response
func (c *Client) Search(ctx context.Context, query, engineID string) ([]byte, error) {
	if strings.TrimSpace(query) == "" || strings.TrimSpace(engineID) == "" {
		return nil, ErrEmptyQuery
	}

	raw, err := gcp.PostJSON(ctx, c.httpClient, c.servingConfigURL(engineID), newSearchRequest(query))
	if err != nil {
		return nil, fmt.Errorf("search: request failed: %w", err)
	}

	return raw, nil
}

func newSearchRequest(query string) searchRequest {
	return searchRequest{
		Query:    query,
		PageSize: pageSize,
		ContentSearchSpec: contentSearchSpec{
			SnippetSpec: snippetSpec{ReturnSnippet: true},
			SummarySpec: summarySpec{
				SummaryResultCount:           summaryResults,
				IncludeCitations:             true,
				IgnoreAdversarialQuery:       true,
				IgnoreNonSummarySeekingQuery: true,
				ModelPromptSpec:              modelPromptSpec{Preamble: summaryPrompt},
				ModelSpec:                    modelSpec{Version: "stable"},
			},
		},
		QueryExpansionSpec:  queryExpansionSpec{Condition: "AUTO"},
		SpellCorrectionSpec: spellCorrectionSpec{Mode: "AUTO"},
	}
}
