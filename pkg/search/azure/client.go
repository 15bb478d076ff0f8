package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-chat-be/pkg/search"
)

const apiVersion = "2023-11-01"

type Client struct {
	endpoint  string
	indexName string
	apiKey    string
	client    *http.Client
}

var _ search.Searcher = &Client{}

func NewClient(endpoint, indexName, apiKey string) *Client {
	return &Client{
		endpoint:  endpoint,
		indexName: indexName,
		apiKey:    apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type searchRequest struct {
	Search string `json:"search"`
	Top    int    `json:"top"`
}

type searchResponse struct {
	Value []map[string]interface{} `json:"value"`
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	payload, err := json.Marshal(searchRequest{
		Search: query,
		Top:    maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s", c.endpoint, c.indexName, apiVersion)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(bodyBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	results := make([]string, 0, len(searchResp.Value))
	for _, doc := range searchResp.Value {
		if content, ok := doc["content"].(string); ok {
			results = append(results, content)
		}
	}
	return results, nil
}
