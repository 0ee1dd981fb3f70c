package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"lumina-server/concierge-api/internal/domain/llm"
)

// Client implements the llm.Provider interface against an OpenAI-compatible
// chat completions endpoint.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a Resty-backed client. apiKey may be empty; requests
// then fail at the provider and surface as connectivity errors, which the
// orchestrator already absorbs.
func NewClient(baseURL, apiKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(75 * time.Second)
	if apiKey != "" {
		httpClient.SetAuthToken(apiKey)
	}
	return &Client{httpClient: httpClient}
}

// CreateChatCompletion calls /v1/chat/completions.
func (c *Client) CreateChatCompletion(ctx context.Context, req llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	var completion llm.ChatCompletionResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&completion).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("chat api error: %s", resp.String())
	}
	return &completion, nil
}

// Ensure interface compliance.
var _ llm.Provider = (*Client)(nil)
