package imagegen

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"lumina-server/concierge-api/internal/domain/image"
)

// Client implements image.Generator against a Together-style image
// generation endpoint.
type Client struct {
	httpClient *resty.Client
	model      string
}

type generationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Steps  int    `json:"steps"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type generationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetAuthToken(apiKey).
			SetTimeout(90 * time.Second),
		model: model,
	}
}

// GenerateImage calls /v1/images/generations and returns the first image
// URL from the response.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	var result generationResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(generationRequest{
			Model:  c.model,
			Prompt: prompt,
			N:      1,
			Steps:  28,
			Width:  1024,
			Height: 1024,
		}).
		SetResult(&result).
		Post("/v1/images/generations")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("image api error: %s", resp.Status())
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", fmt.Errorf("image api returned no image")
	}
	return result.Data[0].URL, nil
}

// Ensure interface compliance.
var _ image.Generator = (*Client)(nil)
