// Package llm proxies chat completions to an OpenAI-compatible API.
package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/carlmjohnson/requests"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const systemPrompt = "You are a friendly assistant for an anime-tracking app. " +
	"Answer questions about anime, recommendations, and the user's watch list. Keep replies short."

type Client struct {
	cfg       *config.Config
	log       *zap.Logger
	transport http.RoundTripper
}

func NewClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, transport http.RoundTripper) *Client {
	return &Client{cfg, log, transport}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete sends one user message under the fixed system prompt and returns
// the model's reply.
func (c *Client) Complete(ctx context.Context, userMessage string) (string, error) {
	req := completionRequest{
		Model: c.cfg.LLM.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	var resp completionResponse
	err := requests.
		URL(c.cfg.LLM.APIURL).
		Header("Authorization", "Bearer "+c.cfg.LLM.APIKey).
		Transport(c.transport).
		BodyJSON(&req).
		ToJSON(&resp).
		Fetch(ctx)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
