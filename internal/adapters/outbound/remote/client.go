package remote

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/revu-dev/revu/internal/domain"
)

// Client implements domain.Reviewer against a revu server's
// /v1/chat/completions endpoint.
type Client struct {
	api openai.Client
}

// New creates a client for baseURL, e.g. "http://localhost:3000/v1".
func New(baseURL string, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey("revu"),
		option.WithMaxRetries(1),
	}, opts...)
	return &Client{api: openai.NewClient(opts...)}
}

// Review sends source as a user message and decodes the AnalysisResult nested
// in choices[0].message.content.
func (c *Client) Review(ctx context.Context, source string) (*domain.AnalysisResult, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: domain.ModelName,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(source),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("requesting review: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.ErrEmptyEnvelope
	}
	return domain.ParseChatContent(resp.Choices[0].Message.Content)
}
