package openai

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/healthmitra/healthmitra-be/pkg/llm"
)

// Client implements the llm.Client interface on top of the OpenAI API
type Client struct {
	api   *goopenai.Client
	model string
}

// Ensure Client implements llm.Client
var _ llm.Client = (*Client)(nil)

// Config holds configuration for the OpenAI client
type Config struct {
	APIKey string
	Model  string // Default: gpt-4o-mini
}

// NewClient creates a new OpenAI-backed LLM client
func NewClient(config Config) *Client {
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}

	return &Client{
		api:   goopenai.NewClient(config.APIKey),
		model: config.Model,
	}
}

// ChatCompletion implements llm.Client.ChatCompletion
func (c *Client) ChatCompletion(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if c.api == nil {
		return nil, errors.New("openai client not initialized")
	}

	// Set default model if not provided
	model := req.Model
	if model == "" {
		model = c.model
	}

	msgs := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := m.Role
		if role != goopenai.ChatMessageRoleSystem && role != goopenai.ChatMessageRoleUser && role != goopenai.ChatMessageRoleAssistant {
			// coerce anything unknown to user
			role = goopenai.ChatMessageRoleUser
		}
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	out := &llm.ChatResponse{
		ID:      resp.ID,
		Object:  resp.Object,
		Created: resp.Created,
		Model:   resp.Model,
	}
	out.Choices = make([]struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	}, len(resp.Choices))
	for i, choice := range resp.Choices {
		out.Choices[i].Index = choice.Index
		out.Choices[i].Message.Role = choice.Message.Role
		out.Choices[i].Message.Content = choice.Message.Content
		out.Choices[i].FinishReason = string(choice.FinishReason)
	}
	out.Usage.PromptTokens = resp.Usage.PromptTokens
	out.Usage.CompletionTokens = resp.Usage.CompletionTokens
	out.Usage.TotalTokens = resp.Usage.TotalTokens

	return out, nil
}
