// Package ai wraps the OpenAI-compatible completion API behind a small
// boundary so the rest of the system deals with typed failures only.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/techpulse/techpulse/pkg/config"
	"github.com/techpulse/techpulse/pkg/domain"
)

// Message is one turn of a completion request
type Message struct {
	Role    domain.Role
	Content string
}

// Client calls an OpenAI-compatible chat completion endpoint
type Client struct {
	client  *openai.Client
	model   string
	temp    float32
	maxTok  int
	timeout time.Duration
}

// NewClient creates a completion client from config. A custom endpoint
// allows local OpenAI-compatible servers (ollama, llama.cpp).
func NewClient(cfg config.AIConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		temp:    float32(cfg.Temperature),
		maxTok:  cfg.MaxTokens,
		timeout: timeout,
	}
}

// Complete sends a system prompt plus conversation turns and returns the
// completion text. Failures come back as *domain.AIError.
func (c *Client) Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    apiRole(m.Role),
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temp,
		MaxTokens:   c.maxTok,
		Messages:    chatMessages,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &domain.AIError{Kind: domain.AIErrTimeout, Err: err}
		}
		return "", &domain.AIError{Kind: domain.AIErrRejected, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &domain.AIError{Kind: domain.AIErrMalformed, Err: fmt.Errorf("no choices in response")}
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &domain.AIError{Kind: domain.AIErrMalformed, Err: fmt.Errorf("empty completion")}
	}
	return text, nil
}

func apiRole(r domain.Role) string {
	switch r {
	case domain.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	case domain.RoleSystem:
		return openai.ChatMessageRoleSystem
	default:
		return openai.ChatMessageRoleUser
	}
}
