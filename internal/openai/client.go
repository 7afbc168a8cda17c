// Package openai is a thin client for the OpenAI chat-completions
// API, used by the advice and recommendation features.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"spawnsmart/internal/domain"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"

	requestTemperature = 0.7
	requestMaxTokens   = 1000
)

// ErrNoAPIKey means no OpenAI credential was configured. Callers
// treat this as "use the static fallback", not as a failure.
var ErrNoAPIKey = errors.New("openai api key not configured")

// Message is one chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage reports token consumption for a completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// Completion is the result of a chat request
type Completion struct {
	Response string
	Usage    Usage
	Duration time.Duration
}

// SendOptions tunes a single request
type SendOptions struct {
	SystemPrompt  string
	SaveToHistory bool
}

// Client talks to the chat-completions endpoint. It keeps an optional
// conversation history for multi-turn exchanges.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger

	mu      sync.Mutex
	history []Message
}

// Option customizes a Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used in tests
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithModel selects the completion model
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// NewClient creates a chat client. A missing API key is allowed; send
// calls then return ErrNoAPIKey.
func NewClient(apiKey string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SendMessage sends one user message plus the system prompt and any
// retained history, and returns the assistant's reply
func (c *Client) SendMessage(ctx context.Context, message string, opts SendOptions) (*Completion, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	systemPrompt := opts.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = "You are a helpful assistant specializing in mushroom cultivation."
	}

	c.mu.Lock()
	messages := make([]Message, 0, len(c.history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, c.history...)
	messages = append(messages, Message{Role: "user", Content: message})
	c.mu.Unlock()

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: requestTemperature,
		MaxTokens:   requestMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("chat response contained no choices")
	}

	reply := parsed.Choices[0].Message.Content
	duration := time.Since(start)

	c.logger.Info("Received chat completion",
		zap.String("model", c.model),
		zap.Int("prompt_tokens", parsed.Usage.PromptTokens),
		zap.Int("completion_tokens", parsed.Usage.CompletionTokens),
		zap.Int("total_tokens", parsed.Usage.TotalTokens),
		zap.Duration("duration", duration),
	)

	if opts.SaveToHistory {
		c.mu.Lock()
		c.history = append(c.history,
			Message{Role: "user", Content: message},
			Message{Role: "assistant", Content: reply},
		)
		c.mu.Unlock()
	}

	return &Completion{Response: reply, Usage: parsed.Usage, Duration: duration}, nil
}

// ClearHistory drops the retained conversation
func (c *Client) ClearHistory() {
	c.mu.Lock()
	c.history = nil
	c.mu.Unlock()
}

// GenerateCultivationAdvice asks for advice tailored to the user's
// calculator inputs
func (c *Client) GenerateCultivationAdvice(ctx context.Context, input domain.CalculatorInput) (string, error) {
	prompt := fmt.Sprintf(`I'm growing mushrooms with the following setup:
- Experience level: %s
- Spawn amount: %v quarts
- Substrate ratio: 1:%d
- Substrate type: %s
- Container size: %v quarts

Based on this information, can you provide me with personalized cultivation advice?
Include tips on optimal conditions, potential issues to watch for, and how to maximize yield.`,
		input.ExperienceLevel, input.SpawnAmount, input.SubstrateRatio, input.SubstrateType, input.ContainerSize)

	completion, err := c.SendMessage(ctx, prompt, SendOptions{
		SystemPrompt: "You are a mycology expert specializing in mushroom cultivation. Provide concise, accurate advice for mushroom growers based on their specific setup. Focus on practical tips that will help them succeed.",
	})
	if err != nil {
		return "", err
	}
	return completion.Response, nil
}
