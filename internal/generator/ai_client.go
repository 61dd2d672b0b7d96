package generator

import (
	"context"
	"strings"
	"time"

	"email-template-server/internal/models"

	"github.com/pkoukk/tiktoken-go"
	"github.com/prometheus/client_golang/prometheus"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// UsageInfo содержит информацию об использовании токенов.
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Estimated        bool // true, если API не вернул usage и токены посчитаны локально
}

// AIClient talks to a chat-completion API on behalf of one caller.
type AIClient interface {
	// GenerateText sends a system and a user message and returns the raw text
	// of the first choice.
	GenerateText(ctx context.Context, systemPrompt, userInput string) (string, UsageInfo, error)
}

// ClientFactory builds an AIClient bound to the caller's API key.
type ClientFactory func(apiKey string) AIClient

// ClientConfig holds server-side completion settings. None of them can be
// overridden by the caller.
type ClientConfig struct {
	Model       string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// NewOpenAIClientFactory returns a ClientFactory producing go-openai backed clients.
func NewOpenAIClientFactory(cfg ClientConfig, logger *zap.Logger) ClientFactory {
	logger = logger.Named("OpenAIClient")
	return func(apiKey string) AIClient {
		config := openai.DefaultConfig(apiKey)
		if cfg.BaseURL != "" {
			config.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		}
		return &openAIClient{
			client:      openai.NewClientWithConfig(config),
			model:       cfg.Model,
			temperature: cfg.Temperature,
			timeout:     cfg.Timeout,
			logger:      logger,
		}
	}
}

// openAIClient реализует AIClient с использованием go-openai
type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
	logger      *zap.Logger
}

// GenerateText implements AIClient.
func (c *openAIClient) GenerateText(ctx context.Context, systemPrompt, userInput string) (string, UsageInfo, error) {
	usage := UsageInfo{}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userInput},
		},
		Temperature: c.temperature,
	}

	c.logger.Debug("Sending completion request",
		zap.String("model", c.model),
		zap.Int("system_prompt_bytes", len(systemPrompt)),
		zap.Int("user_input_bytes", len(userInput)),
	)

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)
	aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(duration.Seconds())

	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error"}).Inc()
		c.logger.Warn("Completion request failed", zap.Duration("duration", duration), zap.Error(err))
		return "", usage, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_empty_response"}).Inc()
		return "", usage, models.ErrEmptyCompletion
	}
	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()

	text := resp.Choices[0].Message.Content
	if resp.Usage.TotalTokens > 0 {
		usage.PromptTokens = resp.Usage.PromptTokens
		usage.CompletionTokens = resp.Usage.CompletionTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	} else {
		usage = c.estimateUsage(systemPrompt+userInput, text)
	}
	if usage.TotalTokens > 0 {
		aiPromptTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(usage.PromptTokens))
		aiCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(usage.CompletionTokens))
	}

	c.logger.Info("Completion received",
		zap.Duration("duration", duration),
		zap.Int("response_length", len(text)),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
		zap.Bool("estimated_usage", usage.Estimated),
	)
	return text, usage, nil
}

// estimateUsage считает токены локально, если API не вернул usage
// (например, OpenAI-совместимые прокси).
func (c *openAIClient) estimateUsage(prompt, completion string) UsageInfo {
	tke, err := tiktoken.EncodingForModel(c.model)
	if err != nil {
		c.logger.Debug("No tokenizer for model, skipping usage estimate", zap.String("model", c.model), zap.Error(err))
		return UsageInfo{}
	}
	promptTokens := len(tke.Encode(prompt, nil, nil))
	completionTokens := len(tke.Encode(completion, nil, nil))
	return UsageInfo{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		Estimated:        true,
	}
}

// ClassifyError maps a completion failure onto the error taxonomy by looking
// for keywords in its message. This is best effort only: the API does not
// promise these words, so anything unrecognised becomes ErrUpstreamGeneration.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	kind := models.ErrUpstreamGeneration
	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "unauthorized"):
		kind = models.ErrUpstreamAuth
	case strings.Contains(msg, "quota"), strings.Contains(msg, "billing"):
		kind = models.ErrUpstreamQuota
	}
	return &models.UpstreamError{Kind: kind, Cause: err}
}
