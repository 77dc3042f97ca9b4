package tutor

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// Config holds AI tutor settings. Any OpenAI-compatible API works by
// pointing BaseURL at the provider's endpoint (Ark, DeepSeek, Moonshot, ...).
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Client generates explanatory text for questions and sessions. All output
// is opaque free-form text; the scheduling core never inspects it. Every
// operation degrades to a built-in fallback when no API key is configured
// or the provider call fails.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
}

// New creates a tutor client. A missing API key is not an error; the
// client simply reports unavailable and serves fallback text.
func New(cfg Config) *Client {
	c := &Client{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
	if c.model == "" {
		c.model = "gpt-4o-mini"
	}
	if c.maxTokens <= 0 {
		c.maxTokens = 1500
	}
	if cfg.APIKey != "" {
		apiCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			apiCfg.BaseURL = cfg.BaseURL
		}
		c.api = openai.NewClientWithConfig(apiCfg)
	}
	return c
}

// IsAvailable reports whether AI generation is configured.
func (c *Client) IsAvailable() bool {
	return c.api != nil
}

// ExplainFailure generates a detailed explanation anchored on the learner's
// actual choice.
func (c *Client) ExplainFailure(ctx context.Context, q models.Question, userAnswer int, isCorrect bool) string {
	prompt := buildExplainPrompt(q, userAnswer, isCorrect)
	text, err := c.chat(ctx, prompt, c.maxTokens)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("tutor").Warn("explanation generation failed: %v", err)
		return fallbackExplanation(q, userAnswer)
	}
	return text
}

// TranslateQuestion generates a bilingual translation and sentence analysis.
func (c *Client) TranslateQuestion(ctx context.Context, q models.Question) string {
	text, err := c.chat(ctx, buildTranslatePrompt(q), c.maxTokens)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("tutor").Warn("translation generation failed: %v", err)
		return fallbackTranslation(q)
	}
	return text
}

// SessionSummary generates an end-of-session review from the session's logs.
func (c *Client) SessionSummary(ctx context.Context, logs []models.StudyLog, questions map[int64]models.Question) string {
	if len(logs) == 0 {
		return "No study activity to summarize yet."
	}

	stats := summarizeSession(logs, questions)
	text, err := c.chat(ctx, buildSummaryPrompt(stats), summaryMaxTokens)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("tutor").Warn("summary generation failed: %v", err)
		return fallbackSummary(stats)
	}
	return text
}

// QuickTip returns a short pattern-recognition tip for a question type and
// skill tag.
func (c *Client) QuickTip(ctx context.Context, questionType, skillTag string) string {
	prompt := fmt.Sprintf(quickTipPromptTemplate, questionType, skillTag)
	text, err := c.chat(ctx, prompt, tipMaxTokens)
	if err != nil {
		return fallbackTip(skillTag)
	}
	return text
}

const (
	summaryMaxTokens = 800
	tipMaxTokens     = 200
	temperature      = 0.7
)

var errUnavailable = fmt.Errorf("tutor: no API key configured")

func (c *Client) chat(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.api == nil {
		return "", errUnavailable
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("tutor: empty response from provider")
	}
	return resp.Choices[0].Message.Content, nil
}
