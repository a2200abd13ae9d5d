package openai

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/utils"
)

const defaultModel = "gpt-4o-mini"

// summary generation wants stable output across runs
const temperature = 0.3

// Client is the completion interface the summarizer depends on.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type client struct {
	log   *logger.Logger
	api   *sdk.Client
	model sdk.ChatModel
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey := strings.TrimSpace(utils.GetEnv("OPENAI_API_KEY", "", log))
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}
	model := utils.GetEnv("OPENAI_MODEL", defaultModel, log)

	api := sdk.NewClient(option.WithAPIKey(apiKey))
	return &client{
		log:   log.With("client", "OpenAIClient"),
		api:   &api,
		model: sdk.ChatModel(model),
	}, nil
}

func (c *client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model: c.model,
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.UserMessage(prompt),
		},
		Temperature: sdk.Float(temperature),
		MaxTokens:   sdk.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w: %v", pkgerrors.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: %w: no choices in response", pkgerrors.ErrUpstream)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
