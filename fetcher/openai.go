package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const DefaultModel = "gpt-4o-mini"

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Complete asks for a JSON object reply and returns its raw content.
func (o *OpenAI) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},

				{
					Role:    openai.ChatMessageRoleUser,
					Content: user,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: 0.7,
		})
	record("openai_completion", err)
	if err != nil {
		return "", fmt.Errorf("failed to fetch completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("failed to fetch completion: no choices in response")
	}

	return resp.Choices[len(resp.Choices)-1].Message.Content, nil
}
