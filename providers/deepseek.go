package providers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const deepSeekBaseURL = "https://api.deepseek.com/v1"

// DeepSeekProvider talks to DeepSeek's OpenAI-compatible chat completion
// API.
type DeepSeekProvider struct {
	llm *openai.LLM
}

func NewDeepSeekProvider(token, model string) (*DeepSeekProvider, error) {
	if model == "" {
		model = "deepseek-chat"
	}

	llm, err := openai.New(
		openai.WithToken(token),
		openai.WithModel(model),
		openai.WithBaseURL(deepSeekBaseURL),
	)
	if err != nil {
		return nil, errors.Wrap(err, "init deepseek client")
	}

	return &DeepSeekProvider{llm: llm}, nil
}

func (p *DeepSeekProvider) GenerateReply(ctx context.Context, userText string, history []ChatMessage) (string, error) {
	content := make([]llms.MessageContent, 0, len(history)+2)
	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))

	for _, message := range history {
		if message.Role == RoleAssistant {
			content = append(content, llms.TextParts(llms.ChatMessageTypeAI, message.Content))
		} else {
			content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, message.Content))
		}
	}

	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, userText))

	output, err := p.llm.GenerateContent(ctx, content,
		llms.WithMaxTokens(2048),
		llms.WithTemperature(0.3),
	)
	if err != nil {
		return "", errors.Wrap(err, "deepseek completion")
	}

	if len(output.Choices) == 0 || output.Choices[0].Content == "" {
		return emptyCompletionReply, nil
	}

	return formatResponse(output.Choices[0].Content), nil
}
