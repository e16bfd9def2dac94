package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterProvider talks to OpenRouter's chat completion API directly.
type OpenRouterProvider struct {
	apiKey   string
	model    string
	referer  string
	endpoint string
	client   *http.Client
}

type openRouterRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type openRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewOpenRouterProvider(apiKey, model, referer string) *OpenRouterProvider {
	if model == "" {
		model = "deepseek/deepseek-chat"
	}

	return &OpenRouterProvider{
		apiKey:   apiKey,
		model:    model,
		referer:  referer,
		endpoint: openRouterEndpoint,
		client:   &http.Client{Timeout: 90 * time.Second},
	}
}

func (p *OpenRouterProvider) GenerateReply(ctx context.Context, userText string, history []ChatMessage) (string, error) {
	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: RoleUser, Content: userText})

	body, err := json.Marshal(openRouterRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   2048,
		Temperature: 0.3,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal openrouter request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build openrouter request")
	}

	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if p.referer != "" {
		req.Header.Set("HTTP-Referer", p.referer)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "openrouter request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read openrouter response")
	}

	var parsed openRouterResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.Wrap(err, "decode openrouter response")
	}

	if parsed.Error.Message != "" {
		return "", errors.Errorf("openrouter error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("openrouter status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return emptyCompletionReply, nil
	}

	return formatResponse(parsed.Choices[0].Message.Content), nil
}
