package providers

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of conversation history handed to a provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnswerProvider produces a reply for a user message given the session's
// prior turns in chronological order. Implementations may take seconds;
// callers bound the call with the context.
type AnswerProvider interface {
	GenerateReply(ctx context.Context, userText string, history []ChatMessage) (string, error)
}
