package providers

import "context"

// DemoProvider stands in when no provider API key is configured. Every
// question gets the same canned notice so the widget still works end to end.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

func (p *DemoProvider) GenerateReply(ctx context.Context, userText string, history []ChatMessage) (string, error) {
	return demoModeReply, nil
}
