package providers

import (
	"regexp"
	"strings"
)

const (
	fallbackEnglish = "I'm having trouble connecting to my AI service right now. Please try again in a moment."
	fallbackArabic  = "عذراً، أواجه مشكلة في الاتصال حالياً. يرجى المحاولة مرة أخرى بعد قليل."

	emptyCompletionReply = "I couldn't generate a response. Please try again."

	demoModeReply = "I'm currently in demo mode. Please configure an answer provider API key to enable AI responses."
)

var arabicPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)

// DetectLanguage classifies text as "arabic" when it contains any character
// from the Arabic Unicode block, otherwise "english".
func DetectLanguage(text string) string {
	if arabicPattern.MatchString(text) {
		return "arabic"
	}
	return "english"
}

// FallbackReply is the canned apology substituted for a failed provider
// call, matched to the language of the user's message.
func FallbackReply(userText string) string {
	if DetectLanguage(userText) == "arabic" {
		return fallbackArabic
	}
	return fallbackEnglish
}

func formatResponse(content string) string {
	return strings.TrimSpace(content)
}
