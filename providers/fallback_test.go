package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "english", DetectLanguage("What are the admission requirements?"))
	assert.Equal(t, "arabic", DetectLanguage("ما هي شروط القبول؟"))
	assert.Equal(t, "arabic", DetectLanguage("hello ما هي"))
	assert.Equal(t, "english", DetectLanguage(""))
}

func TestFallbackReplyMatchesLanguage(t *testing.T) {
	assert.Equal(t, fallbackEnglish, FallbackReply("When do classes start?"))
	assert.Equal(t, fallbackArabic, FallbackReply("متى تبدأ الدراسة؟"))
}

func TestFormatResponseTrims(t *testing.T) {
	assert.Equal(t, "answer", formatResponse("  answer\n"))
}
