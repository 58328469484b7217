package llm

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

const defaultTimeout = 150 * time.Second

// NewClient returns a client for any OpenAI-compatible chat-completion
// backend. Local backends usually ignore the key, so a placeholder is used
// when none is configured; timeout is a duration string like "5m".
func NewClient(apiKey, apiURL, timeout string) *openai.Client {
	if apiKey == "" {
		apiKey = "sk-xxx"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = apiURL

	duration, err := time.ParseDuration(timeout)
	if err != nil {
		duration = defaultTimeout
	}
	config.HTTPClient = &http.Client{
		Timeout: duration,
	}

	return openai.NewClientWithConfig(config)
}
