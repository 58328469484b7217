package agent

import "github.com/sashabaranov/go-openai"

// SanitizeHistory converts a caller-supplied conversation history into chat
// messages, keeping only well-formed user and assistant text turns. Anything
// malformed, non-object entries included, is dropped silently; a bad history
// entry never fails a request.
func SanitizeHistory(raw []interface{}) []openai.ChatCompletionMessage {
	history := []openai.ChatCompletionMessage{}
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		role, _ := entry["role"].(string)
		if role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			continue
		}
		content, ok := entry["content"].(string)
		if !ok || content == "" {
			continue
		}
		history = append(history, openai.ChatCompletionMessage{
			Role:    role,
			Content: content,
		})
	}
	return history
}
