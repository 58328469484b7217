package localnotes

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ToolCall records one tool invocation made while answering a message
type ToolCall struct {
	Tool   string                 `json:"tool"`
	Input  map[string]interface{} `json:"input"`
	Result interface{}            `json:"result"`
}

// AgentResult is the assistant reply plus the trail of tool invocations
type AgentResult struct {
	Reply   string     `json:"reply"`
	Actions []ToolCall `json:"actions"`
}

// HistoryMessage is a prior turn of the conversation
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Ask sends a chat message to the notes assistant
func (c *Client) Ask(message string, history []HistoryMessage) (*AgentResult, error) {
	payload := struct {
		Message string           `json:"message"`
		History []HistoryMessage `json:"history"`
	}{
		Message: message,
		History: history,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/agent", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result AgentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &result, nil
}
