package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/mudler/LocalNotes/services/tools"
	"github.com/mudler/xlog"
	"github.com/sashabaranov/go-openai"
)

const (
	// maxToolRounds bounds the model round-trips of one invocation. Each
	// round is one completion call plus the tool dispatch it triggers.
	maxToolRounds = 3

	// temperature favors deterministic tool use over creative replies.
	temperature = 0.1
)

// RoundLimitReply is returned when the round budget runs out before the
// model produces a final textual answer. The action trail is still returned
// alongside it.
const RoundLimitReply = "I wasn't able to finish this request within the allowed number of steps. The actions taken so far are listed below; please retry or split the request into smaller parts."

// ErrNotConfigured signals that the agent has no model backend to talk to.
var ErrNotConfigured = errors.New("no model configured")

// ChatCompleter is the slice of the OpenAI client the agent needs. It is
// satisfied by *openai.Client and by llm.MockClient in tests.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ToolCall is one immutable entry of the action trail: the tool the model
// asked for, the arguments it supplied and whatever came back, errors
// included.
type ToolCall struct {
	Tool   string           `json:"tool"`
	Input  types.ToolParams `json:"input"`
	Result interface{}      `json:"result"`
}

// Result is the outcome of one agent invocation: the final reply plus the
// ordered audit trail of every tool execution, successful or not.
type Result struct {
	Reply   string     `json:"reply"`
	Actions []ToolCall `json:"actions"`
}

// Agent drives a bounded tool-calling conversation between a user message
// and the note tools. It holds no per-request state; every Run gets a fresh
// provenance scope.
type Agent struct {
	client  ChatCompleter
	model   string
	toolbox *tools.Toolbox
}

// New assembles an agent from options. A missing client or model is not an
// error here; Run reports it, so the HTTP surface can keep serving CRUD
// while the agent endpoint explains what is missing.
func New(opts ...Option) *Agent {
	a := &Agent{}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run executes one invocation: system instruction, caller history, user
// message, then up to maxToolRounds completion calls with tool dispatch in
// between. Tool results are appended to the working conversation before the
// next call, so the model sees every outcome before deciding its next move.
func (a *Agent) Run(ctx context.Context, message string, history []openai.ChatCompletionMessage) (*Result, error) {
	if a.client == nil || a.model == "" {
		return nil, fmt.Errorf("%w: set the model name and the API URL", ErrNotConfigured)
	}
	if a.toolbox == nil {
		return nil, errors.New("agent has no toolbox attached")
	}

	runID := uuid.New().String()
	state := types.NewRunState(runID)

	prompt, err := systemPrompt(a.toolbox.Definitions())
	if err != nil {
		return nil, fmt.Errorf("failed to render system prompt: %w", err)
	}

	conversation := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt},
	}
	conversation = append(conversation, history...)
	conversation = append(conversation, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	xlog.Debug("Agent run started", "run_id", runID, "history", len(history))

	actions := []ToolCall{}
	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       a.model,
			Messages:    conversation,
			Tools:       a.toolbox.ToTools(),
			Temperature: temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("model call failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("model returned no choices")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			xlog.Debug("Agent run finished", "run_id", runID, "rounds", round+1, "actions", len(actions))
			return &Result{Reply: msg.Content, Actions: actions}, nil
		}

		conversation = append(conversation, msg)
		for _, tc := range msg.ToolCalls {
			record := a.dispatch(ctx, state, tc)
			actions = append(actions, record)

			payload, err := json.Marshal(record.Result)
			if err != nil {
				payload = []byte(`{"error":"unserializable tool result"}`)
			}
			conversation = append(conversation, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(payload),
				ToolCallID: tc.ID,
			})
		}
	}

	xlog.Warn("Agent run hit the round limit", "run_id", runID, "actions", len(actions))
	return &Result{Reply: RoundLimitReply, Actions: actions}, nil
}

// dispatch contains one tool call end to end. Unknown names, malformed
// arguments and handler failures all become {"error": ...} results that are
// recorded and fed back to the model; nothing in here aborts the round.
func (a *Agent) dispatch(ctx context.Context, state *types.RunState, tc openai.ToolCall) ToolCall {
	params := types.ToolParams{}
	if err := params.Read(tc.Function.Arguments); err != nil {
		xlog.Debug("Malformed tool arguments, treating as empty", "tool", tc.Function.Name, "error", err)
		params = types.ToolParams{}
	}

	record := ToolCall{Tool: tc.Function.Name, Input: params}

	tool, ok := a.toolbox.For(types.ToolName(tc.Function.Name))
	if !ok {
		record.Result = errorResult(fmt.Sprintf("Unknown tool: %s", tc.Function.Name))
		return record
	}

	result, err := tool.Run(ctx, state, params)
	switch {
	case err != nil:
		xlog.Debug("Tool failed", "run_id", state.RunID, "tool", record.Tool, "error", err)
		record.Result = errorResult(err.Error())
	case isFalsy(result):
		record.Result = errorResult("No result")
	default:
		record.Result = result
	}
	return record
}

func errorResult(message string) map[string]string {
	return map[string]string{"error": message}
}

// isFalsy reports whether a tool produced nothing usable: no value, a false
// success flag, or an empty string.
func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	}
	return false
}
