package types

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// ToolParams is the argument payload of one tool invocation, as parsed from
// the model-supplied JSON.
type ToolParams map[string]interface{}

// Read parses a JSON argument string into the params map.
func (tp ToolParams) Read(s string) error {
	err := json.Unmarshal([]byte(s), &tp)
	if err != nil {
		return err
	}
	return nil
}

func (tp ToolParams) String() string {
	b, _ := json.Marshal(tp)
	return string(b)
}

// Unmarshal re-encodes the params into a typed argument struct.
func (tp ToolParams) Unmarshal(v interface{}) error {
	b, err := json.Marshal(tp)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// ToolName identifies one of the registered tools.
type ToolName string

func (t ToolName) String() string {
	return string(t)
}

// ToolDefinition declares a tool's name, description and argument schema as
// handed to the model. additionalProperties is always false: the model may
// only supply declared arguments.
type ToolDefinition struct {
	Properties  map[string]jsonschema.Definition
	Required    []string
	Name        ToolName
	Description string
}

// ToFunctionDefinition converts the declaration to an openai function
// definition.
func (t ToolDefinition) ToFunctionDefinition() *openai.FunctionDefinition {
	properties := t.Properties
	if properties == nil {
		properties = map[string]jsonschema.Definition{}
	}
	return &openai.FunctionDefinition{
		Name:        t.Name.String(),
		Description: t.Description,
		Parameters: jsonschema.Definition{
			Type:                 jsonschema.Object,
			Properties:           properties,
			Required:             t.Required,
			AdditionalProperties: false,
		},
	}
}

// ToTool wraps the function definition as a chat-completion tool.
func (t ToolDefinition) ToTool() openai.Tool {
	return openai.Tool{
		Type:     openai.ToolTypeFunction,
		Function: t.ToFunctionDefinition(),
	}
}

// RunState is shared by every tool invocation of one agent run. It records
// which note ids have been surfaced to the model, so destructive tools can
// refuse ids the model never actually saw. A nil state fails closed, and the
// methods are safe for concurrent tool invocations.
type RunState struct {
	RunID string

	mu      sync.Mutex
	seenIDs map[int64]struct{}
}

// NewRunState returns an empty provenance scope for one run.
func NewRunState(runID string) *RunState {
	return &RunState{
		RunID:   runID,
		seenIDs: map[int64]struct{}{},
	}
}

// MarkSeen records a note id as surfaced to the model.
func (s *RunState) MarkSeen(id int64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seenIDs[id] = struct{}{}
}

// Seen reports whether the id was surfaced earlier in this run.
func (s *RunState) Seen(id int64) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seenIDs[id]
	return ok
}

// Tool is one callable operation the model may request. Run returns a
// JSON-serializable result; failures are returned as errors and contained
// by the caller, they never abort an agent round.
type Tool interface {
	Run(ctx context.Context, state *RunState, params ToolParams) (interface{}, error)
	Definition() ToolDefinition
}
