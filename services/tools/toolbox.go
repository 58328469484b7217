package tools

import (
	"fmt"

	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/sashabaranov/go-openai"
)

// The closed tool set. Adding or removing a tool is one change here plus a
// case in build below; nothing is registered dynamically.
const (
	ListNotes   types.ToolName = "list_notes"
	SearchNotes types.ToolName = "search_notes"
	CreateNote  types.ToolName = "create_note"
	UpdateNote  types.ToolName = "update_note"
	DeleteNote  types.ToolName = "delete_note"
)

// All enumerates the tool set in the order presented to the model.
var All = []types.ToolName{ListNotes, SearchNotes, CreateNote, UpdateNote, DeleteNote}

// Toolbox is the closed registry mapping each enumerated name to its schema
// and handler. It is the single source of truth for what the model may call;
// execution authority stays entirely server-side.
type Toolbox struct {
	service *notes.Service
	tools   map[types.ToolName]types.Tool
}

// New builds the registry over the given service. Every name in All is
// resolved eagerly, so an enum entry without an implementation fails at
// construction rather than as a silent unknown tool at dispatch.
func New(service *notes.Service) *Toolbox {
	tb := &Toolbox{
		service: service,
		tools:   make(map[types.ToolName]types.Tool, len(All)),
	}
	for _, name := range All {
		tb.tools[name] = tb.build(name)
	}
	return tb
}

// build is the single dispatch point from name to implementation.
func (tb *Toolbox) build(name types.ToolName) types.Tool {
	switch name {
	case ListNotes:
		return NewListNotes(tb.service)
	case SearchNotes:
		return NewSearchNotes(tb.service)
	case CreateNote:
		return NewCreateNote(tb.service)
	case UpdateNote:
		return NewUpdateNote(tb.service)
	case DeleteNote:
		return NewDeleteNote(tb.service)
	}
	panic(fmt.Sprintf("no implementation for tool %q", name))
}

// For resolves a model-requested name against the registry.
func (tb *Toolbox) For(name types.ToolName) (types.Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Definitions returns every tool declaration in registry order.
func (tb *Toolbox) Definitions() []types.ToolDefinition {
	defs := make([]types.ToolDefinition, 0, len(All))
	for _, name := range All {
		defs = append(defs, tb.tools[name].Definition())
	}
	return defs
}

// ToTools converts the registry to the chat-completion tool set.
func (tb *Toolbox) ToTools() []openai.Tool {
	out := make([]openai.Tool, 0, len(All))
	for _, d := range tb.Definitions() {
		out = append(out, d.ToTool())
	}
	return out
}
