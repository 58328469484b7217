package agent

import "github.com/mudler/LocalNotes/services/tools"

type Option func(*Agent)

// WithClient sets the chat-completion backend.
func WithClient(client ChatCompleter) Option {
	return func(a *Agent) {
		a.client = client
	}
}

// WithModel sets the model name used on every completion call.
func WithModel(model string) Option {
	return func(a *Agent) {
		a.model = model
	}
}

// WithToolbox sets the closed tool registry the agent dispatches against.
func WithToolbox(toolbox *tools.Toolbox) Option {
	return func(a *Agent) {
		a.toolbox = toolbox
	}
}
