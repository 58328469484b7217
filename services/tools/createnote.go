package tools

import (
	"context"
	"fmt"

	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// NewCreateNote returns the tool creating a note.
func NewCreateNote(service *notes.Service) *CreateNoteTool {
	return &CreateNoteTool{service: service}
}

type CreateNoteTool struct {
	service *notes.Service
}

type createNoteParams struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

func (t *CreateNoteTool) Run(ctx context.Context, state *types.RunState, params types.ToolParams) (interface{}, error) {
	var req createNoteParams
	if err := params.Unmarshal(&req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	note, err := t.service.Create(notes.Draft{
		Title:    req.Title,
		Text:     req.Text,
		Category: req.Category,
		Color:    req.Color,
	})
	if err != nil {
		return nil, err
	}
	state.MarkSeen(note.ID)
	return note, nil
}

func (t *CreateNoteTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        CreateNote,
		Description: "Create a new note. Every field is optional; missing fields get defaults and the full new note is returned.",
		Properties: map[string]jsonschema.Definition{
			"title": {
				Type:        jsonschema.String,
				Description: "Note title; blank becomes \"Untitled\"",
			},
			"text": {
				Type:        jsonschema.String,
				Description: "Note body text",
			},
			"category": {
				Type:        jsonschema.String,
				Enum:        notes.Categories,
				Description: "Note category; anything outside the set becomes \"general\"",
			},
			"color": {
				Type:        jsonschema.String,
				Description: "Display color, e.g. \"#ffcc00\"",
			},
		},
	}
}
