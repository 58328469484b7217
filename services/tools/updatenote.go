package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// NewUpdateNote returns the tool applying a partial update.
func NewUpdateNote(service *notes.Service) *UpdateNoteTool {
	return &UpdateNoteTool{service: service}
}

type UpdateNoteTool struct {
	service *notes.Service
}

type updateNoteParams struct {
	ID       *int64  `json:"id"`
	Title    *string `json:"title"`
	Text     *string `json:"text"`
	Category *string `json:"category"`
	Color    *string `json:"color"`
}

func (t *UpdateNoteTool) Run(ctx context.Context, state *types.RunState, params types.ToolParams) (interface{}, error) {
	var req updateNoteParams
	if err := params.Unmarshal(&req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if req.ID == nil {
		return nil, fmt.Errorf("id is required")
	}

	note, err := t.service.Update(*req.ID, notes.Patch{
		Title:    req.Title,
		Text:     req.Text,
		Category: req.Category,
		Color:    req.Color,
	})
	if errors.Is(err, notes.ErrNotFound) {
		// The contract is null for an unknown id, not a failure.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	state.MarkSeen(note.ID)
	return note, nil
}

func (t *UpdateNoteTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        UpdateNote,
		Description: "Update fields of an existing note by id. Only supplied fields change; returns the full updated note, or null when the id is unknown.",
		Properties: map[string]jsonschema.Definition{
			"id": {
				Type:        jsonschema.Number,
				Description: "Id of the note to update",
			},
			"title": {
				Type:        jsonschema.String,
				Description: "New title; blank becomes \"Untitled\"",
			},
			"text": {
				Type:        jsonschema.String,
				Description: "New body text; an empty string clears the note",
			},
			"category": {
				Type:        jsonschema.String,
				Enum:        notes.Categories,
				Description: "New category; anything outside the set becomes \"general\"",
			},
			"color": {
				Type:        jsonschema.String,
				Description: "New display color",
			},
		},
		Required: []string{"id"},
	}
}
