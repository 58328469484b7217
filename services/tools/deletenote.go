package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// NewDeleteNote returns the tool removing a note.
func NewDeleteNote(service *notes.Service) *DeleteNoteTool {
	return &DeleteNoteTool{service: service}
}

type DeleteNoteTool struct {
	service *notes.Service
}

type deleteNoteParams struct {
	ID *int64 `json:"id"`
}

// Run refuses ids the model has not seen in this run: a hallucinated id
// must not delete an unrelated note. The refusal is an ordinary tool error,
// so the model gets told to list or search first and can recover within the
// same round budget.
func (t *DeleteNoteTool) Run(ctx context.Context, state *types.RunState, params types.ToolParams) (interface{}, error) {
	var req deleteNoteParams
	if err := params.Unmarshal(&req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if req.ID == nil {
		return nil, fmt.Errorf("id is required")
	}

	if !state.Seen(*req.ID) {
		return nil, fmt.Errorf("note %d was not part of any list_notes or search_notes result in this conversation; search for the note first to confirm its id", *req.ID)
	}

	err := t.service.Delete(*req.ID)
	if errors.Is(err, notes.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return nil, err
	}
	return true, nil
}

func (t *DeleteNoteTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        DeleteNote,
		Description: "Delete a note by id and return whether a note was removed. The id must come from a list_notes or search_notes result in this conversation.",
		Properties: map[string]jsonschema.Definition{
			"id": {
				Type:        jsonschema.Number,
				Description: "Id of the note to delete, taken from an earlier list or search result",
			},
		},
		Required: []string{"id"},
	}
}
