package tools

import (
	"context"
	"fmt"

	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// NewSearchNotes returns the tool filtering notes by substring.
func NewSearchNotes(service *notes.Service) *SearchNotesTool {
	return &SearchNotesTool{service: service}
}

type SearchNotesTool struct {
	service *notes.Service
}

type searchNotesParams struct {
	Query string `json:"query"`
}

func (t *SearchNotesTool) Run(ctx context.Context, state *types.RunState, params types.ToolParams) (interface{}, error) {
	var req searchNotesParams
	if err := params.Unmarshal(&req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	collection, err := t.service.Search(req.Query)
	if err != nil {
		return nil, err
	}
	return previews(state, collection), nil
}

func (t *SearchNotesTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        SearchNotes,
		Description: "Search notes by a case-insensitive substring matched against titles and text. An empty query returns every note.",
		Properties: map[string]jsonschema.Definition{
			"query": {
				Type:        jsonschema.String,
				Description: "Substring to look for in note titles and text",
			},
		},
		Required: []string{"query"},
	}
}
