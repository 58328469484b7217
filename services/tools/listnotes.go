package tools

import (
	"context"
	"time"

	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/mudler/LocalNotes/pkg/xstrings"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// PreviewLength is the character budget for note text in tool projections.
// Full text stays out of the model context; the model can fetch it through
// update/create results when it needs to.
const PreviewLength = 160

// NotePreview is the compact projection returned by list_notes and
// search_notes.
type NotePreview struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	UpdatedAt time.Time `json:"updatedAt"`
	Preview   string    `json:"preview"`
}

// previews projects the collection and marks every projected id as seen in
// the run state, which is what later entitles the model to delete it.
func previews(state *types.RunState, collection []*notes.Note) []NotePreview {
	out := make([]NotePreview, 0, len(collection))
	for _, n := range collection {
		state.MarkSeen(n.ID)
		out = append(out, NotePreview{
			ID:        n.ID,
			Title:     n.Title,
			Category:  n.Category,
			UpdatedAt: n.UpdatedAt,
			Preview:   xstrings.Truncate(n.Text, PreviewLength),
		})
	}
	return out
}

// NewListNotes returns the tool listing every note.
func NewListNotes(service *notes.Service) *ListNotesTool {
	return &ListNotesTool{service: service}
}

type ListNotesTool struct {
	service *notes.Service
}

func (t *ListNotesTool) Run(ctx context.Context, state *types.RunState, params types.ToolParams) (interface{}, error) {
	collection, err := t.service.List()
	if err != nil {
		return nil, err
	}
	return previews(state, collection), nil
}

func (t *ListNotesTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        ListNotes,
		Description: "List every note with its id, title, category, last update time and a short text preview.",
		Properties:  map[string]jsonschema.Definition{},
	}
}
