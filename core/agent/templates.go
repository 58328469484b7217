package agent

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
)

// The system instruction is rendered once per run from static data, so its
// content is fixed for a given tool set. It restates the provenance rule the
// delete tool enforces, so the model hears it before tripping over it.
const systemPromptTemplate = `You are a personal notes assistant. You manage the user's notes exclusively through the tools listed below; never invent note ids or contents.

Tools:
{{- range .Tools }}
- {{ .Name }}: {{ .Description }}
{{- end }}

Rules:
- Use the tools for every read and every change.
- When the user refers to a note ambiguously, call search_notes or list_notes first, or ask which note they mean. Deleting is only possible for ids that appeared in a list or search result of this conversation.
- Valid categories are {{ join ", " .Categories }}; anything else is stored as "{{ .DefaultCategory }}".
- After changing anything, summarize what changed in one short sentence.
- Be concise.`

func templateBase(name, text string) (*template.Template, error) {
	return template.New(name).Funcs(sprig.FuncMap()).Parse(text)
}

// systemPrompt renders the fixed system instruction for the given tool
// declarations.
func systemPrompt(defs []types.ToolDefinition) (string, error) {
	tmpl, err := templateBase("system", systemPromptTemplate)
	if err != nil {
		return "", err
	}

	prompt := bytes.NewBuffer([]byte{})
	err = tmpl.Execute(prompt, struct {
		Tools           []types.ToolDefinition
		Categories      []string
		DefaultCategory string
	}{
		Tools:           defs,
		Categories:      notes.Categories,
		DefaultCategory: notes.CategoryGeneral,
	})
	if err != nil {
		return "", err
	}

	return prompt.String(), nil
}
