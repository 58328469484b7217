package webui

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mudler/xlog"

	"github.com/mudler/LocalNotes/core/notes"
)

type notePage struct {
	ID        int64
	Title     string
	Category  string
	Color     string
	UpdatedAt string
	Body      template.HTML
}

// renderMarkdown converts note text to HTML for the index page. Raw HTML
// embedded in a note is dropped rather than passed through; markdown is the
// only formatting surface.
func renderMarkdown(text string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse([]byte(text))

	opts := mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank | mdhtml.SkipHTML}
	renderer := mdhtml.NewRenderer(opts)

	return template.HTML(markdown.Render(doc, renderer))
}

// Index renders the notes overview page, newest first.
func (app *App) Index(service *notes.Service) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		collection, err := service.List()
		if err != nil {
			xlog.Error("Failed to list notes", "error", err)
			return errorJSONMessage(c, err.Error())
		}

		pages := make([]notePage, 0, len(collection))
		for i := len(collection) - 1; i >= 0; i-- {
			note := collection[i]
			pages = append(pages, notePage{
				ID:        note.ID,
				Title:     note.Title,
				Category:  note.Category,
				Color:     note.Color,
				UpdatedAt: note.UpdatedAt.Format("2006-01-02 15:04"),
				Body:      renderMarkdown(note.Text),
			})
		}

		return c.Render("index", fiber.Map{
			"Title": "LocalNotes",
			"Notes": pages,
		})
	}
}
