package webui

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/mudler/LocalNotes/core/agent"
	"github.com/mudler/LocalNotes/core/notes"
)

func (a *App) registerRoutes(service *notes.Service, notesAgent *agent.Agent, webapp *fiber.App) {
	webapp.Get("/", a.Index(service))

	webapp.Get("/api/notes", a.ListNotes(service))
	webapp.Post("/api/notes", a.CreateNote(service))
	webapp.Get("/api/notes/:id", a.GetNote(service))
	webapp.Put("/api/notes/:id", a.UpdateNote(service))
	webapp.Delete("/api/notes/:id", a.DeleteNote(service))
	webapp.Get("/api/notes/:id/pdf", a.ExportNotePDF(service))

	webapp.Get("/api/search", a.SearchNotes(service))

	webapp.Post("/api/agent", a.Agent(notesAgent))
}
