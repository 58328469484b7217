package webui

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mudler/xlog"

	"github.com/mudler/LocalNotes/core/notes"
)

// noteID reads the :id route parameter. A value that does not parse as an
// integer cannot name a stored note, so callers treat the error as not found.
func noteID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func (app *App) ListNotes(service *notes.Service) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		collection, err := service.List()
		if err != nil {
			xlog.Error("Failed to list notes", "error", err)
			return errorJSONMessage(c, err.Error())
		}
		return c.JSON(collection)
	}
}

func (app *App) GetNote(service *notes.Service) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := noteID(c)
		if err != nil {
			return noteNotFoundJSON(c)
		}
		note, err := service.Get(id)
		if err != nil {
			if errors.Is(err, notes.ErrNotFound) {
				return noteNotFoundJSON(c)
			}
			xlog.Error("Failed to read note", "id", id, "error", err)
			return errorJSONMessage(c, err.Error())
		}
		return c.JSON(note)
	}
}

func (app *App) CreateNote(service *notes.Service) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var draft notes.Draft
		if err := c.BodyParser(&draft); err != nil {
			return badRequestJSONMessage(c, "Invalid request body")
		}
		note, err := service.Create(draft)
		if err != nil {
			xlog.Error("Failed to create note", "error", err)
			return errorJSONMessage(c, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(note)
	}
}

func (app *App) UpdateNote(service *notes.Service) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := noteID(c)
		if err != nil {
			return noteNotFoundJSON(c)
		}
		var patch notes.Patch
		if err := c.BodyParser(&patch); err != nil {
			return badRequestJSONMessage(c, "Invalid request body")
		}
		note, err := service.Update(id, patch)
		if err != nil {
			if errors.Is(err, notes.ErrNotFound) {
				return noteNotFoundJSON(c)
			}
			xlog.Error("Failed to update note", "id", id, "error", err)
			return errorJSONMessage(c, err.Error())
		}
		return c.JSON(note)
	}
}

func (app *App) DeleteNote(service *notes.Service) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := noteID(c)
		if err != nil {
			return noteNotFoundJSON(c)
		}
		if err := service.Delete(id); err != nil {
			if errors.Is(err, notes.ErrNotFound) {
				return noteNotFoundJSON(c)
			}
			xlog.Error("Failed to delete note", "id", id, "error", err)
			return errorJSONMessage(c, err.Error())
		}
		return c.JSON(struct {
			Message string `json:"message"`
		}{Message: "Note deleted successfully"})
	}
}

func (app *App) SearchNotes(service *notes.Service) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		matches, err := service.Search(c.Query("q"))
		if err != nil {
			xlog.Error("Failed to search notes", "error", err)
			return errorJSONMessage(c, err.Error())
		}
		return c.JSON(matches)
	}
}
