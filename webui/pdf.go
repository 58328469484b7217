package webui

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
	"github.com/mudler/xlog"

	"github.com/mudler/LocalNotes/core/notes"
)

// ExportNotePDF renders a single note as a downloadable PDF document.
func (app *App) ExportNotePDF(service *notes.Service) func(c *fiber.Ctx) error {
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

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.MultiCell(0, 10, note.Title, "", "", false)

		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 6, fmt.Sprintf("Category: %s. Last updated %s.", note.Category, note.UpdatedAt.Format("2006-01-02 15:04 MST")), "", "", false)
		pdf.Ln(5)

		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 10, note.Text, "", "", false)

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			xlog.Error("Failed to render PDF", "id", id, "error", err)
			return errorJSONMessage(c, err.Error())
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="note-%d.pdf"`, note.ID))
		return c.Send(buf.Bytes())
	}
}
