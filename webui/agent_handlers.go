package webui

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mudler/xlog"

	"github.com/mudler/LocalNotes/core/agent"
)

// Agent hands a chat message to the tool-calling loop and returns the final
// reply together with the trail of tool invocations it made.
func (app *App) Agent(notesAgent *agent.Agent) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var payload struct {
			Message interface{}   `json:"message"`
			History []interface{} `json:"history"`
		}
		if err := c.BodyParser(&payload); err != nil {
			return badRequestJSONMessage(c, "Message is required")
		}

		message, ok := payload.Message.(string)
		if !ok || message == "" {
			return badRequestJSONMessage(c, "Message is required")
		}

		result, err := notesAgent.Run(c.Context(), message, agent.SanitizeHistory(payload.History))
		if err != nil {
			xlog.Error("Agent run failed", "error", err)
			return errorJSONMessage(c, err.Error())
		}
		return c.JSON(result)
	}
}
