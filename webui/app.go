package webui

import (
	"net/http"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/mudler/LocalNotes/webui/views"
)

type App struct {
	config *Config
	*fiber.App
}

// NewApp wires the HTTP surface over the notes service and the agent.
func NewApp(opts ...Option) *App {
	config := NewConfig(opts...)
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	webapp := fiber.New(fiber.Config{
		Views: engine,
	})

	a := &App{
		config: config,
		App:    webapp,
	}

	a.registerRoutes(config.Service, config.Agent, webapp)

	return a
}

func errorJSONMessage(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusInternalServerError).JSON(struct {
		Error string `json:"error"`
	}{Error: message})
}

func badRequestJSONMessage(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(struct {
		Error string `json:"error"`
	}{Error: message})
}

func noteNotFoundJSON(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(struct {
		Error string `json:"error"`
	}{Error: "Note not found"})
}
