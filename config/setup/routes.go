package setup

import (
	"tierra-media/app"
	"tierra-media/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Screens
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Get("/razas", handlers.RaceListPage(application))
	fiberApp.Get("/profesiones", handlers.ProfessionListPage(application))
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api/inhabitants")

	// Static segments first so they are not captured by /:id
	api.Get("/count", handlers.CountInhabitants(application))
	api.Get("/race/:race", handlers.ListByRace(application))
	api.Get("/profession/:profession", handlers.ListByProfession(application))

	api.Post("/", handlers.CreateInhabitant(application))
	api.Get("/:id", handlers.GetInhabitant(application))
	api.Put("/:id", handlers.UpdateInhabitant(application))
	api.Delete("/:id", handlers.DeleteInhabitant(application))
}
