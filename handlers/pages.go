package handlers

import (
	"strings"
	"tierra-media/app"
	"tierra-media/templates/pages"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

func renderPage(c *fiber.Ctx, component templ.Component) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Context(), c.Response().BodyWriter())
}

// HomePage lists every race and profession with its count
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := a.InhabitantService.Summary()
		if err != nil {
			return err
		}
		return renderPage(c, pages.Index(summary))
	}
}

// RaceListPage renders the inhabitants of the race given in ?raza=
func RaceListPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		race := c.Query("raza")
		a.Logger.Debug("race list requested", "race", race)

		inhabitants, err := a.InhabitantService.ListByRace(race)
		if err != nil {
			return err
		}
		return renderPage(c, pages.InhabitantList(pages.RaceLabel(race), inhabitants, "/"))
	}
}

// ProfessionListPage renders the inhabitants of the profession given in ?profesion=
func ProfessionListPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profession := c.Query("profesion")
		a.Logger.Debug("profession list requested", "profession", profession)

		inhabitants, err := a.InhabitantService.ListByProfession(profession)
		if err != nil {
			return err
		}
		return renderPage(c, pages.InhabitantList(pages.ProfessionLabel(profession), inhabitants, "/"))
	}
}

// RateLimited answers a request refused by the rate limiter: JSON under
// /api, an HTML notice for screens.
func RateLimited(c *fiber.Ctx) error {
	c.Status(fiber.StatusTooManyRequests)
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.JSON(fiber.Map{"error": "Rate limit exceeded"})
	}
	return renderPage(c, pages.Notice("Demasiadas peticiones", "Espera un minuto y vuelve a intentarlo."))
}
