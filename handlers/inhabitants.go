package handlers

import (
	"errors"
	"tierra-media/app"
	"tierra-media/models"
	"tierra-media/services"

	"github.com/gofiber/fiber/v2"
)

// CountInhabitants returns the total, or the count for ?race= when given
func CountInhabitants(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			n   int
			err error
		)

		if race := c.Query("race"); race != "" {
			n, err = a.InhabitantService.CountByRace(race)
		} else {
			n, err = a.InhabitantService.Count()
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to count inhabitants", err)
		}

		return success(c, fiber.Map{"count": n})
	}
}

// ListByRace returns inhabitants of one race, newest first
func ListByRace(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inhabitants, err := a.InhabitantService.ListByRace(c.Params("race"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list inhabitants", err)
		}
		return success(c, fiber.Map{"inhabitants": inhabitants})
	}
}

// ListByProfession returns inhabitants of one profession, newest first
func ListByProfession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inhabitants, err := a.InhabitantService.ListByProfession(c.Params("profession"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list inhabitants", err)
		}
		return success(c, fiber.Map{"inhabitants": inhabitants})
	}
}

func GetInhabitant(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		h, err := a.InhabitantService.Get(id)
		if err != nil {
			if errors.Is(err, services.ErrInhabitantNotFound) {
				return notFound(c, "Inhabitant not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch inhabitant", err)
		}

		return success(c, fiber.Map{"inhabitant": h})
	}
}

func CreateInhabitant(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.InhabitantRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		h, err := a.InhabitantService.Create(req.ToInhabitant())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create inhabitant", err)
		}

		return created(c, fiber.Map{"inhabitant": h})
	}
}

// UpdateInhabitant overwrites every field. Unknown IDs succeed without
// changing anything.
func UpdateInhabitant(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		var req models.InhabitantRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.InhabitantService.Update(id, req.ToInhabitant()); err != nil {
			return serverErrorWithDetails(c, "Failed to update inhabitant", err)
		}

		return success(c, fiber.Map{"message": "Inhabitant updated successfully"})
	}
}

func DeleteInhabitant(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		n, err := a.InhabitantService.Delete(id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete inhabitant", err)
		}

		return success(c, fiber.Map{"deleted": n})
	}
}
