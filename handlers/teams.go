// handlers/teams.go - Team HTTP Handlers
package handlers

import (
	"strconv"

	"taskhub/middleware"
	"taskhub/services"
	"taskhub/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTeam creates a new team owned by the caller
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	var payload services.TeamPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	team, err := teamService.Create(payload, identity)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 201, fiber.Map{"team": team})
}

// GetTeam retrieves a team by ID
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	team, err := teamService.Get(uint(teamID))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"team": team})
}

// UpdateTeam updates team information (owner only)
// PUT /api/teams/:id
func UpdateTeam(c *fiber.Ctx) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	var payload services.TeamPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	team, err := teamService.Update(uint(teamID), identity, payload)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"team": team})
}
