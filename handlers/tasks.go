// handlers/tasks.go - Task HTTP Handlers
package handlers

import (
	"strconv"

	"taskhub/middleware"
	"taskhub/services"
	"taskhub/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTask creates a new task
// POST /api/tasks
func CreateTask(c *fiber.Ctx) error {
	var payload services.TaskPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	task, err := taskService.Create(payload)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 201, fiber.Map{"task": task})
}

// GetTask retrieves a task by ID
// GET /api/tasks/:id
func GetTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task ID"})
	}

	task, err := taskService.Get(uint(taskID))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"task": task})
}

// ListTasks retrieves all tasks, optionally filtered by status
// GET /api/tasks?status=open
func ListTasks(c *fiber.Ctx) error {
	tasks, err := taskService.List(c.Query("status"))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"tasks": tasks, "count": len(tasks)})
}

// SearchTasks searches tasks by title or description
// GET /api/tasks/search?q=text
func SearchTasks(c *fiber.Ctx) error {
	tasks, err := taskService.Search(c.Query("q"))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"tasks": tasks, "count": len(tasks)})
}

// ListMyTasks retrieves tasks assigned to the authenticated user
// GET /api/tasks/assigned
func ListMyTasks(c *fiber.Ctx) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	tasks, err := taskService.ListAssignedToSelf(identity)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"tasks": tasks, "count": len(tasks)})
}

// ListAssignedTasks retrieves tasks assigned to a given user
// GET /api/tasks/assigned/:userId
func ListAssignedTasks(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user ID"})
	}

	tasks, err := taskService.ListAssignedTo(uint(userID))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"tasks": tasks, "count": len(tasks)})
}

// UpdateTask updates a task; empty fields keep their stored value
// PUT /api/tasks/:id
func UpdateTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task ID"})
	}

	var payload services.TaskPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	task, err := taskService.Update(uint(taskID), payload)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"task": task})
}

// DeleteTask removes a task and its comments
// DELETE /api/tasks/:id
func DeleteTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task ID"})
	}

	task, err := taskService.Delete(uint(taskID))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"task": task})
}

// AssignTask assigns a task to a user
// POST /api/tasks/:id/assign
func AssignTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task ID"})
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.UserID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "User ID is required"})
	}

	task, err := taskService.Assign(uint(taskID), req.UserID)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"task": task})
}

// CompleteTask closes a task; closing a closed task is a no-op
// POST /api/tasks/:id/complete
func CompleteTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task ID"})
	}

	task, err := taskService.Complete(uint(taskID))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 200, fiber.Map{"task": task})
}

// AddComment appends a comment to a task
// POST /api/tasks/:id/comments
func AddComment(c *fiber.Ctx) error {
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task ID"})
	}

	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	task, err := taskService.AddComment(uint(taskID), identity, req.Text)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Success(c, 201, fiber.Map{"task": task})
}
