package handlers

import (
	"taskhub/app"
	"taskhub/models"
	"taskhub/store"

	"github.com/gofiber/fiber/v2"
)

// CreateTask stores a task, assigning an id when the body has none
func CreateTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var task models.Task
		if err := parseBody(c, &task); err != nil {
			return badRequest(c, msgMalformedBody)
		}

		result := a.Tasks.Create(task)
		switch result.Kind {
		case store.KindCreated:
			return created(c, result.Value)
		case store.KindInvalid:
			return badRequest(c, result.Err.Message)
		default:
			return serverErrorWithDetails(c, a.Logger, "Unexpected store result", fiber.NewError(fiber.StatusInternalServerError, result.Kind.String()))
		}
	}
}

// ListTasks returns every task ordered by id
func ListTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, a.Tasks.List())
	}
}

// GetTask looks a task up by id
func GetTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, msgInvalidID)
		}

		result := a.Tasks.Get(id)
		if !result.OK() {
			return notFound(c, "Tarefa não encontrada")
		}
		return success(c, result.Value)
	}
}

// UpdateTask replaces the task stored under the path id
func UpdateTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, msgInvalidID)
		}

		var task models.Task
		if err := parseBody(c, &task); err != nil {
			return badRequest(c, msgMalformedBody)
		}

		result := a.Tasks.Update(id, task)
		switch result.Kind {
		case store.KindUpdated:
			return success(c, result.Value)
		case store.KindNotFound:
			return notFound(c, "Tarefa não encontrada para atualização.")
		case store.KindInvalid:
			return badRequest(c, result.Err.Message)
		default:
			return serverErrorWithDetails(c, a.Logger, "Unexpected store result", fiber.NewError(fiber.StatusInternalServerError, result.Kind.String()))
		}
	}
}

// DeleteTask removes a task by id
func DeleteTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, msgInvalidID)
		}

		if !a.Tasks.Delete(id) {
			return notFound(c, "Tarefa não encontrada para exclusão.")
		}
		return noContent(c)
	}
}
