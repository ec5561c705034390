package handlers

import (
	"taskhub/app"
	"taskhub/models"
	"taskhub/store"

	"github.com/gofiber/fiber/v2"
)

// CreateUser registers a new user keyed by email
func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := parseBody(c, &user); err != nil {
			return badRequest(c, msgMalformedBody)
		}

		result := a.Users.Create(user)
		switch result.Kind {
		case store.KindCreated:
			return created(c, result.Value)
		case store.KindConflict:
			return conflict(c, "Usuário já existe")
		case store.KindInvalid:
			return badRequest(c, result.Err.Message)
		default:
			return serverErrorWithDetails(c, a.Logger, "Unexpected store result", fiber.NewError(fiber.StatusInternalServerError, result.Kind.String()))
		}
	}
}

// ListUsers returns every user
func ListUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, a.Users.List())
	}
}

// GetUser looks a user up by email
func GetUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := a.Users.Get(param(c, "email"))
		if !result.OK() {
			return notFound(c, "Usuário não encontrado")
		}
		return success(c, result.Value)
	}
}

// UpdateUser replaces a user, moving it when the body carries a new email
func UpdateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := param(c, "email")

		var user models.User
		if err := parseBody(c, &user); err != nil {
			return badRequest(c, msgMalformedBody)
		}

		result := a.Users.Update(email, user)
		switch result.Kind {
		case store.KindUpdated:
			return success(c, result.Value)
		case store.KindNotFound:
			return notFound(c, "Usuário não encontrado para atualização.")
		case store.KindInvalid:
			return badRequest(c, result.Err.Message)
		default:
			return serverErrorWithDetails(c, a.Logger, "Unexpected store result", fiber.NewError(fiber.StatusInternalServerError, result.Kind.String()))
		}
	}
}

// DeleteUser removes a user by email
func DeleteUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.Users.Delete(param(c, "email")) {
			return notFound(c, "Usuário não encontrado para exclusão.")
		}
		return noContent(c)
	}
}
