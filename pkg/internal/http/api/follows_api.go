package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/veladine/chronicle/pkg/internal/http/exts"
	"github.com/veladine/chronicle/pkg/internal/models"
	"github.com/veladine/chronicle/pkg/internal/services"
)

func followAuthor(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.FollowAccount(user, author); err != nil {
		if errors.Is(err, services.ErrSelfFollow) {
			// No edge is created; the viewer lands back on the profile.
			return c.Redirect("/profile/"+author.Name, fiber.StatusSeeOther)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/follow", fiber.StatusSeeOther)
}

func unfollowAuthor(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/follow", fiber.StatusSeeOther)
}
