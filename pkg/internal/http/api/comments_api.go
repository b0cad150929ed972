package api

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/http/exts"
	"github.com/veladine/chronicle/pkg/internal/models"
	"github.com/veladine/chronicle/pkg/internal/services"
)

type CommentForm struct {
	Text string `json:"text" form:"text" validate:"required"`
}

func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	var data CommentForm
	if err := exts.BindForm(c, &data); err != nil {
		return err
	}

	// Invalid comments are dropped silently; the redirect back to the
	// detail page happens either way.
	if errs := exts.ValidateForm(data); errs == nil {
		if _, err := services.NewComment(user, item, data.Text); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	return c.Redirect("/posts/"+strconv.Itoa(int(item.ID)), fiber.StatusSeeOther)
}
