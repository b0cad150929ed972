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

// PostForm is the submission shape for creating and editing a post. The
// group must come from the enumerated set of existing groups; any author
// field in the payload is ignored in favor of the session.
type PostForm struct {
	Text        string   `json:"text" form:"text" validate:"required"`
	Group       *uint    `json:"group" form:"group"`
	Attachments []string `json:"attachments" form:"attachments"`
}

func validatePostForm(data PostForm) map[string]string {
	errs := exts.ValidateForm(data)
	if data.Group != nil {
		if _, err := services.GetGroupWithID(*data.Group); err != nil {
			if errs == nil {
				errs = map[string]string{}
			}
			errs["group"] = "select a valid choice, that choice is not one of the available choices"
		}
	}
	return errs
}

func getPostForm(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	groups, err := services.ListGroup(100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"form":   PostForm{},
		"groups": groups,
	})
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data PostForm
	if err := exts.BindForm(c, &data); err != nil {
		return err
	}

	if errs := validatePostForm(data); errs != nil {
		return c.JSON(fiber.Map{
			"form":   data,
			"errors": errs,
		})
	}

	item := models.Post{
		Text:        data.Text,
		GroupID:     data.Group,
		Attachments: data.Attachments,
	}

	if _, err := services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/profile/"+user.Name, fiber.StatusSeeOther)
}

func getPostDetail(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	comments, err := services.ListCommentOnPost(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := fiber.Map{
		"post":     item,
		"preview":  services.TruncatePostPreview(item),
		"author":   item.Author,
		"post_sum": services.CountPostForAuthor(item.AuthorID),
		"comments": comments,
	}

	// Only authenticated viewers get a comment form to bind.
	if _, authenticated := c.Locals("user").(models.Account); authenticated {
		out["form"] = CommentForm{}
	}

	return c.JSON(out)
}

func getPostEditForm(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	if item.AuthorID != user.ID {
		return c.Redirect("/posts/"+strconv.Itoa(int(item.ID)), fiber.StatusSeeOther)
	}

	groups, err := services.ListGroup(100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"form": PostForm{
			Text:        item.Text,
			Group:       item.GroupID,
			Attachments: item.Attachments,
		},
		"groups":  groups,
		"is_edit": true,
	})
}

func editPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	// Non-authors are sent back to the detail page with no error
	// surfaced. Verbatim product behavior, do not tighten it here.
	if item.AuthorID != user.ID {
		return c.Redirect("/posts/"+strconv.Itoa(int(item.ID)), fiber.StatusSeeOther)
	}

	var data PostForm
	if err := exts.BindForm(c, &data); err != nil {
		return err
	}

	if errs := validatePostForm(data); errs != nil {
		return c.JSON(fiber.Map{
			"form":    data,
			"errors":  errs,
			"is_edit": true,
		})
	}

	if _, err := services.EditPost(item, data.Text, data.Group, data.Attachments); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/posts/"+strconv.Itoa(int(item.ID)), fiber.StatusSeeOther)
}

func deletePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	if item.AuthorID != user.ID {
		return c.Redirect("/posts/"+strconv.Itoa(int(item.ID)), fiber.StatusSeeOther)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/profile/"+user.Name, fiber.StatusSeeOther)
}
