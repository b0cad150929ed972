package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/veladine/chronicle/pkg/internal/http/exts"
	"github.com/veladine/chronicle/pkg/internal/models"
	"github.com/veladine/chronicle/pkg/internal/services"
)

// Groups are created administratively; the allowlist in config decides
// who counts as an operator.
func ensureOperator(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	operators := viper.GetStringSlice("security.operators")
	if !lo.Contains(operators, user.Name) {
		return fiber.NewError(fiber.StatusForbidden, "operator access required")
	}

	return nil
}

func createGroup(c *fiber.Ctx) error {
	if err := ensureOperator(c); err != nil {
		return err
	}

	var data struct {
		Slug        string `json:"slug" form:"slug" validate:"required,lowercase"`
		Title       string `json:"title" form:"title" validate:"required"`
		Description string `json:"description" form:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func editGroup(c *fiber.Ctx) error {
	if err := ensureOperator(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
	}

	var data struct {
		Slug        string `json:"slug" form:"slug" validate:"required,lowercase"`
		Title       string `json:"title" form:"title" validate:"required"`
		Description string `json:"description" form:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err = services.EditGroup(group, data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func deleteGroup(c *fiber.Ctx) error {
	if err := ensureOperator(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func flushFeedCache(c *fiber.Ctx) error {
	if err := ensureOperator(c); err != nil {
		return err
	}

	services.FlushGlobalFeedCache()
	return c.SendStatus(fiber.StatusOK)
}
