package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/veladine/chronicle/pkg/internal/http/exts"
	"github.com/veladine/chronicle/pkg/internal/models"
	"github.com/veladine/chronicle/pkg/internal/services"
)

func getGlobalFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	// Served out of the shared page cache; the payload carries no
	// viewer-specific state so it is safe across sessions.
	feed, err := services.GetCachedGlobalFeed(page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(feed)
}

func getGroupFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
	}

	feed, err := services.GetGroupFeed(group, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"feed":  feed,
	})
}

func getProfileFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var viewer *models.Account
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		viewer = &user
	}

	feed, err := services.GetAuthorFeed(author, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"author":       author,
		"post_sum":     services.CountPostForAuthor(author.ID),
		"follower_sum": services.CountFollower(author),
		"following":    services.IsAccountFollowing(viewer, author),
		"feed":         feed,
	})
}

func getFollowedFeed(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	page := c.QueryInt("page", 1)

	feed, err := services.GetFollowedFeed(user, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(feed)
}
