package api

import "github.com/gofiber/fiber/v2"

func getAboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About the author",
		"body":  "Chronicle is maintained by a small group of volunteers who like long-form writing.",
	})
}

func getAboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Technologies",
		"body":  "Served by Fiber on top of a relational store, with an in-process page cache in front of the global feed.",
	})
}
