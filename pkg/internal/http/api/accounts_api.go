package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/veladine/chronicle/pkg/internal/http/exts"
	"github.com/veladine/chronicle/pkg/internal/services"
)

func getLogin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"next": c.Query("next", "/"),
	})
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.AuthenticateAccount(data.Name, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	token, err := services.IssueSessionToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func doSignup(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required,lowercase,alphanum,min=2,max=32"`
		Nick     string `json:"nick" form:"nick"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewAccount(data.Name, data.Nick, data.Email, data.Password); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
