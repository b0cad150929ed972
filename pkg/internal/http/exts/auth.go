package exts

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/veladine/chronicle/pkg/internal/models"
)

// RedirectError carries a redirect through the handler error path, so
// guards can short-circuit a handler the same way fiber.NewError does.
// The app-level error handler turns it into the actual response.
type RedirectError struct {
	Location string
	Status   int
}

func (e *RedirectError) Error() string {
	return "redirect to " + e.Location
}

func NewRedirect(location string, status ...int) *RedirectError {
	code := fiber.StatusSeeOther
	if len(status) > 0 {
		code = status[0]
	}
	return &RedirectError{Location: location, Status: code}
}

// EnsureAuthenticated sends anonymous requests to the login flow with the
// original target encoded, and lets authenticated ones pass.
func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return NewRedirect(
			"/auth/login?next="+url.QueryEscape(c.OriginalURL()),
			fiber.StatusFound,
		)
	}
	return nil
}
