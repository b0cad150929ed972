package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/veladine/chronicle/pkg/internal"
	"github.com/veladine/chronicle/pkg/internal/http/admin"
	"github.com/veladine/chronicle/pkg/internal/http/api"
	"github.com/veladine/chronicle/pkg/internal/http/exts"
	"github.com/veladine/chronicle/pkg/internal/services"
)

type Server struct {
	app *fiber.App
}

func NewServer() *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Chronicle",
		AppName:               "Chronicle v" + pkg.AppVersion,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var redirect *exts.RedirectError
			if errors.As(err, &redirect) {
				return c.Redirect(redirect.Location, redirect.Status)
			}

			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(sessionMiddleware)

	admin.MapControllers(app, "/api/admin")
	api.MapControllers(app, "")

	// Anything unrouted is a plain not-found page.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	})

	return &Server{app}
}

// App exposes the underlying fiber instance for in-process testing.
func (v *Server) App() *fiber.App {
	return v.app
}

func (v *Server) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

// sessionMiddleware resolves the viewer from the bearer header or the
// session cookie. Anonymous requests pass through; guarded handlers
// decide on their own via exts.EnsureAuthenticated.
func sessionMiddleware(c *fiber.Ctx) error {
	token := c.Cookies("session")
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	}

	if len(token) > 0 {
		if user, err := services.RetrieveSessionToken(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}
