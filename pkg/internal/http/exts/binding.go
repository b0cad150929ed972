package exts

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err := validation.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}

// BindForm parses the body without validating, so callers can surface
// field-level messages instead of failing the request.
func BindForm(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ValidateForm returns per-field messages, keyed by the lowercased field
// name, or nil when the value passes.
func ValidateForm(data any) map[string]string {
	err := validation.Struct(data)
	if err == nil {
		return nil
	}

	out := map[string]string{}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, item := range fieldErrors {
			switch item.Tag() {
			case "required":
				out[strings.ToLower(item.Field())] = "this field is required"
			default:
				out[strings.ToLower(item.Field())] = "this field is invalid"
			}
		}
	} else {
		out["__all__"] = err.Error()
	}

	return out
}
