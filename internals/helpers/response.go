package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"universe_backend/internals/configs"
)

// Success envelope: {message, ...payload}
func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func JsonWith(c *fiber.Ctx, status int, message string, payload fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// Failure envelope: {message} for expected errors,
// {message, path, error} for unexpected ones.
func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func JsonServerError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server error",
		"path":    c.OriginalURL(),
		"error":   err.Error(),
	})
}

// ErrorHandler is the app-wide fiber error handler. Known *fiber.Error
// values keep their status; anything else becomes a 500 with the path
// echoed back (stack suppressed outside development).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	if configs.IsProduction() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return JsonServerError(c, err)
}

// ValidationMessage renders the first failing field of a validator.v10
// error the way the API reports validation problems.
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "Invalid input"
	}
	fe := ve[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		return fmt.Sprintf("%q must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%q must be exactly %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	case "url", "uri":
		return fmt.Sprintf("%q must be a valid URL", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
