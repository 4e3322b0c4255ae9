package handler

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/KittyCore/portfolio/internal/db/controller"
)

var (
	validate     *validator.Validate //nolint:gochecknoglobals
	validateOnce sync.Once           //nolint:gochecknoglobals
)

// Validate checks the validate tags of form.
func Validate(form any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate.Struct(form)
}

// ParseForm parses the request body into form and validates it.
func ParseForm(c *fiber.Ctx, form any) error {
	if err := c.BodyParser(form); err != nil {
		return err
	}

	return Validate(form)
}

// ParamID returns the positive :id route parameter.
func ParamID(c *fiber.Ctx) (uint64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, controller.ErrInvalidID
	}

	return uint64(id), nil
}
