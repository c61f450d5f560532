package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
)

func BlockID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		blockID := strings.TrimSpace(c.Params("blockId"))
		if blockID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Block ID is required!", nil)
		}

		c.Locals("blockID", blockID)
		return c.Next()
	}
}

func AddBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Kind string `json:"kind"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Kind
		switch reqData.Kind {
		case models.BlockText, models.BlockImage, models.BlockVideo:
		default:
			errors["kind"] = "Kind must be one of text, image, video!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlock", reqData)
		return c.Next()
	}
}

func UpdateBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Value *string `json:"value"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Value == nil {
			errors["value"] = "Value is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlockValue", reqData)
		return c.Next()
	}
}

func MoveBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ToIndex *int `json:"to_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ToIndex == nil {
			errors["to_index"] = "Target index is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMove", reqData)
		return c.Next()
	}
}
