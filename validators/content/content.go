package contentValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

func NewsID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		newsID := strings.TrimSpace(c.Params("id"))
		if newsID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "News ID is required!", nil)
		}

		c.Locals("newsID", newsID)
		return c.Next()
	}
}

func News() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
			Text  string `json:"text"`
			Image string `json:"image"`
			Date  string `json:"date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNews", reqData)
		return c.Next()
	}
}

func Hero() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Subtitle string `json:"subtitle"`
			Image    string `json:"image"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedHero", reqData)
		return c.Next()
	}
}
