package userValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
)

func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Params("id"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		c.Locals("targetUserID", userID)
		return c.Next()
	}
}

func UpdateUserDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username     string `json:"username"`
			Email        string `json:"email"`
			Bio          string `json:"bio"`
			ProfileImage string `json:"profile_image"`
			Role         string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Role if provided
		if reqData.Role != "" && reqData.Role != models.RoleUser && reqData.Role != models.RoleAdmin {
			errors["role"] = "Role must be USER or ADMIN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

func Testimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text   string `json:"text"`
			Avatar string `json:"avatar"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestimonial", reqData)
		return c.Next()
	}
}
