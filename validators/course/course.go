package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// CourseRequest is the request body for creating or replacing a course
type CourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Teacher     string  `json:"teacher"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
}

func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateCourse(reqData)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateCourse(reqData)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func validateCourse(reqData *CourseRequest) map[string]string {
	errors := make(map[string]string)

	// Validate Title
	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	} else if len(strings.TrimSpace(reqData.Title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	// Validate Description
	if strings.TrimSpace(reqData.Description) == "" {
		errors["description"] = "Description is required!"
	}

	// Validate Rating
	if reqData.Rating < 0 || reqData.Rating > 5 {
		errors["rating"] = "Rating must be between 0 and 5!"
	}

	// Validate Price
	if reqData.Price < 0 {
		errors["price"] = "Price must not be negative!"
	}

	return errors
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Percent *int `json:"percent"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Percent == nil {
			errors["percent"] = "Percent is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
