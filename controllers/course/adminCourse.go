package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
)

// AdminCreateCourse adds a new course to the catalog with empty content.
func (ctrl *Controller) AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := ctrl.Catalog.AddCourse(models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		Image:       reqData.Image,
		Teacher:     reqData.Teacher,
		Duration:    reqData.Duration,
		Rating:      reqData.Rating,
		Price:       reqData.Price,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse replaces the course's scalar fields. Content is edited
// through the draft endpoints and is preserved here.
func (ctrl *Controller) AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	course, found := ctrl.Catalog.CourseByID(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.Image = reqData.Image
	course.Teacher = reqData.Teacher
	course.Duration = reqData.Duration
	course.Rating = reqData.Rating
	course.Price = reqData.Price

	if !ctrl.Catalog.UpdateCourse(course) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course from the catalog.
func (ctrl *Controller) AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	if !ctrl.Catalog.DeleteCourse(courseID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
