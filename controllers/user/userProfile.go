package userController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/services/identity"
	"lms/services/sitecontent"
	"lms/services/views"
)

// Controller exposes the current user's profile and derived views.
type Controller struct {
	Identity *identity.Service
	Views    *views.Service
	Content  *sitecontent.Service
}

func (ctrl *Controller) GetProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user.Sanitized())
}

func (ctrl *Controller) UpdateProfile(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProfile").(*struct {
		Username     string `json:"username"`
		Bio          string `json:"bio"`
		ProfileImage string `json:"profile_image"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated := ctrl.Identity.UpdateProfile(identity.ProfileUpdate{
		Username:     reqData.Username,
		Bio:          reqData.Bio,
		ProfileImage: reqData.ProfileImage,
	})
	if !updated {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not signed in!", nil)
	}

	user := ctrl.Identity.Current()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user.Sanitized())
}

func (ctrl *Controller) ChangePassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChangePassword").(*struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		CnfPassword     string `json:"cnfPassword"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !ctrl.Identity.ChangePassword(reqData.CurrentPassword, reqData.NewPassword) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully.", nil)
}

func (ctrl *Controller) GetEnrollments(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", ctrl.Views.MyEnrollments())
}

func (ctrl *Controller) GetProgress(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", ctrl.Views.MyProgress())
}

func (ctrl *Controller) GetTestimonial(c *fiber.Ctx) error {
	testimonial, found := ctrl.Views.MyTestimonial()
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No testimonial yet!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial fetched successfully.", testimonial)
}

func (ctrl *Controller) UpsertTestimonial(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTestimonial").(*struct {
		Text   string `json:"text"`
		Avatar string `json:"avatar"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	testimonial := ctrl.Content.UpsertTestimonial(models.Testimonial{
		UserID: user.ID,
		Author: user.Username,
		Text:   reqData.Text,
		Avatar: reqData.Avatar,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial saved successfully.", testimonial)
}
