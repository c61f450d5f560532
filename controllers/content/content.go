package contentController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/services/sitecontent"
	"lms/utils"
)

// Controller exposes the landing-page content (testimonials, news, hero).
type Controller struct {
	Content   *sitecontent.Service
	UploadDir string
}

func (ctrl *Controller) GetTestimonials(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully.", ctrl.Content.Testimonials())
}

func (ctrl *Controller) GetNews(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "News fetched successfully.", ctrl.Content.News())
}

func (ctrl *Controller) GetHero(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero content fetched successfully.", ctrl.Content.Hero())
}

func (ctrl *Controller) AdminDeleteTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Params("id")

	if !ctrl.Content.DeleteTestimonial(testimonialID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully.", nil)
}

func (ctrl *Controller) AdminAddNews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNews").(*struct {
		Title string `json:"title"`
		Text  string `json:"text"`
		Image string `json:"image"`
		Date  string `json:"date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	news := ctrl.Content.AddNews(models.News{
		Title: reqData.Title,
		Text:  reqData.Text,
		Image: reqData.Image,
		Date:  reqData.Date,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "News created successfully.", news)
}

func (ctrl *Controller) AdminUpdateNews(c *fiber.Ctx) error {
	newsID := c.Locals("newsID").(string)

	reqData, ok := c.Locals("validatedNews").(*struct {
		Title string `json:"title"`
		Text  string `json:"text"`
		Image string `json:"image"`
		Date  string `json:"date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated := ctrl.Content.UpdateNews(models.News{
		ID:    newsID,
		Title: reqData.Title,
		Text:  reqData.Text,
		Image: reqData.Image,
		Date:  reqData.Date,
	})
	if !updated {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News updated successfully.", nil)
}

func (ctrl *Controller) AdminDeleteNews(c *fiber.Ctx) error {
	newsID := c.Locals("newsID").(string)

	if !ctrl.Content.DeleteNews(newsID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News deleted successfully.", nil)
}

func (ctrl *Controller) AdminSetHero(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedHero").(*struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		Image    string `json:"image"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ctrl.Content.SetHero(models.HeroContent{
		Title:    reqData.Title,
		Subtitle: reqData.Subtitle,
		Image:    reqData.Image,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero content updated successfully.", nil)
}

// AdminUploadImage stores an uploaded image and returns the URL to reference
// it from course, news or hero image fields.
func (ctrl *Controller) AdminUploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, ctrl.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully.", fiber.Map{
		"url": utils.GetFileURL(filePath),
	})
}
