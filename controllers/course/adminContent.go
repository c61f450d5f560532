package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// AdminOpenDraft starts an edit session over the course's block list.
func (ctrl *Controller) AdminOpenDraft(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	course, found := ctrl.Catalog.CourseByID(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	draft, opened := ctrl.Drafts.Open(course)
	if !opened {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A draft is already open for this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft opened.", draft.Blocks())
}

// AdminGetDraftBlocks lists the working copy's blocks in order.
func (ctrl *Controller) AdminGetDraftBlocks(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	draft, open := ctrl.Drafts.Get(courseID)
	if !open {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No open draft for this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft blocks fetched successfully.", draft.Blocks())
}

// AdminAddDraftBlock appends a new empty block of the requested kind.
func (ctrl *Controller) AdminAddDraftBlock(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	draft, open := ctrl.Drafts.Get(courseID)
	if !open {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No open draft for this course!", nil)
	}

	reqData, ok := c.Locals("validatedBlock").(*struct {
		Kind string `json:"kind"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	block := draft.AddBlock(reqData.Kind)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Block added.", block)
}

// AdminUpdateDraftBlock replaces the value of one block in the draft.
func (ctrl *Controller) AdminUpdateDraftBlock(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	blockID := c.Locals("blockID").(string)

	draft, open := ctrl.Drafts.Get(courseID)
	if !open {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No open draft for this course!", nil)
	}

	reqData, ok := c.Locals("validatedBlockValue").(*struct {
		Value *string `json:"value"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !draft.UpdateBlockValue(blockID, *reqData.Value) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block updated.", draft.Blocks())
}

// AdminDeleteDraftBlock removes one block from the draft.
func (ctrl *Controller) AdminDeleteDraftBlock(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	blockID := c.Locals("blockID").(string)

	draft, open := ctrl.Drafts.Get(courseID)
	if !open {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No open draft for this course!", nil)
	}

	if !draft.DeleteBlock(blockID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block deleted.", draft.Blocks())
}

// AdminMoveDraftBlock reorders one block; this backs drag-and-drop in the
// course author UI.
func (ctrl *Controller) AdminMoveDraftBlock(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	blockID := c.Locals("blockID").(string)

	draft, open := ctrl.Drafts.Get(courseID)
	if !open {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No open draft for this course!", nil)
	}

	reqData, ok := c.Locals("validatedMove").(*struct {
		ToIndex *int `json:"to_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !draft.MoveBlock(blockID, *reqData.ToIndex) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block moved.", draft.Blocks())
}

// AdminCommitDraft saves the working copy back into the catalog and ends the
// edit session.
func (ctrl *Controller) AdminCommitDraft(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	draft, open := ctrl.Drafts.Get(courseID)
	if !open {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No open draft for this course!", nil)
	}

	course := draft.Commit()
	ctrl.Drafts.Close(courseID)

	if !ctrl.Catalog.UpdateCourse(course) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course no longer exists!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft committed.", course)
}

// AdminDiscardDraft abandons the working copy; the stored course is
// unaffected.
func (ctrl *Controller) AdminDiscardDraft(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	if _, open := ctrl.Drafts.Get(courseID); !open {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No open draft for this course!", nil)
	}

	ctrl.Drafts.Close(courseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft discarded.", nil)
}
