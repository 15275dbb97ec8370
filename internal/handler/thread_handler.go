package handler

import (
	"github.com/gofiber/fiber/v2"

	"otonavi/internal/middleware"
	"otonavi/internal/service/thread"
)

type ThreadHandler struct {
	threadService thread.Service
}

func NewThreadHandler(threadService thread.Service) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// View returns the authoritative comment tree together with this visitor's
// compose state.
func (h *ThreadHandler) View(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	view, err := h.threadService.View(c.Context(), middleware.GetVisitorID(c), page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load thread")
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// ToggleReply opens or closes the reply form on a comment.
func (h *ThreadHandler) ToggleReply(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	commentID := c.Params("commentId")
	if commentID == "" {
		return middleware.BadRequest("Invalid comment ID")
	}

	state, err := h.threadService.ToggleReply(c.Context(), middleware.GetVisitorID(c), page, commentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update thread state")
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

type draftBody struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SaveDraft retains entered text so a failed submission or page reload does
// not lose it.
func (h *ThreadHandler) SaveDraft(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	var body draftBody
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	state, err := h.threadService.SaveDraft(c.Context(), middleware.GetVisitorID(c), page, body.Name, body.Content)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update thread state")
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// Submit sends the active draft through the comment service. The response
// says whether the client must refetch the thread; the new comment only
// appears through that refetch.
func (h *ThreadHandler) Submit(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	outcome, err := h.threadService.Submit(c.Context(), middleware.GetVisitorID(c), page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit comment")
	}

	return c.Status(fiber.StatusOK).JSON(outcome)
}
