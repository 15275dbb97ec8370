package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"otonavi/internal/domain"
	"otonavi/internal/middleware"
	"otonavi/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func pageParam(c *fiber.Ctx) (string, error) {
	page, err := url.PathUnescape(c.Params("page"))
	if err != nil || page == "" {
		return "", middleware.BadRequest("Invalid page ID")
	}
	return page, nil
}

// List returns the flat comment list for a page. A read failure degrades to
// an empty list plus a soft error so the page still renders.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	result := h.commentService.ListByPage(c.Context(), page)
	return c.Status(fiber.StatusOK).JSON(result)
}

// ListTree returns the nested comment tree, rebuilt from the flat list on
// every read.
func (h *CommentHandler) ListTree(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	result := h.commentService.ListTree(c.Context(), page)
	return c.Status(fiber.StatusOK).JSON(result)
}

type createCommentBody struct {
	Content  string `json:"content"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// Create submits a comment. The response body carries exactly one of
// success/error; validation failures are data, not HTTP errors.
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	var body createCommentBody
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result := h.commentService.Add(c.Context(), domain.AddCommentInput{
		Content:  body.Content,
		Page:     page,
		Name:     body.Name,
		ParentID: body.ParentID,
	})

	return c.Status(fiber.StatusOK).JSON(result)
}
