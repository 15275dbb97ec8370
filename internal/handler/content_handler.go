package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"otonavi/internal/domain"
	"otonavi/internal/middleware"
	"otonavi/internal/repository"
	"otonavi/internal/service/seo"
)

type ContentHandler struct {
	contentRepo repository.ContentRepository
	seoService  seo.Service
}

func NewContentHandler(contentRepo repository.ContentRepository, seoService seo.Service) *ContentHandler {
	return &ContentHandler{
		contentRepo: contentRepo,
		seoService:  seoService,
	}
}

func (h *ContentHandler) ListFeatured(c *fiber.Ctx) error {
	items, err := h.contentRepo.ListFeatured(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch content")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": items})
}

func (h *ContentHandler) ListByType(c *fiber.Ctx) error {
	contentType, ok := domain.NormalizeContentType(c.Params("type"))
	if !ok {
		return middleware.NotFound("Unknown content type")
	}

	items, err := h.contentRepo.ListByType(c.Context(), contentType)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch content")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"type":  contentType,
		"title": contentType.Title(),
		"items": items,
	})
}

// GetBySlug returns a content page. The item's slug doubles as the comment
// page identifier, so the response names the page the client should fetch
// comments for.
func (h *ContentHandler) GetBySlug(c *fiber.Ctx) error {
	contentType, ok := domain.NormalizeContentType(c.Params("type"))
	if !ok {
		return middleware.NotFound("Unknown content type")
	}

	item, err := h.contentRepo.GetBySlug(c.Context(), contentType, c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			return middleware.NotFound("Content not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch content")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"item":        item,
		"label":       item.Type.Label(),
		"commentPage": item.Slug,
		"jsonLd":      h.seoService.ContentJSONLD(*item),
	})
}
