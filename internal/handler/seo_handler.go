package handler

import (
	"github.com/gofiber/fiber/v2"

	"otonavi/internal/service/seo"
)

type SEOHandler struct {
	seoService seo.Service
}

func NewSEOHandler(seoService seo.Service) *SEOHandler {
	return &SEOHandler{seoService: seoService}
}

func (h *SEOHandler) Sitemap(c *fiber.Ctx) error {
	entries, err := h.seoService.Sitemap(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build sitemap")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"urls": entries})
}
