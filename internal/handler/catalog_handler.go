package handler

import (
	"github.com/gofiber/fiber/v2"

	"otonavi/internal/middleware"
	"otonavi/internal/service/catalog"
)

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) SearchArtists(c *fiber.Ctx) error {
	artists, err := h.catalogService.SearchArtists(c.Context(), c.Query("q"))
	if err != nil {
		return middleware.BadGateway("Catalog search failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"artists": artists})
}

func (h *CatalogHandler) SearchAlbums(c *fiber.Ctx) error {
	albums, err := h.catalogService.SearchAlbums(c.Context(), c.Query("q"))
	if err != nil {
		return middleware.BadGateway("Catalog search failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"albums": albums})
}

func (h *CatalogHandler) GetArtist(c *fiber.Ctx) error {
	artistID := c.Params("artistId")
	if artistID == "" {
		return middleware.BadRequest("Invalid artist ID")
	}

	detail, err := h.catalogService.GetArtistDetails(c.Context(), artistID)
	if err != nil {
		return middleware.BadGateway("Catalog lookup failed")
	}

	return c.Status(fiber.StatusOK).JSON(detail)
}

func (h *CatalogHandler) GetAlbum(c *fiber.Ctx) error {
	albumID := c.Params("albumId")
	if albumID == "" {
		return middleware.BadRequest("Invalid album ID")
	}

	detail, err := h.catalogService.GetAlbumDetails(c.Context(), albumID)
	if err != nil {
		return middleware.BadGateway("Catalog lookup failed")
	}

	return c.Status(fiber.StatusOK).JSON(detail)
}
