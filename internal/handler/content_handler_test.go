package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"otonavi/internal/domain"
	"otonavi/internal/handler"
	"otonavi/internal/middleware"
	"otonavi/internal/repository"
	"otonavi/internal/service/seo"
)

func newContentApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	contentRepo := repository.NewContentRepository()
	seoSvc := seo.NewService(contentRepo, "https://www.otonavi.example")
	h := handler.NewContentHandler(contentRepo, seoSvc)

	content := app.Group("/api/v1/content")
	content.Get("/", h.ListFeatured)
	content.Get("/:type", h.ListByType)
	content.Get("/:type/:slug", h.GetBySlug)

	return app
}

func TestContentHandlerListByType(t *testing.T) {
	app := newContentApp()

	t.Run("Known type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/music", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Type  domain.ContentType   `json:"type"`
			Title string               `json:"title"`
			Items []domain.ContentItem `json:"items"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, domain.ContentTypeMusic, body.Type)
		assert.Equal(t, "音楽一覧", body.Title)
		assert.Len(t, body.Items, 4)
	})

	t.Run("Plural alias", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/albums", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unknown type is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/podcast", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body middleware.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "NOT_FOUND", body.Code)
	})
}

func TestContentHandlerGetBySlug(t *testing.T) {
	app := newContentApp()

	t.Run("Detail page payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/music/abbey-road", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Item        domain.ContentItem `json:"item"`
			Label       string             `json:"label"`
			CommentPage string             `json:"commentPage"`
			JSONLD      map[string]any     `json:"jsonLd"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "Abbey Road", body.Item.Title)
		assert.Equal(t, "音楽", body.Label)
		assert.Equal(t, "abbey-road", body.CommentPage)
		assert.Equal(t, "MusicAlbum", body.JSONLD["@type"])
	})

	t.Run("Artist pages use MusicGroup structured data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/artist/the-beatles", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			JSONLD map[string]any `json:"jsonLd"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "MusicGroup", body.JSONLD["@type"])
	})

	t.Run("Unknown slug is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/content/music/nonexistent", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
