package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"otonavi/internal/domain"
)

func TestContentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository()

	t.Run("ListFeatured returns every entry", func(t *testing.T) {
		items, err := repo.ListFeatured(ctx)

		assert.NoError(t, err)
		assert.Len(t, items, 6)
	})

	t.Run("ListByType filters", func(t *testing.T) {
		music, err := repo.ListByType(ctx, domain.ContentTypeMusic)
		assert.NoError(t, err)
		assert.Len(t, music, 4)

		artists, err := repo.ListByType(ctx, domain.ContentTypeArtist)
		assert.NoError(t, err)
		assert.Len(t, artists, 1)
		assert.Equal(t, "The Beatles", artists[0].Title)

		albums, err := repo.ListByType(ctx, domain.ContentTypeAlbum)
		assert.NoError(t, err)
		assert.Len(t, albums, 1)
		assert.Equal(t, "Revolver", albums[0].Title)
	})

	t.Run("GetBySlug finds the entry", func(t *testing.T) {
		item, err := repo.GetBySlug(ctx, domain.ContentTypeMusic, "abbey-road")

		assert.NoError(t, err)
		assert.Equal(t, "Abbey Road", item.Title)
	})

	t.Run("GetBySlug requires matching type", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, domain.ContentTypeArtist, "abbey-road")

		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})

	t.Run("GetBySlug unknown slug", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, domain.ContentTypeMusic, "nonexistent")

		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})
}
