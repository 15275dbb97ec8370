package repository

import (
	"context"
	"time"

	"otonavi/internal/domain"
)

type ContentRepository interface {
	ListFeatured(ctx context.Context) ([]domain.ContentItem, error)
	ListByType(ctx context.Context, contentType domain.ContentType) ([]domain.ContentItem, error)
	GetBySlug(ctx context.Context, contentType domain.ContentType, slug string) (*domain.ContentItem, error)
}

// contentRepository serves the curated discovery pages from a static table.
// The catalog service covers live data; these entries back the editorial pages.
type contentRepository struct {
	items []domain.ContentItem
}

func NewContentRepository() ContentRepository {
	return &contentRepository{items: featuredContent}
}

func (r *contentRepository) ListFeatured(ctx context.Context) ([]domain.ContentItem, error) {
	items := make([]domain.ContentItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *contentRepository) ListByType(ctx context.Context, contentType domain.ContentType) ([]domain.ContentItem, error) {
	var items []domain.ContentItem
	for _, item := range r.items {
		if item.Type == contentType {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *contentRepository) GetBySlug(ctx context.Context, contentType domain.ContentType, slug string) (*domain.ContentItem, error) {
	for _, item := range r.items {
		if item.Type == contentType && item.Slug == slug {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrContentNotFound
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

var featuredContent = []domain.ContentItem{
	{
		ID:          "3",
		Title:       "Kind of Blue",
		Type:        domain.ContentTypeMusic,
		Description: "アメリカのジャズトランペット奏者マイルス・デイヴィスによるスタジオ・アルバム。",
		ImageURL:    "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=800&auto=format&fit=crop&q=60",
		Slug:        "kind-of-blue",
		ReleaseDate: date("1959-08-17"),
	},
	{
		ID:          "5",
		Title:       "Abbey Road",
		Type:        domain.ContentTypeMusic,
		Description: "ビートルズによる12作目のスタジオ・アルバム。",
		ImageURL:    "https://images.unsplash.com/photo-1493225255756-d9584f8606e9?w=800&auto=format&fit=crop&q=60",
		Slug:        "abbey-road",
		ReleaseDate: date("1969-09-26"),
	},
	{
		ID:          "6",
		Title:       "The Dark Side of the Moon",
		Type:        domain.ContentTypeMusic,
		Description: "ピンク・フロイドによる8作目のスタジオ・アルバム。",
		ImageURL:    "https://images.unsplash.com/photo-1481833761820-0509d3217039?w=800&auto=format&fit=crop&q=60",
		Slug:        "dark-side-of-the-moon",
		ReleaseDate: date("1973-03-01"),
	},
	{
		ID:          "8",
		Title:       "Thriller",
		Type:        domain.ContentTypeMusic,
		Description: "マイケル・ジャクソンによる6作目のスタジオ・アルバム。",
		ImageURL:    "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=800&auto=format&fit=crop&q=60",
		Slug:        "thriller",
		ReleaseDate: date("1982-11-30"),
	},
	{
		ID:          "9",
		Title:       "The Beatles",
		Type:        domain.ContentTypeArtist,
		Description: "イギリス・リヴァプール出身のロックバンド。20世紀を代表する音楽グループ。",
		ImageURL:    "https://images.unsplash.com/photo-1526478806334-5fd488fcaabc?w=800&auto=format&fit=crop&q=60",
		Slug:        "the-beatles",
		ReleaseDate: date("1960-01-01"),
	},
	{
		ID:          "10",
		Title:       "Revolver",
		Type:        domain.ContentTypeAlbum,
		Description: "ビートルズの7作目のイギリス盤公式オリジナル・アルバム。",
		ImageURL:    "https://images.unsplash.com/photo-1514525253440-b393452e8d26?w=800&auto=format&fit=crop&q=60",
		Slug:        "revolver",
		ReleaseDate: date("1966-08-05"),
	},
}
