package seo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"otonavi/internal/domain"
	"otonavi/internal/repository"
)

// JSONLD is a schema.org structured-data document.
type JSONLD map[string]any

// SitemapEntry describes one URL for the sitemap endpoint the frontend's
// sitemap generator consumes.
type SitemapEntry struct {
	Loc        string `json:"loc"`
	LastMod    string `json:"lastmod"`
	ChangeFreq string `json:"changefreq"`
	Priority   string `json:"priority"`
}

type Service interface {
	ContentJSONLD(item domain.ContentItem) JSONLD
	Sitemap(ctx context.Context) ([]SitemapEntry, error)
}

type service struct {
	contentRepo repository.ContentRepository
	siteURL     string
}

func NewService(contentRepo repository.ContentRepository, siteURL string) Service {
	return &service{
		contentRepo: contentRepo,
		siteURL:     strings.TrimSuffix(siteURL, "/"),
	}
}

// ContentJSONLD builds the structured data embedded on a detail page.
// Artists are MusicGroup, everything else MusicAlbum.
func (s *service) ContentJSONLD(item domain.ContentItem) JSONLD {
	schemaType := "MusicAlbum"
	if item.Type == domain.ContentTypeArtist {
		schemaType = "MusicGroup"
	}

	return JSONLD{
		"@context":      "https://schema.org",
		"@type":         schemaType,
		"name":          item.Title,
		"description":   item.Description,
		"image":         item.ImageURL,
		"datePublished": item.ReleaseDate.UTC().Format(time.RFC3339),
	}
}

func (s *service) Sitemap(ctx context.Context) ([]SitemapEntry, error) {
	items, err := s.contentRepo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	entries := []SitemapEntry{
		{Loc: s.siteURL + "/", LastMod: now, ChangeFreq: "daily", Priority: "0.7"},
	}

	for _, item := range items {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/%s/%s", s.siteURL, pathSegment(item.Type), item.Slug),
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   "0.7",
		})
	}
	return entries, nil
}

func pathSegment(t domain.ContentType) string {
	switch t {
	case domain.ContentTypeArtist:
		return "artist"
	case domain.ContentTypeAlbum:
		return "album"
	default:
		return "music"
	}
}
