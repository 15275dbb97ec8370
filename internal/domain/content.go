package domain

import (
	"errors"
	"time"
)

var ErrContentNotFound = errors.New("content not found")

type ContentType string

const (
	ContentTypeMusic  ContentType = "MUSIC"
	ContentTypeArtist ContentType = "ARTIST"
	ContentTypeAlbum  ContentType = "ALBUM"
)

// ContentItem is a curated entry on the discovery pages. Its Slug doubles as
// the comment page identifier for the item's detail page.
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        ContentType `json:"type"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Slug        string      `json:"slug"`
	ReleaseDate time.Time   `json:"releaseDate"`
}

// typePaths normalizes URL path segments to content types. Both singular and
// plural forms are accepted, matching the site's historical routes.
var typePaths = map[string]ContentType{
	"music":   ContentTypeMusic,
	"artist":  ContentTypeArtist,
	"artists": ContentTypeArtist,
	"album":   ContentTypeAlbum,
	"albums":  ContentTypeAlbum,
}

func NormalizeContentType(path string) (ContentType, bool) {
	t, ok := typePaths[path]
	return t, ok
}

var typeTitles = map[ContentType]string{
	ContentTypeMusic:  "音楽一覧",
	ContentTypeArtist: "有名人一覧",
	ContentTypeAlbum:  "アルバム一覧",
}

var typeLabels = map[ContentType]string{
	ContentTypeMusic:  "音楽",
	ContentTypeArtist: "アーティスト",
	ContentTypeAlbum:  "アルバム",
}

func (t ContentType) Title() string {
	return typeTitles[t]
}

func (t ContentType) Label() string {
	return typeLabels[t]
}
