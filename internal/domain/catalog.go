package domain

import "errors"

var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Catalog types mirror the subset of the Spotify Web API the site consumes.

type Image struct {
	URL string `json:"url"`
}

type ArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Images      []Image  `json:"images"`
	Genres      []string `json:"genres"`
	Followers   int      `json:"followers"`
	Popularity  int      `json:"popularity"`
	ExternalURL string   `json:"externalUrl"`
}

type Album struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Artists     []ArtistRef `json:"artists"`
	Images      []Image     `json:"images"`
	ReleaseDate string      `json:"releaseDate"`
	TotalTracks int         `json:"totalTracks"`
	AlbumType   string      `json:"albumType"`
	ExternalURL string      `json:"externalUrl"`
}

type Track struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DurationMS  int    `json:"durationMs"`
	TrackNumber int    `json:"trackNumber"`
	ExternalURL string `json:"externalUrl"`
}

type ArtistDetail struct {
	Artist
	TopTracks []Track `json:"topTracks"`
	Albums    []Album `json:"albums"`
}

type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type AlbumDetail struct {
	Album
	Tracks     []Track     `json:"tracks"`
	Label      string      `json:"label"`
	Copyrights []Copyright `json:"copyrights"`
}
