package catalog

import (
	"context"
	"strings"

	"otonavi/internal/domain"
)

// mockSource serves the built-in catalog used when no API credentials are
// configured. Searches that match nothing fall back to the full table and
// unknown detail ids fall back to the first entry, so pages always render.
type mockSource struct{}

func newMockSource() Source {
	return &mockSource{}
}

var mockArtists = []domain.Artist{
	{
		ID:          "mock-artist-1",
		Name:        "Mock Artist 1",
		Images:      []domain.Image{{URL: "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=800&auto=format&fit=crop&q=60"}},
		Genres:      []string{"Pop", "Rock"},
		Followers:   1234567,
		Popularity:  85,
		ExternalURL: "https://open.spotify.com/artist/mock1",
	},
	{
		ID:          "mock-artist-2",
		Name:        "Mock Artist 2",
		Images:      []domain.Image{{URL: "https://images.unsplash.com/photo-1493225255756-d9584f8606e9?w=800&auto=format&fit=crop&q=60"}},
		Genres:      []string{"Jazz", "Blues"},
		Followers:   54321,
		Popularity:  65,
		ExternalURL: "https://open.spotify.com/artist/mock2",
	},
	{
		ID:          "mock-artist-3",
		Name:        "Mock Artist 3",
		Images:      []domain.Image{{URL: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=800&auto=format&fit=crop&q=60"}},
		Genres:      []string{"Indie", "Alternative"},
		Followers:   98765,
		Popularity:  72,
		ExternalURL: "https://open.spotify.com/artist/mock3",
	},
}

var mockAlbums = []domain.Album{
	{
		ID:          "mock-album-1",
		Name:        "Greatest Hits",
		Artists:     []domain.ArtistRef{{ID: "mock-artist-1", Name: "Mock Artist 1"}},
		Images:      []domain.Image{{URL: "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?w=800&auto=format&fit=crop&q=60"}},
		ReleaseDate: "2023-01-01",
		TotalTracks: 12,
		AlbumType:   "album",
		ExternalURL: "https://open.spotify.com/album/mock1",
	},
	{
		ID:          "mock-album-2",
		Name:        "Live at Tokyo",
		Artists:     []domain.ArtistRef{{ID: "mock-artist-2", Name: "Mock Artist 2"}},
		Images:      []domain.Image{{URL: "https://images.unsplash.com/photo-1496293455970-f8581aae0e3c?w=800&auto=format&fit=crop&q=60"}},
		ReleaseDate: "2024-05-20",
		TotalTracks: 8,
		AlbumType:   "compilation",
		ExternalURL: "https://open.spotify.com/album/mock2",
	},
}

var mockTracks = []domain.Track{
	{ID: "mock-track-1", Name: "Mock Song 1", DurationMS: 210000, TrackNumber: 1, ExternalURL: "https://open.spotify.com/track/mock1"},
	{ID: "mock-track-2", Name: "Mock Song 2", DurationMS: 180000, TrackNumber: 2, ExternalURL: "https://open.spotify.com/track/mock2"},
	{ID: "mock-track-3", Name: "Mock Song 3", DurationMS: 240000, TrackNumber: 3, ExternalURL: "https://open.spotify.com/track/mock3"},
}

func (m *mockSource) SearchArtists(ctx context.Context, query string) ([]domain.Artist, error) {
	var results []domain.Artist
	for _, artist := range mockArtists {
		if strings.Contains(strings.ToLower(artist.Name), strings.ToLower(query)) {
			results = append(results, artist)
		}
	}
	if len(results) == 0 {
		results = append(results, mockArtists...)
	}
	return results, nil
}

func (m *mockSource) SearchAlbums(ctx context.Context, query string) ([]domain.Album, error) {
	var results []domain.Album
	for _, album := range mockAlbums {
		if strings.Contains(strings.ToLower(album.Name), strings.ToLower(query)) {
			results = append(results, album)
		}
	}
	if len(results) == 0 {
		results = append(results, mockAlbums...)
	}
	return results, nil
}

func (m *mockSource) GetArtistDetails(ctx context.Context, artistID string) (*domain.ArtistDetail, error) {
	artist := mockArtists[0]
	for _, a := range mockArtists {
		if a.ID == artistID {
			artist = a
			break
		}
	}

	return &domain.ArtistDetail{
		Artist:    artist,
		TopTracks: append([]domain.Track(nil), mockTracks...),
		Albums:    append([]domain.Album(nil), mockAlbums...),
	}, nil
}

func (m *mockSource) GetAlbumDetails(ctx context.Context, albumID string) (*domain.AlbumDetail, error) {
	album := mockAlbums[0]
	for _, a := range mockAlbums {
		if a.ID == albumID {
			album = a
			break
		}
	}

	return &domain.AlbumDetail{
		Album:      album,
		Tracks:     append([]domain.Track(nil), mockTracks...),
		Label:      "Mock Records",
		Copyrights: []domain.Copyright{{Text: "© 2024 Mock Records", Type: "C"}},
	}, nil
}
