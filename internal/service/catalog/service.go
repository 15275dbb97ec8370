package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"otonavi/internal/config"
	"otonavi/internal/domain"
)

// Source fetches catalog data. The real API client is used when credentials
// are configured; otherwise the built-in mock catalog serves the site.
type Source interface {
	SearchArtists(ctx context.Context, query string) ([]domain.Artist, error)
	SearchAlbums(ctx context.Context, query string) ([]domain.Album, error)
	GetArtistDetails(ctx context.Context, artistID string) (*domain.ArtistDetail, error)
	GetAlbumDetails(ctx context.Context, albumID string) (*domain.AlbumDetail, error)
}

type Service interface {
	Source
}

type service struct {
	source   Source
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewService(cfg *config.Config, redis *redis.Client) Service {
	var source Source
	if cfg.SpotifyClientID != "" && cfg.SpotifyClientSecret != "" {
		source = newSpotifyClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	} else {
		source = newMockSource()
	}

	return &service{
		source:   source,
		redis:    redis,
		cacheTTL: cfg.CatalogCacheTTL,
	}
}

// NewServiceWithSource exists for wiring a custom source, mostly in tests.
func NewServiceWithSource(source Source, redis *redis.Client, cacheTTL time.Duration) Service {
	return &service{source: source, redis: redis, cacheTTL: cacheTTL}
}

// cached wraps a fetch with a redis read-through. Cache failures are ignored;
// the source remains authoritative.
func cached[T any](ctx context.Context, s *service, key string, fetch func() (T, error)) (T, error) {
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, key).Result(); err == nil {
			var value T
			if json.Unmarshal([]byte(data), &value) == nil {
				return value, nil
			}
		}
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(value); err == nil {
			_ = s.redis.Set(ctx, key, data, s.cacheTTL).Err()
		}
	}
	return value, nil
}

func (s *service) SearchArtists(ctx context.Context, query string) ([]domain.Artist, error) {
	key := fmt.Sprintf("catalog:artists:search:%s", query)
	return cached(ctx, s, key, func() ([]domain.Artist, error) {
		return s.source.SearchArtists(ctx, query)
	})
}

func (s *service) SearchAlbums(ctx context.Context, query string) ([]domain.Album, error) {
	key := fmt.Sprintf("catalog:albums:search:%s", query)
	return cached(ctx, s, key, func() ([]domain.Album, error) {
		return s.source.SearchAlbums(ctx, query)
	})
}

func (s *service) GetArtistDetails(ctx context.Context, artistID string) (*domain.ArtistDetail, error) {
	key := fmt.Sprintf("catalog:artists:%s", artistID)
	return cached(ctx, s, key, func() (*domain.ArtistDetail, error) {
		return s.source.GetArtistDetails(ctx, artistID)
	})
}

func (s *service) GetAlbumDetails(ctx context.Context, albumID string) (*domain.AlbumDetail, error) {
	key := fmt.Sprintf("catalog:albums:%s", albumID)
	return cached(ctx, s, key, func() (*domain.AlbumDetail, error) {
		return s.source.GetAlbumDetails(ctx, albumID)
	})
}

// FormatDuration renders a track duration in m:ss form.
func FormatDuration(ms int) string {
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
