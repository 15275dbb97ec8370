package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"otonavi/internal/domain"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyAPIBase  = "https://api.spotify.com/v1"

	searchLimit = 20
	// Top tracks require a market; the site serves a Japanese audience.
	topTracksMarket = "JP"
)

// spotifyClient talks to the Spotify Web API with the client-credentials
// flow. The token is fetched lazily and reused until shortly before expiry.
type spotifyClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func newSpotifyClient(clientID, clientSecret string) Source {
	return &spotifyClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *spotifyClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, spotifyTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token request returned %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	c.accessToken = body.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

func (c *spotifyClient) get(ctx context.Context, path string, query url.Values, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	endpoint := spotifyAPIBase + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", domain.ErrCatalogUnavailable, path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Wire shapes, limited to the fields the site consumes.

type apiImage struct {
	URL string `json:"url"`
}

type apiArtist struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Images    []apiImage `json:"images"`
	Genres    []string   `json:"genres"`
	Followers struct {
		Total int `json:"total"`
	} `json:"followers"`
	Popularity   int `json:"popularity"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type apiAlbum struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"artists"`
	Images       []apiImage `json:"images"`
	ReleaseDate  string     `json:"release_date"`
	TotalTracks  int        `json:"total_tracks"`
	AlbumType    string     `json:"album_type"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type apiTrack struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DurationMS   int    `json:"duration_ms"`
	TrackNumber  int    `json:"track_number"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (a apiArtist) toDomain() domain.Artist {
	artist := domain.Artist{
		ID:          a.ID,
		Name:        a.Name,
		Genres:      a.Genres,
		Followers:   a.Followers.Total,
		Popularity:  a.Popularity,
		ExternalURL: a.ExternalURLs.Spotify,
	}
	for _, img := range a.Images {
		artist.Images = append(artist.Images, domain.Image{URL: img.URL})
	}
	return artist
}

func (a apiAlbum) toDomain() domain.Album {
	album := domain.Album{
		ID:          a.ID,
		Name:        a.Name,
		ReleaseDate: a.ReleaseDate,
		TotalTracks: a.TotalTracks,
		AlbumType:   a.AlbumType,
		ExternalURL: a.ExternalURLs.Spotify,
	}
	for _, ref := range a.Artists {
		album.Artists = append(album.Artists, domain.ArtistRef{ID: ref.ID, Name: ref.Name})
	}
	for _, img := range a.Images {
		album.Images = append(album.Images, domain.Image{URL: img.URL})
	}
	return album
}

func (t apiTrack) toDomain() domain.Track {
	return domain.Track{
		ID:          t.ID,
		Name:        t.Name,
		DurationMS:  t.DurationMS,
		TrackNumber: t.TrackNumber,
		ExternalURL: t.ExternalURLs.Spotify,
	}
}

func (c *spotifyClient) SearchArtists(ctx context.Context, query string) ([]domain.Artist, error) {
	var body struct {
		Artists struct {
			Items []apiArtist `json:"items"`
		} `json:"artists"`
	}

	params := url.Values{"type": {"artist"}, "q": {query}, "limit": {fmt.Sprint(searchLimit)}}
	if err := c.get(ctx, "/search", params, &body); err != nil {
		return nil, err
	}

	artists := make([]domain.Artist, 0, len(body.Artists.Items))
	for _, item := range body.Artists.Items {
		artists = append(artists, item.toDomain())
	}
	return artists, nil
}

func (c *spotifyClient) SearchAlbums(ctx context.Context, query string) ([]domain.Album, error) {
	var body struct {
		Albums struct {
			Items []apiAlbum `json:"items"`
		} `json:"albums"`
	}

	params := url.Values{"type": {"album"}, "q": {query}, "limit": {fmt.Sprint(searchLimit)}}
	if err := c.get(ctx, "/search", params, &body); err != nil {
		return nil, err
	}

	albums := make([]domain.Album, 0, len(body.Albums.Items))
	for _, item := range body.Albums.Items {
		albums = append(albums, item.toDomain())
	}
	return albums, nil
}

func (c *spotifyClient) GetArtistDetails(ctx context.Context, artistID string) (*domain.ArtistDetail, error) {
	var artist apiArtist
	if err := c.get(ctx, "/artists/"+artistID, nil, &artist); err != nil {
		return nil, err
	}

	var topTracks struct {
		Tracks []apiTrack `json:"tracks"`
	}
	if err := c.get(ctx, "/artists/"+artistID+"/top-tracks", url.Values{"market": {topTracksMarket}}, &topTracks); err != nil {
		return nil, err
	}

	var albums struct {
		Items []apiAlbum `json:"items"`
	}
	if err := c.get(ctx, "/artists/"+artistID+"/albums", url.Values{"limit": {fmt.Sprint(searchLimit)}}, &albums); err != nil {
		return nil, err
	}

	detail := &domain.ArtistDetail{Artist: artist.toDomain()}
	for _, t := range topTracks.Tracks {
		detail.TopTracks = append(detail.TopTracks, t.toDomain())
	}
	for _, a := range albums.Items {
		detail.Albums = append(detail.Albums, a.toDomain())
	}
	return detail, nil
}

func (c *spotifyClient) GetAlbumDetails(ctx context.Context, albumID string) (*domain.AlbumDetail, error) {
	var body struct {
		apiAlbum
		Tracks struct {
			Items []apiTrack `json:"items"`
		} `json:"tracks"`
		Label      string `json:"label"`
		Copyrights []struct {
			Text string `json:"text"`
			Type string `json:"type"`
		} `json:"copyrights"`
	}
	if err := c.get(ctx, "/albums/"+albumID, nil, &body); err != nil {
		return nil, err
	}

	detail := &domain.AlbumDetail{
		Album: body.apiAlbum.toDomain(),
		Label: body.Label,
	}
	for _, t := range body.Tracks.Items {
		detail.Tracks = append(detail.Tracks, t.toDomain())
	}
	for _, cr := range body.Copyrights {
		detail.Copyrights = append(detail.Copyrights, domain.Copyright{Text: cr.Text, Type: cr.Type})
	}
	return detail, nil
}
