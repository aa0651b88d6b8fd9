package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/photo-album/internal/constants"
	"github.com/fivetwenty-io/photo-album/pkg/album"
)

// ListAlbumIDs implements album.Client.ListAlbumIDs.
func (c *Client) ListAlbumIDs(ctx context.Context) (album.Result[[]int], error) {
	photos, ok, err := c.fetchPhotos(ctx, nil)
	if err != nil {
		return album.Result[[]int]{}, err
	}

	if !ok {
		return album.Unavailable[[]int](), nil
	}

	albumIDs := distinctAlbumIDs(photos)

	c.debug("Listed album ids", map[string]interface{}{
		"photos": len(photos),
		"albums": len(albumIDs),
	})

	if len(albumIDs) == 0 {
		return album.Empty[[]int](), nil
	}

	return album.OK(albumIDs), nil
}

// ListPhotosByAlbum implements album.Client.ListPhotosByAlbum.
// The server filters by album; the result is returned as received.
func (c *Client) ListPhotosByAlbum(ctx context.Context, albumID int) (album.Result[[]album.Photo], error) {
	photos, ok, err := c.fetchPhotos(ctx, albumQuery(albumID))
	if err != nil {
		return album.Result[[]album.Photo]{}, err
	}

	if !ok {
		return album.Unavailable[[]album.Photo](), nil
	}

	c.debug("Listed album photos", map[string]interface{}{
		"album_id": albumID,
		"count":    len(photos),
	})

	if len(photos) == 0 {
		return album.Empty[[]album.Photo](), nil
	}

	return album.OK(photos), nil
}

// GetPhoto implements album.Client.GetPhoto.
// The match is on photo id only; the returned photo may belong to another album
// if the server ignored the albumId filter.
func (c *Client) GetPhoto(ctx context.Context, albumID, photoID int) (album.Result[album.Photo], error) {
	photos, ok, err := c.fetchPhotos(ctx, albumQuery(albumID))
	if err != nil {
		return album.Result[album.Photo]{}, err
	}

	if !ok {
		return album.Unavailable[album.Photo](), nil
	}

	for _, photo := range photos {
		if photo.ID == photoID {
			c.debug("Found photo", map[string]interface{}{
				"album_id": albumID,
				"photo_id": photoID,
			})

			return album.OK(photo), nil
		}
	}

	c.debug("Photo not found", map[string]interface{}{
		"album_id": albumID,
		"photo_id": photoID,
		"searched": len(photos),
	})

	return album.Empty[album.Photo](), nil
}

// fetchPhotos reads the photo collection. ok is false when the API did not
// answer with a success status.
func (c *Client) fetchPhotos(ctx context.Context, query url.Values) ([]album.Photo, bool, error) {
	resp, err := c.httpClient.Get(ctx, "", query)
	if err != nil {
		if album.IsUnavailable(err) {
			c.debug("Album resource unavailable", map[string]interface{}{
				"status_code": album.StatusCode(err),
			})

			return nil, false, nil
		}

		return nil, false, fmt.Errorf("getting photos: %w", err)
	}

	var photos []album.Photo

	err = json.Unmarshal(resp.Body, &photos)
	if err != nil {
		return nil, false, fmt.Errorf("parsing photos: %w", err)
	}

	return photos, true, nil
}

func albumQuery(albumID int) url.Values {
	return url.Values{constants.AlbumIDQueryParam: []string{strconv.Itoa(albumID)}}
}

// distinctAlbumIDs keeps the first occurrence of each album id.
func distinctAlbumIDs(photos []album.Photo) []int {
	seen := make(map[int]struct{}, len(photos))
	albumIDs := make([]int, 0)

	for _, photo := range photos {
		if _, ok := seen[photo.AlbumID]; ok {
			continue
		}

		seen[photo.AlbumID] = struct{}{}
		albumIDs = append(albumIDs, photo.AlbumID)
	}

	return albumIDs
}
