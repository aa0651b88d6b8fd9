package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	internalhttp "github.com/fivetwenty-io/photo-album/internal/http"
	"github.com/fivetwenty-io/photo-album/pkg/album"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a new test client with the given base URL. Retries are
// disabled so non-success statuses surface immediately.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, internalhttp.WithRetryConfig(0, time.Millisecond, 0))

	return NewWithHTTPClient(httpClient, nil)
}

// PhotoServer is an httptest server serving a fixed photo payload.
type PhotoServer struct {
	*httptest.Server

	requests atomic.Int32
	lastURL  atomic.Pointer[url.URL]
}

// Requests returns how many requests the server received.
func (s *PhotoServer) Requests() int {
	return int(s.requests.Load())
}

// LastQuery returns the query of the most recent request.
func (s *PhotoServer) LastQuery() url.Values {
	last := s.lastURL.Load()
	if last == nil {
		return nil
	}

	return last.Query()
}

// NewPhotoServer starts a server answering every request with statusCode and
// the JSON encoding of photos.
func NewPhotoServer(t *testing.T, statusCode int, photos []album.Photo) *PhotoServer {
	t.Helper()

	body, err := json.Marshal(photos)
	require.NoError(t, err)

	return NewRawServer(t, statusCode, string(body))
}

// NewRawServer starts a server answering every request with statusCode and body.
func NewRawServer(t *testing.T, statusCode int, body string) *PhotoServer {
	t.Helper()

	server := &PhotoServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.requests.Add(1)
		server.lastURL.Store(r.URL)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)

	return server
}

// ThreePhotos returns photos 1-3 in albumID titled Title1-Title3.
func ThreePhotos(albumID int) []album.Photo {
	return []album.Photo{
		{AlbumID: albumID, ID: 1, Title: "Title1"},
		{AlbumID: albumID, ID: 2, Title: "Title2"},
		{AlbumID: albumID, ID: 3, Title: "Title3"},
	}
}
