package album

import (
	"context"
	"time"
)

// Client provides read access to the photo album resource.
//
// Every method distinguishes three outcomes through Result: data was found,
// the call succeeded with nothing to return, or the API could not be reached
// with a success status. A non-nil error is reserved for failures the caller
// is not expected to handle, such as an unparseable response body.
type Client interface {
	// ListAlbumIDs fetches every photo and returns the distinct album ids in
	// first-seen order.
	ListAlbumIDs(ctx context.Context) (Result[[]int], error)
	// ListPhotosByAlbum returns the photos the API reports for albumID.
	ListPhotosByAlbum(ctx context.Context, albumID int) (Result[[]Photo], error)
	// GetPhoto returns the first photo with id photoID among the photos the
	// API reports for albumID. The photo's own AlbumID is not checked.
	GetPhoto(ctx context.Context, albumID, photoID int) (Result[Photo], error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Retries
//
// Every request is retried on recoverable transport errors and on any
// non-success status. The wait before retry n is RetryBase * 2^n plus a
// random jitter below RetryJitter, so the defaults give 2, 4, 8... seconds.
// Per-request deadlines should be carried by the context passed to client
// methods; Timeout bounds a single attempt.
type Config struct {
	// BaseURL is the photo collection endpoint, e.g.
	// "https://jsonplaceholder.typicode.com/photos". Queries are appended to it.
	BaseURL string

	// Optional configurations
	// RetryMax: maximum number of retries after the first attempt. Zero
	// disables retries.
	RetryMax int
	// RetryBase: backoff unit. Zero means one second.
	RetryBase time.Duration
	// RetryJitter: upper bound of the random delay added to each wait. Zero
	// means one second.
	RetryJitter time.Duration
	// Timeout: per-attempt HTTP timeout. Zero means the default of 30s.
	Timeout time.Duration
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the client.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
