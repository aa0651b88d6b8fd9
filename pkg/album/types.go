package album

// Photo represents a single photo record returned by the album API.
//
// Field names are matched case-insensitively when decoding, so payloads using
// "albumId", "AlbumId" or "ALBUMID" all populate AlbumID.
type Photo struct {
	AlbumID      int    `json:"albumId"      yaml:"albumId"`
	ID           int    `json:"id"           yaml:"id"`
	Title        string `json:"title"        yaml:"title"`
	URL          string `json:"url"          yaml:"url"`
	ThumbnailURL string `json:"thumbnailUrl" yaml:"thumbnailUrl"`
}

// Status describes the outcome of a client call.
type Status int

const (
	// StatusOK means the call succeeded and produced data.
	StatusOK Status = iota
	// StatusEmpty means the call succeeded but there was nothing to return.
	// For single-record lookups this is "not found".
	StatusEmpty
	// StatusUnavailable is the no-data sentinel: the API did not answer with
	// a success status.
	StatusUnavailable
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is the three-way outcome of a client call.
type Result[T any] struct {
	Status Status
	Data   T
}

// OK wraps data in a successful result.
func OK[T any](data T) Result[T] {
	return Result[T]{Status: StatusOK, Data: data}
}

// Empty returns a successful result carrying no data.
func Empty[T any]() Result[T] {
	return Result[T]{Status: StatusEmpty}
}

// Unavailable returns the no-data result.
func Unavailable[T any]() Result[T] {
	return Result[T]{Status: StatusUnavailable}
}

// Found reports whether the result carries data.
func (r Result[T]) Found() bool {
	return r.Status == StatusOK
}

// Err converts a result into an error: nil for StatusOK, ErrNoResults for
// StatusEmpty and ErrResourceNotReached for StatusUnavailable.
func (r Result[T]) Err() error {
	switch r.Status {
	case StatusOK:
		return nil
	case StatusEmpty:
		return ErrNoResults
	default:
		return ErrResourceNotReached
	}
}
