package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/photo-album/internal/console"
	"github.com/fivetwenty-io/photo-album/pkg/album"
)

// Lines printed by the dispatcher.
const (
	HelpAllAlbumsLine     = "--allalbums will return all album ids"
	HelpAlbumLine         = "--album=id will return all photos in that album"
	HelpAlbumAndPhotoLine = "--album=id*photo=id will return the photo requested from the album"

	CommunicationErrorMessage = "There was an issue communicating to the resouce.  Please try your request again."
	UnrecognizedMessage       = "Unrecognized command type. Use --h for list of available commands"
)

// Dispatcher runs the first recognized command in a token list.
type Dispatcher struct {
	client album.Client
	out    console.Writer
	logger album.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(logger album.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// New creates a dispatcher reading from client and writing to out.
func New(client album.Client, out console.Writer, opts ...Option) *Dispatcher {
	dispatcher := &Dispatcher{
		client: client,
		out:    out,
	}

	for _, opt := range opts {
		opt(dispatcher)
	}

	return dispatcher
}

// Run scans args in order and executes the first recognized command. A token
// with an invalid id counts as handled after its message is printed.
// Unrecognized tokens are skipped; if nothing was handled the unrecognized
// message is printed once. Only unexpected failures are returned.
func (d *Dispatcher) Run(ctx context.Context, args []string) error {
	for _, token := range args {
		cmd, err := Parse(token)

		validationErr := &ValidationError{}
		if errors.As(err, &validationErr) {
			d.debug("Rejected command", map[string]interface{}{
				"kind":  cmd.Kind.String(),
				"token": token,
			})
			d.out.WriteLine(validationErr.Error())

			return nil
		}

		if cmd.Kind == KindUnrecognized {
			d.debug("Skipping unrecognized token", map[string]interface{}{"token": token})

			continue
		}

		handled, err := d.Execute(ctx, cmd)
		if err != nil {
			return err
		}

		if handled {
			return nil
		}
	}

	d.showDefault()

	return nil
}

// Execute runs a single parsed command and reports whether it was handled.
// Unrecognized commands print the unrecognized message and report false.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) (bool, error) {
	d.debug("Dispatching command", map[string]interface{}{
		"kind":     cmd.Kind.String(),
		"album_id": cmd.AlbumID,
		"photo_id": cmd.PhotoID,
	})

	switch cmd.Kind {
	case KindHelp:
		return d.showHelp(), nil
	case KindListAlbums:
		return d.listAlbums(ctx)
	case KindAlbumPhotos:
		return d.albumPhotos(ctx, cmd.AlbumID)
	case KindAlbumAndPhoto:
		return d.albumAndPhoto(ctx, cmd.AlbumID, cmd.PhotoID)
	default:
		d.showDefault()

		return false, nil
	}
}

func (d *Dispatcher) showHelp() bool {
	d.out.WriteLine(HelpAllAlbumsLine)
	d.out.WriteLine(HelpAlbumLine)
	d.out.WriteLine(HelpAlbumAndPhotoLine)

	return true
}

func (d *Dispatcher) listAlbums(ctx context.Context) (bool, error) {
	result, err := d.client.ListAlbumIDs(ctx)
	if err != nil {
		return true, fmt.Errorf("listing albums: %w", err)
	}

	if !result.Found() {
		d.out.WriteLine(CommunicationErrorMessage)

		return true, nil
	}

	for _, albumID := range result.Data {
		d.out.WriteLine(strconv.Itoa(albumID))
	}

	return true, nil
}

// albumPhotos prints nothing when the album is empty or the API is unavailable.
func (d *Dispatcher) albumPhotos(ctx context.Context, albumID int) (bool, error) {
	result, err := d.client.ListPhotosByAlbum(ctx, albumID)
	if err != nil {
		return true, fmt.Errorf("listing photos for album %d: %w", albumID, err)
	}

	if !result.Found() {
		d.debug("No photos to show", map[string]interface{}{
			"album_id": albumID,
			"status":   result.Status.String(),
		})

		return true, nil
	}

	// The header uses the first photo's album, not the requested one.
	d.out.WriteLine(albumLine(result.Data[0].AlbumID))

	for _, photo := range result.Data {
		d.out.WriteLine(photoLine(photo))
	}

	return true, nil
}

func (d *Dispatcher) albumAndPhoto(ctx context.Context, albumID, photoID int) (bool, error) {
	result, err := d.client.GetPhoto(ctx, albumID, photoID)
	if err != nil {
		return true, fmt.Errorf("getting photo %d from album %d: %w", photoID, albumID, err)
	}

	if !result.Found() {
		d.out.WriteLine(fmt.Sprintf("There is no photo that matches AlbumId: %d  and PhotoId: %d", albumID, photoID))

		return true, nil
	}

	d.out.WriteLine(albumLine(result.Data.AlbumID))
	d.out.WriteLine(photoLine(result.Data))

	return true, nil
}

func (d *Dispatcher) showDefault() {
	d.out.WriteLine(UnrecognizedMessage)
}

func (d *Dispatcher) debug(msg string, fields map[string]interface{}) {
	if d.logger != nil {
		d.logger.Debug(msg, fields)
	}
}

func albumLine(albumID int) string {
	return fmt.Sprintf("Album: %d", albumID)
}

func photoLine(photo album.Photo) string {
	return fmt.Sprintf("\tPhotoId: %d Title: %s", photo.ID, photo.Title)
}
