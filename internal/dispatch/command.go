// Package dispatch turns CLI tokens into album commands and prints their results.
package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/photo-album/pkg/album"
)

// Recognized token forms.
const (
	HelpToken      = "--h"
	AllAlbumsToken = "--allalbums"
	AlbumPrefix    = "--album="
	PhotoSeparator = "*photo="
)

// Kind identifies a parsed command.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindHelp
	KindListAlbums
	KindAlbumPhotos
	KindAlbumAndPhoto
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindHelp:
		return "help"
	case KindListAlbums:
		return "list-albums"
	case KindAlbumPhotos:
		return "album-photos"
	case KindAlbumAndPhoto:
		return "album-and-photo"
	default:
		return "unrecognized"
	}
}

// Command is a single parsed CLI token.
type Command struct {
	Kind    Kind
	AlbumID int
	PhotoID int
	// Raw is the token as given.
	Raw string
}

// ValidationError reports id substrings that are not numbers.
type ValidationError struct {
	Kind     Kind
	AlbumRaw string
	PhotoRaw string
}

// Error implements the error interface with the user-facing message.
func (e *ValidationError) Error() string {
	if e.Kind == KindAlbumAndPhoto {
		return fmt.Sprintf("The value %s for AlbumId or the value for %s is invalid.  Please review and supply a number",
			e.AlbumRaw, e.PhotoRaw)
	}

	return fmt.Sprintf("The value %s is invalid.  Please supply a number", e.AlbumRaw)
}

// Unwrap lets callers match album.ErrInvalidID.
func (e *ValidationError) Unwrap() error {
	return album.ErrInvalidID
}

// Parse classifies token. Matching is case-sensitive and checked in this
// order: help, all albums, album with photo, album. When an id is not a
// number the command keeps its kind and a *ValidationError is returned.
func Parse(token string) (Command, error) {
	cmd := Command{Raw: token}

	switch {
	case token == HelpToken:
		cmd.Kind = KindHelp
	case token == AllAlbumsToken:
		cmd.Kind = KindListAlbums
	case strings.HasPrefix(token, AlbumPrefix) && strings.Contains(token, PhotoSeparator):
		cmd.Kind = KindAlbumAndPhoto

		left, photoRaw, _ := strings.Cut(token, PhotoSeparator)
		albumRaw, _ := strings.CutPrefix(left, AlbumPrefix)

		albumID, albumErr := parseID(albumRaw)
		photoID, photoErr := parseID(photoRaw)

		if albumErr != nil || photoErr != nil {
			return cmd, &ValidationError{Kind: KindAlbumAndPhoto, AlbumRaw: albumRaw, PhotoRaw: photoRaw}
		}

		cmd.AlbumID = albumID
		cmd.PhotoID = photoID
	case strings.HasPrefix(token, AlbumPrefix):
		cmd.Kind = KindAlbumPhotos

		albumRaw, _ := strings.CutPrefix(token, AlbumPrefix)

		albumID, err := parseID(albumRaw)
		if err != nil {
			return cmd, &ValidationError{Kind: KindAlbumPhotos, AlbumRaw: albumRaw}
		}

		cmd.AlbumID = albumID
	default:
		cmd.Kind = KindUnrecognized
	}

	return cmd, nil
}

// parseID accepts an optionally signed integer with surrounding whitespace.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", album.ErrInvalidID, raw)
	}

	return id, nil
}
