package dispatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/photo-album/internal/console"
	"github.com/fivetwenty-io/photo-album/internal/dispatch"
	"github.com/fivetwenty-io/photo-album/pkg/album"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadPayload = errors.New("parsing photos: unexpected end of JSON input")

// MockAlbumClient for testing.
type MockAlbumClient struct {
	albumIDs album.Result[[]int]
	photos   album.Result[[]album.Photo]
	photo    album.Result[album.Photo]
	err      error

	calls []string
	args  [][]int
}

func (m *MockAlbumClient) ListAlbumIDs(ctx context.Context) (album.Result[[]int], error) {
	m.calls = append(m.calls, "ListAlbumIDs")
	m.args = append(m.args, nil)

	return m.albumIDs, m.err
}

func (m *MockAlbumClient) ListPhotosByAlbum(ctx context.Context, albumID int) (album.Result[[]album.Photo], error) {
	m.calls = append(m.calls, "ListPhotosByAlbum")
	m.args = append(m.args, []int{albumID})

	return m.photos, m.err
}

func (m *MockAlbumClient) GetPhoto(ctx context.Context, albumID, photoID int) (album.Result[album.Photo], error) {
	m.calls = append(m.calls, "GetPhoto")
	m.args = append(m.args, []int{albumID, photoID})

	return m.photo, m.err
}

func threePhotos(albumID int) []album.Photo {
	return []album.Photo{
		{AlbumID: albumID, ID: 1, Title: "Title1"},
		{AlbumID: albumID, ID: 2, Title: "Title2"},
		{AlbumID: albumID, ID: 3, Title: "Title3"},
	}
}

func run(t *testing.T, client *MockAlbumClient, args ...string) []string {
	t.Helper()

	recorder := &console.Recorder{}
	err := dispatch.New(client, recorder).Run(context.Background(), args)
	require.NoError(t, err)

	return recorder.Lines()
}

var helpLines = []string{
	"--allalbums will return all album ids",
	"--album=id will return all photos in that album",
	"--album=id*photo=id will return the photo requested from the album",
}

func TestDispatcher_Help(t *testing.T) {
	t.Parallel()

	t.Run("prints the three help lines", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{}
		assert.Equal(t, helpLines, run(t, client, "--h"))
		assert.Empty(t, client.calls)
	})

	t.Run("help anywhere in the list is handled", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{}
		assert.Equal(t, helpLines, run(t, client, "one", "two", "--h"))
	})

	t.Run("help stops the scan", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{}
		assert.Equal(t, helpLines, run(t, client, "--h", "--allalbums"))
		assert.Empty(t, client.calls)
	})

	t.Run("execute reports handled", func(t *testing.T) {
		t.Parallel()

		recorder := &console.Recorder{}
		handled, err := dispatch.New(&MockAlbumClient{}, recorder).Execute(context.Background(), dispatch.Command{Kind: dispatch.KindHelp})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, helpLines, recorder.Lines())
	})
}

func TestDispatcher_ListAlbums(t *testing.T) {
	t.Parallel()

	t.Run("album ids are printed in client order", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{albumIDs: album.OK([]int{3, 1, 2})}
		assert.Equal(t, []string{"3", "1", "2"}, run(t, client, "--allalbums"))
		assert.Equal(t, []string{"ListAlbumIDs"}, client.calls)
	})

	t.Run("no ids prints communication error", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{albumIDs: album.Empty[[]int]()}
		assert.Equal(t, []string{dispatch.CommunicationErrorMessage}, run(t, client, "--allalbums"))
	})

	t.Run("unavailable prints communication error", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{albumIDs: album.Unavailable[[]int]()}
		assert.Equal(t, []string{
			"There was an issue communicating to the resouce.  Please try your request again.",
		}, run(t, client, "--allalbums"))
	})
}

func TestDispatcher_AlbumPhotos(t *testing.T) {
	t.Parallel()

	t.Run("photos are printed under one header", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photos: album.OK(threePhotos(1))}
		assert.Equal(t, []string{
			"Album: 1",
			"\tPhotoId: 1 Title: Title1",
			"\tPhotoId: 2 Title: Title2",
			"\tPhotoId: 3 Title: Title3",
		}, run(t, client, "--album=1"))
		assert.Equal(t, [][]int{{1}}, client.args)
	})

	t.Run("header uses the first photo album", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photos: album.OK([]album.Photo{{AlbumID: 9, ID: 4, Title: "Other"}})}
		assert.Equal(t, []string{"Album: 9", "\tPhotoId: 4 Title: Other"}, run(t, client, "--album=1"))
	})

	t.Run("empty album prints nothing", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photos: album.Empty[[]album.Photo]()}
		assert.Empty(t, run(t, client, "--album=1"))
	})

	t.Run("unavailable prints nothing", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photos: album.Unavailable[[]album.Photo]()}
		assert.Empty(t, run(t, client, "--album=1", "--h"))
	})

	t.Run("invalid id prints validation message without calling the client", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photos: album.OK(threePhotos(1))}
		assert.Equal(t, []string{"The value hgfsk@1 is invalid.  Please supply a number"}, run(t, client, "--album=hgfsk@1"))
		assert.Empty(t, client.calls)
	})
}

func TestDispatcher_AlbumAndPhoto(t *testing.T) {
	t.Parallel()

	t.Run("matching data is printed", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photo: album.OK(album.Photo{AlbumID: 1, ID: 1, Title: "Title1"})}
		assert.Equal(t, []string{"Album: 1", "\tPhotoId: 1 Title: Title1"}, run(t, client, "--album=1*photo=1"))
		assert.Equal(t, [][]int{{1, 1}}, client.args)
	})

	t.Run("photo that does not exist prints no match", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photo: album.Empty[album.Photo]()}
		assert.Equal(t, []string{"There is no photo that matches AlbumId: 2  and PhotoId: 2"}, run(t, client, "--album=2*photo=2"))
	})

	t.Run("unavailable prints no match", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photo: album.Unavailable[album.Photo]()}
		assert.Equal(t, []string{"There is no photo that matches AlbumId: 5  and PhotoId: 6"}, run(t, client, "--album=5*photo=6"))
	})

	t.Run("invalid ids print validation message without calling the client", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{photo: album.OK(album.Photo{AlbumID: 1, ID: 1, Title: "Title1"})}
		assert.Equal(t, []string{
			"The value notanumber for AlbumId or the value for #@! is invalid.  Please review and supply a number",
		}, run(t, client, "--album=notanumber*photo=#@!"))
		assert.Empty(t, client.calls)
	})

	t.Run("validation failure stops the scan", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{}
		lines := run(t, client, "--album=x*photo=1", "--h")
		assert.Len(t, lines, 1)
		assert.Empty(t, client.calls)
	})
}

func TestDispatcher_Unrecognized(t *testing.T) {
	t.Parallel()

	t.Run("no arguments print the default message once", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{dispatch.UnrecognizedMessage}, run(t, &MockAlbumClient{}))
	})

	t.Run("unrecognized tokens print the default message once", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{
			"Unrecognized command type. Use --h for list of available commands",
		}, run(t, &MockAlbumClient{}, "foo", "--bar", "--H"))
	})

	t.Run("unrecognized tokens do not stop the scan", func(t *testing.T) {
		t.Parallel()

		client := &MockAlbumClient{albumIDs: album.OK([]int{1})}
		assert.Equal(t, []string{"1"}, run(t, client, "foo", "--allalbums"))
	})

	t.Run("execute reports not handled", func(t *testing.T) {
		t.Parallel()

		recorder := &console.Recorder{}
		handled, err := dispatch.New(&MockAlbumClient{}, recorder).Execute(context.Background(), dispatch.Command{Raw: "foo"})
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Equal(t, []string{dispatch.UnrecognizedMessage}, recorder.Lines())
	})
}

func TestDispatcher_UnexpectedErrorsPropagate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		arg  string
	}{
		{name: "list albums", arg: "--allalbums"},
		{name: "album photos", arg: "--album=1"},
		{name: "album and photo", arg: "--album=1*photo=1"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			recorder := &console.Recorder{}
			client := &MockAlbumClient{err: errBadPayload}

			err := dispatch.New(client, recorder).Run(context.Background(), []string{testCase.arg, "--h"})
			require.ErrorIs(t, err, errBadPayload)
			assert.Empty(t, recorder.Lines())
		})
	}
}
