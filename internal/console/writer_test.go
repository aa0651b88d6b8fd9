package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fivetwenty-io/photo-album/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClosed = errors.New("closed")

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++

	return 0, errClosed
}

func TestStreamWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	writer := console.NewWriter(&buf)
	writer.Write("Album: ")
	writer.WriteLine("1")
	writer.WriteLine("\tPhotoId: 1 Title: Title1")

	require.NoError(t, writer.Err())
	assert.Equal(t, "Album: 1\n\tPhotoId: 1 Title: Title1\n", buf.String())
}

func TestStreamWriter_StopsAfterError(t *testing.T) {
	t.Parallel()

	out := &failingWriter{}
	writer := console.NewWriter(out)
	writer.WriteLine("first")
	writer.WriteLine("second")

	require.ErrorIs(t, writer.Err(), errClosed)
	assert.Equal(t, 1, out.calls)
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	recorder := &console.Recorder{}
	recorder.WriteLine("one")
	recorder.Write("t")
	recorder.WriteLine("wo")

	lines := recorder.Lines()
	assert.Equal(t, []string{"one", "two"}, lines)

	lines[0] = "changed"
	assert.Equal(t, "one", recorder.Lines()[0])
}
