// Package console provides the line-oriented output sink used by the CLI.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Writer accepts formatted output.
type Writer interface {
	Write(value string)
	WriteLine(value string)
}

// StreamWriter writes to an io.Writer. It is safe for concurrent use.
type StreamWriter struct {
	mutex sync.Mutex
	out   io.Writer
	err   error
}

// NewWriter creates a Writer on top of out.
func NewWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{out: out}
}

// Write writes value without a trailing newline.
func (w *StreamWriter) Write(value string) {
	w.write(value)
}

// WriteLine writes value followed by a newline.
func (w *StreamWriter) WriteLine(value string) {
	w.write(value + "\n")
}

// Err returns the first write error, if any. Later writes are dropped once a
// write has failed.
func (w *StreamWriter) Err() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.err
}

func (w *StreamWriter) write(value string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.err != nil {
		return
	}

	_, err := io.WriteString(w.out, value)
	if err != nil {
		w.err = fmt.Errorf("writing output: %w", err)
	}
}

// Recorder keeps every line written to it. It backs tests and any caller that
// wants the output as data.
type Recorder struct {
	mutex   sync.Mutex
	pending string
	lines   []string
}

// Write buffers value until the next WriteLine.
func (r *Recorder) Write(value string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.pending += value
}

// WriteLine records a completed line.
func (r *Recorder) WriteLine(value string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lines = append(r.lines, r.pending+value)
	r.pending = ""
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return append([]string(nil), r.lines...)
}
