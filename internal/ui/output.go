// Package ui contains the console output helpers.
package ui

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
)

// Output is a writer that is safe for concurrent use.
type Output interface {
	io.Writer

	Name() string
}

// the writes into the same stream are serialized across all the returned outputs.
var stdOutMu, stdErrMu sync.Mutex //nolint:gochecknoglobals

// StdOut returns a stdout pipe writer.
func StdOut() Output { return &locked{mu: &stdOutMu, name: "stdout", dest: colorable.NewColorable(os.Stdout)} }

// StdErr returns a stderr pipe writer.
func StdErr() Output { return &locked{mu: &stdErrMu, name: "stderr", dest: colorable.NewColorable(os.Stderr)} }

// Buffer is a buffered output (common use case - unit-tests).
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write writes the given bytes into the buffer.
func (b *Buffer) Write(p []byte) (int, error) { b.mu.Lock(); defer b.mu.Unlock(); return b.buf.Write(p) }

// String returns the buffer content.
func (b *Buffer) String() string { b.mu.Lock(); defer b.mu.Unlock(); return b.buf.String() }

// Name returns the output name.
func (*Buffer) Name() string { return "buffer" }

type locked struct {
	mu   *sync.Mutex
	name string
	dest io.Writer
}

func (o *locked) Write(p []byte) (n int, err error) {
	o.mu.Lock()
	n, err = o.dest.Write(p)
	o.mu.Unlock()

	return
}

func (o *locked) Name() string { return o.name }
