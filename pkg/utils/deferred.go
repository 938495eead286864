// Package utils holds small helpers with no better home.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers writes in memory so log output produced while a
// TUI owns the terminal can be replayed after the program exits.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Len reports the number of buffered bytes.
func (w *DeferredWriter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Len()
}

// Flush replays the buffered output through out and resets the buffer.
// Lines are written one at a time so writers that parse events per Write
// call, like zerolog's ConsoleWriter, see whole log lines.
func (w *DeferredWriter) Flush(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for w.buf.Len() > 0 {
		line, err := w.buf.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := out.Write(line); werr != nil {
				return werr
			}
		}
		if err != nil {
			break
		}
	}

	w.buf.Reset()
	return nil
}
