package progrock

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/vito/progrock"
)

// consoleWriter renders status updates as plain lines, one per vertex
// state change. Interleaved command output is passed through untouched.
type consoleWriter struct {
	mu        sync.Mutex
	w         io.Writer
	started   map[string]bool
	completed map[string]bool
}

func newConsoleWriter(w io.Writer) *consoleWriter {
	return &consoleWriter{
		w:         w,
		started:   make(map[string]bool),
		completed: make(map[string]bool),
	}
}

// WriteStatus prints one line per vertex transition and forwards raw log
// chunks. The recorder resends vertex state on every change, so
// transitions that were already printed are skipped.
func (c *consoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range update.Vertexes {
		c.writeVertex(v)
	}
	for _, l := range update.Logs {
		_, _ = c.w.Write(l.Data)
	}
	return nil
}

func (c *consoleWriter) writeVertex(v *progrock.Vertex) {
	switch {
	case v.Cached:
		if c.completed[v.Id] {
			return
		}
		c.completed[v.Id] = true
		_, _ = fmt.Fprintf(c.w, "=> %s CACHED\n", v.Name)
	case v.Completed != nil:
		if c.completed[v.Id] {
			return
		}
		c.completed[v.Id] = true
		if v.Error != nil {
			_, _ = fmt.Fprintf(c.w, "=> %s ERROR: %s\n", v.Name, v.GetError())
			return
		}
		_, _ = fmt.Fprintf(c.w, "=> %s DONE %.1fs\n", v.Name, vertexDuration(v).Seconds())
	case v.Started != nil:
		if c.started[v.Id] {
			return
		}
		c.started[v.Id] = true
		_, _ = fmt.Fprintf(c.w, "=> %s\n", v.Name)
	}
}

func (c *consoleWriter) Close() error { return nil }

func vertexDuration(v *progrock.Vertex) time.Duration {
	if v.Started == nil || v.Completed == nil {
		return 0
	}
	return v.Completed.AsTime().Sub(v.Started.AsTime())
}
