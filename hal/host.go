package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type host struct {
	logger *hostLogger
	sf     *hostSurface
}

func newHost(width, height int) *host {
	return &host{
		logger: &hostLogger{w: os.Stdout},
		sf:     newHostSurface(width, height),
	}
}

func (h *host) Logger() Logger   { return h.logger }
func (h *host) Surface() Surface { return h.sf }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
