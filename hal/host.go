package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Options sizes the host window and frame loop.
type Options struct {
	Width  int
	Height int
	// Scale multiplies the initial window size; the framebuffer stays at
	// Width x Height until the window is resized.
	Scale int
	Title string
	TPS   int

	// LogOutput defaults to os.Stdout.
	LogOutput io.Writer
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	if o.LogOutput == nil {
		o.LogOutput = os.Stdout
	}
	return o
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts.withDefaults())
}

func newHost(opts Options) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: opts.LogOutput},
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

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
