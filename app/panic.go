package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"isopipe/sketch/raster"
)

// recoverPanic turns a panic in the step into a logged stack trace, a
// panic screen and an error that stops the loop.
func (s *sketch) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}
	s.failed = true

	lines := []string{"IsoPiping panic:", fmt.Sprintf("panic: %v", v)}
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	for _, line := range lines {
		s.log.Error("%s", line)
	}

	if fb := s.framebuffer(); fb != nil {
		s.bindTarget(fb)
		s.hud.Panel(&s.target, lines, raster.ColorPrompt, raster.ColorBackground)
		_ = fb.Present()
	}
	*err = fmt.Errorf("panic: %v", v)
}
