// Package savlog provides the package-level structured logger used by
// the codec, terrain, and bridge layers for load/save timing and
// translation diagnostics. It defaults to a disabled logger so that
// importing this module does not write to stderr unless a caller
// explicitly installs one.
package savlog

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(io.Discard).Level(zerolog.Disabled)

// SetLogger installs l as the package-level logger.
func SetLogger(l zerolog.Logger) { logger = l }

// Logger returns the current package-level logger.
func Logger() zerolog.Logger { return logger }

// Timer starts a scoped timer that logs its elapsed duration at debug
// level when stopped, mirroring the teacher's scoped-timer pattern
// around the terrain sweeps.
type Timer struct {
	name  string
	start time.Time
}

// NewTimer starts a named timer.
func NewTimer(name string) *Timer {
	return &Timer{name: name, start: time.Now()}
}

// Stop logs the elapsed time at debug level.
func (t *Timer) Stop() {
	logger.Debug().
		Str("op", t.name).
		Dur("elapsed", time.Since(t.start)).
		Msg("timing")
}
