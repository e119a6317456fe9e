package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives a log entry so it can be forwarded to a secondary sink.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirror atomic.Pointer[MirrorFunc]

// SetMirror installs f as the global log mirror; passing nil removes it.
func SetMirror(f MirrorFunc) {
	if f == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&f)
}
