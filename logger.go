package gouache

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false, so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger; never nil after init.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes gouache's diagnostics, including those of package text,
// to l. A nil l silences them again, which is also the initial state.
//
// Records by level:
//   - [slog.LevelDebug]: a glyph packed on cache miss, an unmapped rune,
//     a mesh built, a texture handed to the device
//   - [slog.LevelInfo]: a font parsed
//   - [slog.LevelWarn]: a mapped glyph that has no outline, a failed
//     glyph lookup or advance during layout
//
//	gouache.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger. It may be called from
// any goroutine.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
