package text

import (
	"log/slog"

	"github.com/gogpu/gouache"
)

// slogger returns the logger configured with gouache.SetLogger.
// All logging in text goes through this function.
func slogger() *slog.Logger { return gouache.Logger() }
