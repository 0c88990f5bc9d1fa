package text

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gouache"
)

func TestSlogger_FollowsRootLogger(t *testing.T) {
	orig := gouache.Logger()
	t.Cleanup(func() { gouache.SetLogger(orig) })

	var buf bytes.Buffer
	gouache.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := newTestCache(t, newFakeFont(), 64)
	if _, err := c.Resolve(1); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "text: glyph packed") || !strings.Contains(out, "gid=1") {
		t.Errorf("log output %q missing cache miss record", out)
	}
}
