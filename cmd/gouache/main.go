// Command gouache lays out text with a font and reports the packed glyph
// data a GPU text renderer would upload.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gouache"
	"github.com/gogpu/gouache/text"
)

func main() {
	var (
		fontPath = flag.String("font", "", "font file (TTF/OTF)")
		fontName = flag.String("font-name", "", "system font to look up by name, e.g. DejaVuSans.ttf")
		backend  = flag.String("backend", text.DefaultBackend, "font backend: "+strings.Join(text.Backends(), ", "))
		size     = flag.Float64("size", 48, "font size in pixels per em")
		input    = flag.String("text", "Hello, gouache!\nThe quick brown fox", "text to lay out")
		rowWidth = flag.Int("row-width", text.DefaultRowWidth, "scalars per packing row (even)")
		offsetX  = flag.Float64("x", 0, "mesh offset x")
		offsetY  = flag.Float64("y", 0, "mesh offset y")
		screenW  = flag.Float64("width", 800, "screen width")
		screenH  = flag.Float64("height", 600, "screen height")
		glyphs   = flag.Bool("glyphs", false, "list cached glyphs")
		dump     = flag.String("dump", "", "directory to write uploaded buffers to")
		verbose  = flag.Bool("v", false, "debug logging to stderr")
		version  = flag.Bool("version", false, "print the library version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("gouache", gouache.Version)
		return
	}

	if *verbose {
		gouache.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f, source, err := loadFont(*fontPath, *fontName, *backend)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	engine, err := text.NewEngine(f, text.WithRowWidth(*rowWidth))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	offset := gouache.V2(float32(*offsetX), float32(*offsetY))
	mesh, err := engine.Prepare(offset, float32(*size), *input)
	if err != nil {
		log.Fatalf("Failed to prepare text: %v", err)
	}

	dev, err := newDumpDevice(*dump)
	if err != nil {
		log.Fatalf("Failed to create dump directory: %v", err)
	}
	if err := engine.Draw(dev, float32(*screenW), float32(*screenH), gouache.NewCamera()); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	layout, _ := engine.Prepared()
	pterm.Info.Printf("font %s (%s backend)\n", source, *backend)
	printSummary(layout, mesh, engine.Cache(), dev)
	if *glyphs {
		printGlyphs(layout, engine.Cache())
	}
	if *dump != "" {
		pterm.Success.Printf("wrote %d files to %s\n", len(dev.files), *dump)
	}
}

// loadFont loads the font from a path, a system font name, or falls back to
// the embedded Go Regular.
func loadFont(path, name, backend string) (text.Font, string, error) {
	opt := text.WithBackend(backend)
	switch {
	case path != "":
		f, err := text.LoadFontFile(path, opt)
		return f, path, err
	case name != "":
		found, err := findfont.Find(name)
		if err != nil {
			return nil, "", fmt.Errorf("find %q: %w", name, err)
		}
		f, err := text.LoadFontFile(found, opt)
		return f, found, err
	default:
		f, err := text.LoadFont(goregular.TTF, opt)
		return f, "Go Regular (embedded)", err
	}
}

func printSummary(l *text.TextLayout, m *text.Mesh, c *text.GlyphCache, dev *dumpDevice) {
	s := c.Stats()
	data := pterm.TableData{
		{"Metric", "Value"},
		{"placements", fmt.Sprintf("%d", len(l.Placements))},
		{"lines", fmt.Sprintf("%d", l.Lines)},
		{"size (px)", fmt.Sprintf("%.1f x %.1f", l.Width, l.Height)},
		{"line height (px)", fmt.Sprintf("%.2f", l.LineHeight)},
		{"quads / indices", fmt.Sprintf("%d / %d", m.QuadCount(), m.IndexCount())},
		{"cached glyphs", fmt.Sprintf("%d (hits %d, misses %d)", s.Glyphs, s.Hits, s.Misses)},
		{"points buffer", fmt.Sprintf("%d / %d scalars, %d rows", s.PointsUsed, s.PointsLen, s.PointsLen/c.RowWidth())},
		{"components buffer", fmt.Sprintf("%d / %d scalars, %d rows", s.ComponentsUsed, s.ComponentsLen, s.ComponentsLen/c.RowWidth())},
		{"uploaded bytes", fmt.Sprintf("%d", dev.bytes)},
		{"draw calls", fmt.Sprintf("%d", dev.draws)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Printf("render table: %v", err)
	}
}

func printGlyphs(l *text.TextLayout, c *text.GlyphCache) {
	data := pterm.TableData{{"Rune", "GID", "Points", "Components", "BBox (font units)"}}
	seen := make(map[text.GlyphID]bool)
	for _, p := range l.Placements {
		if seen[p.GID] {
			continue
		}
		seen[p.GID] = true
		e, ok := c.Lookup(p.GID)
		if !ok {
			continue
		}
		data = append(data, []string{
			fmt.Sprintf("%q", p.Rune),
			fmt.Sprintf("%d", e.GID),
			fmt.Sprintf("[%d, %d)", e.Points.Start, e.Points.End),
			fmt.Sprintf("[%d, %d)", e.Components.Start, e.Components.End),
			fmt.Sprintf("(%.0f, %.0f)-(%.0f, %.0f)", e.Path.Min.X, e.Path.Min.Y, e.Path.Max.X, e.Path.Max.Y),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Printf("render table: %v", err)
	}
}
