package main

import (
	"os"
	"testing"

	"github.com/gogpu/gouache"
	"github.com/gogpu/gouache/text"
)

func TestDumpDevice(t *testing.T) {
	dir := t.TempDir()

	f, _, err := loadFont("", "", text.DefaultBackend)
	if err != nil {
		t.Fatalf("loadFont: %v", err)
	}
	e, err := text.NewEngine(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Prepare(gouache.Vec2{}, 32, "gouache"); err != nil {
		t.Fatal(err)
	}

	dev, err := newDumpDevice(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Draw(dev, 640, 480, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// Two textures, vertices, indices and one uniform block.
	if len(dev.files) != 5 {
		t.Fatalf("wrote %d files, want 5: %v", len(dev.files), dev.files)
	}
	for _, path := range dev.files {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
	if dev.draws != 1 {
		t.Errorf("draws = %d, want 1", dev.draws)
	}
}

func TestLoadFont_Fallback(t *testing.T) {
	for _, backend := range []string{text.BackendSFNT, text.BackendGoText} {
		f, source, err := loadFont("", "", backend)
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		if source == "" || f.Metrics().UnitsPerEm == 0 {
			t.Errorf("%s: source %q metrics %+v", backend, source, f.Metrics())
		}
	}
}
