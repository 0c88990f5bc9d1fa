package text

import (
	"fmt"
	"maps"

	"github.com/gogpu/gouache"
)

// Engine owns one font and its glyph cache and drives the prepare, upload
// and draw cycle against a Device.
//
// The typical frame is:
//
//	mesh, err := e.Prepare(offset, size, s) // lay out and resolve glyphs
//	err = e.Draw(dev, w, h, cam)            // upload what changed, then draw
//
// Prepare is memoized on its arguments, so calling it every frame with the
// same text is cheap. Engine is not safe for concurrent use.
type Engine struct {
	font       Font
	cache      *GlyphCache
	layoutOpts LayoutOptions

	prepared *prepared

	meshDirty  bool
	meshHandle MeshHandle
	hasMesh    bool
	textures   map[string]TextureHandle
}

type prepareKey struct {
	offset gouache.Vec2
	size   float32
	text   string
}

type prepared struct {
	key    prepareKey
	layout *TextLayout
	mesh   *Mesh
}

// NewEngine creates an engine over f.
func NewEngine(f Font, opts ...EngineOption) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := NewGlyphCache(f, cfg.cache)
	if err != nil {
		return nil, err
	}

	return &Engine{
		font:       f,
		cache:      cache,
		layoutOpts: cfg.layout,
		textures:   make(map[string]TextureHandle, 2),
	}, nil
}

// Font returns the engine's font.
func (e *Engine) Font() Font {
	return e.font
}

// Cache returns the engine's glyph cache.
func (e *Engine) Cache() *GlyphCache {
	return e.cache
}

// Layout lays out s at size with the engine's layout options.
func (e *Engine) Layout(size float32, s string) *TextLayout {
	return Layout(e.font, size, s, e.layoutOpts)
}

// Prepare lays out s and assembles its mesh at offset. A call with the same
// arguments as the previous successful call returns the previous mesh.
func (e *Engine) Prepare(offset gouache.Vec2, size float32, s string) (*Mesh, error) {
	key := prepareKey{offset: offset, size: size, text: s}
	if e.prepared != nil && e.prepared.key == key {
		return e.prepared.mesh, nil
	}

	l := e.Layout(size, s)
	mesh, err := BuildMesh(e.cache, l, offset)
	if err != nil {
		return nil, err
	}

	e.prepared = &prepared{key: key, layout: l, mesh: mesh}
	e.meshDirty = true
	return mesh, nil
}

// Prepared returns the layout and mesh of the last successful Prepare.
func (e *Engine) Prepared() (*TextLayout, *Mesh) {
	if e.prepared == nil {
		return nil, nil
	}
	return e.prepared.layout, e.prepared.mesh
}

// Upload pushes dirty glyph buffers and a changed mesh to dev.
// The cache is marked clean only after both textures were created.
func (e *Engine) Upload(dev Device) error {
	if e.cache.Dirty() {
		for _, tex := range []struct {
			name string
			data TextureData
		}{
			{PointsTextureName, e.cache.PointsTexture()},
			{ComponentsTextureName, e.cache.ComponentsTexture()},
		} {
			h, err := dev.CreateTexture(tex.name, tex.data)
			if err != nil {
				return fmt.Errorf("text: upload %s texture: %w", tex.name, err)
			}
			e.textures[tex.name] = h
			slogger().Debug("text: texture uploaded",
				"name", tex.name,
				"width", tex.data.Width,
				"height", tex.data.Height,
				"format", tex.data.Format,
			)
		}
		e.cache.MarkClean()
	}

	if e.meshDirty && e.prepared != nil {
		m := e.prepared.mesh
		h, err := dev.CreateMesh(m.VertexBytes(), m.IndexBytes(), m.IndexCount())
		if err != nil {
			return fmt.Errorf("text: upload mesh: %w", err)
		}
		e.meshHandle = h
		e.hasMesh = true
		e.meshDirty = false
	}
	return nil
}

// Draw uploads pending data and draws the prepared mesh. A nil camera draws
// with the plain pixel-to-clip projection. Drawing before any Prepare, with
// a mesh of no quads, or before any glyph data was uploaded is a no-op.
func (e *Engine) Draw(dev Device, screenW, screenH float32, cam *gouache.Camera) error {
	if err := e.Upload(dev); err != nil {
		return err
	}
	if !e.hasMesh || e.prepared.mesh.QuadCount() == 0 || len(e.textures) == 0 {
		return nil
	}

	transform := gouache.Ortho(screenW, screenH)
	if cam != nil {
		transform = cam.Matrix(screenW, screenH)
	}

	u := Uniforms{
		ScreenSize: [2]float32{screenW, screenH},
		Transform:  transform,
	}
	if err := dev.Draw(e.meshHandle, u, maps.Clone(e.textures)); err != nil {
		return fmt.Errorf("text: draw: %w", err)
	}
	return nil
}
