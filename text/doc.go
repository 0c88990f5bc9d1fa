// Package text turns strings into GPU-ready glyph meshes backed by packed
// vector outlines.
//
// # Overview
//
// A Font decodes glyph outlines and metrics. Layout places the glyphs of a
// string, BuildMesh emits one quad per placed glyph, and GlyphCache packs
// each glyph's flattened, quantized outline into two row-aligned buffers the
// first time the glyph is used:
//
//	string -> Layout -> []Placement -> BuildMesh -> Mesh
//	                                      |
//	                                 GlyphCache -> points / components textures
//
// The fragment stage evaluates the quadratic curves of a glyph directly from
// the textures, so glyphs stay sharp at any scale.
//
// # Fonts
//
// LoadFont decodes TTF and OTF data through a named Backend:
//
//	f, err := text.LoadFont(data)                                // golang.org/x/image sfnt
//	f, err := text.LoadFont(data, text.WithBackend(text.BackendGoText)) // go-text/typesetting
//
// Custom decoders can be registered with RegisterBackend or passed directly
// as any value implementing Font.
//
// # Engine
//
// Engine bundles a font, its cache and the last prepared mesh, and uploads
// only what changed to a Device:
//
//	e, err := text.NewEngine(f)
//	_, err = e.Prepare(gouache.V2(10, 10), 48, "Hello")
//	err = e.Draw(dev, 800, 600, cam)
//
// # Coordinates
//
// Outlines are in font units, y up. Layout output is in pixels, y up, with
// the first baseline one scaled ascender above the origin and later lines
// below it.
package text
