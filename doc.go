// Package gouache prepares vector glyph outlines for GPU-resident,
// resolution-independent text rendering.
//
// # Overview
//
// Glyph outlines are rendered by a fragment shader that evaluates quadratic
// Bezier curves analytically. This package holds the geometry side of that
// pipeline:
//
//   - PathBuilder turns move/line/quadratic/cubic commands into a flat list
//     of quadratic segments, approximating cubics adaptively within a
//     tolerance relative to the curve's size.
//   - Path is the built result: points quantized to unorm16 within the
//     outline's bounding box, plus one (start, end) range per contour.
//   - Vec2, Mat4 and Camera provide the small amount of linear algebra the
//     renderer and its viewing transform need.
//
// The text subpackage lays out strings, caches and packs glyph paths into
// row-aligned buffers (package pack), and assembles draw meshes.
//
// # Quick start
//
//	b := gouache.NewPathBuilder()
//	b.MoveTo(gouache.V2(0, 0)).
//		CubicTo(gouache.V2(0, 100), gouache.V2(100, 100), gouache.V2(100, 0)).
//		Close()
//	p := b.Build()
//	fmt.Println(p.PointCount(), p.Min, p.Max)
//
// # Coordinates
//
// All geometry is y-up. Outlines are in font units; layout and meshes are in
// pixels with the origin at the bottom-left of the screen.
//
// # Logging
//
// The packages log through log/slog and are silent by default. Use SetLogger
// to route debug records (cache misses, mesh builds, texture uploads) to a
// handler.
package gouache

// Version is the library version.
const Version = "0.1.0"
