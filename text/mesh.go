package text

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gouache"
)

// Mesh limits imposed by 16-bit indices.
const (
	MaxMeshVertices = 1 << 16
	MaxMeshQuads    = MaxMeshVertices / verticesPerQuad

	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// VertexStride is the size of one encoded Vertex in bytes.
const VertexStride = 24

// IndexFormat is the element type of Mesh.IndexBytes.
const IndexFormat = gputypes.IndexFormatUint16

// VertexLayout describes the encoding of Mesh.VertexBytes for a render
// pipeline: position at location 0, UV at 1, components at 2.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatUint32x2, Offset: 16, ShaderLocation: 2},
		},
	}
}

// Vertex is one corner of a glyph quad.
//
// Layout (24 bytes):
//   - Pos:        2 x float32, pixel position (y up)
//   - UV:         2 x float32, corner in bbox-normalized space (0 or 1)
//   - Components: 2 x uint32, absolute [start, end) into the components buffer
type Vertex struct {
	Pos        [2]float32
	UV         [2]float32
	Components [2]uint32
}

// Mesh is the CPU side of the text draw: four vertices and six indices per
// placed glyph.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// QuadCount returns the number of glyph quads.
func (m *Mesh) QuadCount() int {
	return len(m.Vertices) / verticesPerQuad
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// VertexBytes encodes the vertices little-endian with VertexStride bytes each.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Pos[0]))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Pos[1]))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.UV[0]))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.UV[1]))
		buf = binary.LittleEndian.AppendUint32(buf, v.Components[0])
		buf = binary.LittleEndian.AppendUint32(buf, v.Components[1])
	}
	return buf
}

// IndexBytes encodes the indices as little-endian uint16.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, 0, len(m.Indices)*int(IndexFormat.Size()))
	for _, idx := range m.Indices {
		buf = binary.LittleEndian.AppendUint16(buf, idx)
	}
	return buf
}

// BuildMesh emits one quad per placement covering the glyph's bounding box.
//
// Quads cover offset + pen + scale*bbox. UVs are the same corners in
// bbox-normalized space, the space unorm16 points are quantized in.
// Corners are ordered min-min, max-min, max-max, min-max and triangulated
// as (0,1,2) (0,2,3), counter-clockwise with y up.
// Every glyph is resolved through c, so buffers grow as needed.
func BuildMesh(c *GlyphCache, l *TextLayout, offset gouache.Vec2) (*Mesh, error) {
	if n := len(l.Placements); n > MaxMeshQuads {
		return nil, fmt.Errorf("%w: %d glyphs, at most %d", ErrIndexOverflow, n, MaxMeshQuads)
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, len(l.Placements)*verticesPerQuad),
		Indices:  make([]uint16, 0, len(l.Placements)*indicesPerQuad),
	}

	for _, p := range l.Placements {
		e, err := c.Resolve(p.GID)
		if err != nil {
			return nil, err
		}

		origin := offset.Add(p.Pos)
		pmin := origin.Add(e.Path.Min.Mul(l.Scale))
		pmax := origin.Add(e.Path.Max.Mul(l.Scale))
		comps := [2]uint32{
			uint32(e.Components.Start), //nolint:gosec // buffer offsets fit uint32
			uint32(e.Components.End),   //nolint:gosec // buffer offsets fit uint32
		}

		base := uint16(len(m.Vertices)) //nolint:gosec // bounded by MaxMeshQuads
		m.Vertices = append(m.Vertices,
			Vertex{Pos: [2]float32{pmin.X, pmin.Y}, UV: [2]float32{0, 0}, Components: comps},
			Vertex{Pos: [2]float32{pmax.X, pmin.Y}, UV: [2]float32{1, 0}, Components: comps},
			Vertex{Pos: [2]float32{pmax.X, pmax.Y}, UV: [2]float32{1, 1}, Components: comps},
			Vertex{Pos: [2]float32{pmin.X, pmax.Y}, UV: [2]float32{0, 1}, Components: comps},
		)
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	slogger().Debug("text: mesh built",
		"quads", m.QuadCount(),
		"indices", m.IndexCount(),
	)
	return m, nil
}
