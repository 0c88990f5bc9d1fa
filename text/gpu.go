package text

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gouache"
)

// Texture binding names used in Device.Draw.
const (
	PointsTextureName     = "points"
	ComponentsTextureName = "components"
)

// Texel formats of the packed curve data.
const (
	// PointsFormat holds two uint16 channels per texel: one quantized point.
	PointsFormat = gputypes.TextureFormatRG16Uint

	// ComponentsFormat holds two uint32 channels per texel: one contour range.
	ComponentsFormat = gputypes.TextureFormatRG32Uint
)

// BytesPerTexel returns the texel size of the curve data formats, or 0 for
// any other format.
func BytesPerTexel(f gputypes.TextureFormat) int {
	switch f {
	case PointsFormat:
		return 4
	case ComponentsFormat:
		return 8
	default:
		return 0
	}
}

// TextureData is a packed buffer ready for upload as a 2D texture.
// Texels are addressed by (index % Width, index / Width).
type TextureData struct {
	Bytes  []byte
	Width  int
	Height int
	Format gputypes.TextureFormat
}

// UniformsSize is the size of the encoded Uniforms block in bytes.
const UniformsSize = 80

// Uniforms are the per-draw values of the text shader.
type Uniforms struct {
	ScreenSize [2]float32
	Transform  gouache.Mat4
}

// Bytes encodes the uniforms little-endian.
//
// Layout (80 bytes):
//   - [0:64]  transform, row-major mat4
//   - [64:72] screen size in pixels
//   - [72:80] padding
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformsSize)
	off := 0
	for _, v := range u.Transform {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(u.ScreenSize[0]))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(u.ScreenSize[1]))
	// Padding remains zero.
	return buf
}

// MeshHandle identifies a mesh owned by a Device.
type MeshHandle uint32

// TextureHandle identifies a texture owned by a Device.
type TextureHandle uint32

// Device is the GPU resource layer the engine draws through. It owns shader
// programs, buffers and textures; the text package only hands it bytes.
//
// Creating a texture under a name already in use replaces it.
type Device interface {
	CreateMesh(vertices, indices []byte, indexCount int) (MeshHandle, error)
	CreateTexture(name string, tex TextureData) (TextureHandle, error)
	Draw(mesh MeshHandle, u Uniforms, textures map[string]TextureHandle) error
}
