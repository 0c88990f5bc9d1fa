package text

import (
	"errors"
	"fmt"

	"github.com/gogpu/gouache"
	"github.com/gogpu/gouache/pack"
)

// DefaultRowWidth is the default number of scalars per packing row.
// It is a texture width of 2048 two-channel texels.
const DefaultRowWidth = 4096

// scalarsPerElement is the number of scalars in one point (x, y) or one
// component (start, end).
const scalarsPerElement = 2

// CacheConfig holds configuration for GlyphCache.
type CacheConfig struct {
	// RowWidth is the number of scalars per row of both packing buffers.
	// It must be positive and even so that no element straddles a row.
	// Default: 4096
	RowWidth int
}

// DefaultCacheConfig returns the default cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{RowWidth: DefaultRowWidth}
}

// GlyphEntry describes where a glyph's curve data lives in the packing buffers.
//
// Ranges are in element units: Points counts points, Components counts
// (start, end) pairs. Component pairs hold absolute point indices into the
// points buffer.
type GlyphEntry struct {
	GID        GlyphID
	Path       *gouache.Path
	Components pack.Range
	Points     pack.Range
}

// Empty reports whether the glyph has no contours.
func (e *GlyphEntry) Empty() bool {
	return e.Components.Len() == 0
}

// CacheStats is a snapshot of cache counters and buffer usage.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Glyphs int

	PointsUsed     int // scalars written to the points buffer
	PointsLen      int // scalars allocated in the points buffer
	ComponentsUsed int
	ComponentsLen  int
}

// GlyphCache resolves glyph IDs to packed curve data, decoding and
// flattening each glyph the first time it is seen. Entries are never evicted
// and offsets never move, so a resolved entry stays valid for the life of
// the cache.
//
// GlyphCache is not safe for concurrent use.
type GlyphCache struct {
	font       Font
	entries    map[GlyphID]*GlyphEntry
	points     *pack.RowBuffer[uint16]
	components *pack.RowBuffer[uint32]
	dirty      bool

	hits   uint64
	misses uint64
}

// NewGlyphCache creates an empty cache over f.
func NewGlyphCache(f Font, cfg CacheConfig) (*GlyphCache, error) {
	if cfg.RowWidth == 0 {
		cfg.RowWidth = DefaultRowWidth
	}
	if cfg.RowWidth > 0 && cfg.RowWidth%scalarsPerElement != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddRowWidth, cfg.RowWidth)
	}

	points, err := pack.NewRowBuffer[uint16](cfg.RowWidth)
	if err != nil {
		return nil, fmt.Errorf("text: points buffer: %w", err)
	}
	components, err := pack.NewRowBuffer[uint32](cfg.RowWidth)
	if err != nil {
		return nil, fmt.Errorf("text: components buffer: %w", err)
	}

	return &GlyphCache{
		font:       f,
		entries:    make(map[GlyphID]*GlyphEntry),
		points:     points,
		components: components,
	}, nil
}

// Font returns the font the cache decodes from.
func (c *GlyphCache) Font() Font {
	return c.font
}

// Resolve returns the entry for gid, building and packing it on first use.
// Resolving the same glyph again returns the same entry without touching the
// buffers.
func (c *GlyphCache) Resolve(gid GlyphID) (*GlyphEntry, error) {
	if e, ok := c.entries[gid]; ok {
		c.hits++
		return e, nil
	}
	c.misses++

	path, err := BuildPath(c.font, gid)
	switch {
	case errors.Is(err, ErrNoOutline):
		slogger().Warn("text: glyph has no vector outline, caching empty path", "gid", gid)
		path = &gouache.Path{}
	case err != nil:
		return nil, fmt.Errorf("text: outline glyph %d: %w", gid, err)
	}

	return c.insert(gid, path), nil
}

// insert appends path to both buffers. Component pairs are rebased from
// path-local to absolute point indices.
func (c *GlyphCache) insert(gid GlyphID, path *gouache.Path) *GlyphEntry {
	pr := c.points.Append(path.Points...)
	base := uint32(pr.Start / scalarsPerElement) //nolint:gosec // buffer offsets fit uint32

	rebased := make([]uint32, len(path.Components))
	for i, v := range path.Components {
		rebased[i] = base + v
	}
	cr := c.components.Append(rebased...)

	e := &GlyphEntry{
		GID:        gid,
		Path:       path,
		Components: cr.Div(scalarsPerElement),
		Points:     pr.Div(scalarsPerElement),
	}
	c.entries[gid] = e
	if pr.Len() > 0 || cr.Len() > 0 {
		c.dirty = true
	}

	slogger().Debug("text: glyph packed",
		"gid", gid,
		"points", e.Points.Len(),
		"components", e.Components.Len(),
		"point_rows", c.points.Rows(),
		"component_rows", c.components.Rows(),
	)
	return e
}

// Lookup returns the entry for gid if it has been resolved.
func (c *GlyphCache) Lookup(gid GlyphID) (*GlyphEntry, bool) {
	e, ok := c.entries[gid]
	return e, ok
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	return len(c.entries)
}

// RowWidth returns the number of scalars per packing row.
func (c *GlyphCache) RowWidth() int {
	return c.points.RowWidth()
}

// Dirty reports whether the buffers changed since the last MarkClean.
func (c *GlyphCache) Dirty() bool {
	return c.dirty
}

// MarkClean clears the dirty flag after the buffers have been uploaded.
func (c *GlyphCache) MarkClean() {
	c.dirty = false
}

// Stats returns a snapshot of cache statistics.
func (c *GlyphCache) Stats() CacheStats {
	return CacheStats{
		Hits:           c.hits,
		Misses:         c.misses,
		Glyphs:         len(c.entries),
		PointsUsed:     c.points.Used(),
		PointsLen:      c.points.Len(),
		ComponentsUsed: c.components.Used(),
		ComponentsLen:  c.components.Len(),
	}
}

// HitRate returns the cache hit rate as a fraction in [0, 1].
func (c *GlyphCache) HitRate() float64 {
	hits := c.hits
	total := hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// PointsTexture returns the points buffer as an RG16 unsigned texture.
func (c *GlyphCache) PointsTexture() TextureData {
	return TextureData{
		Bytes:  c.points.Bytes(),
		Width:  c.points.RowWidth() / scalarsPerElement,
		Height: c.points.Rows(),
		Format: PointsFormat,
	}
}

// ComponentsTexture returns the components buffer as an RG32 unsigned texture.
func (c *GlyphCache) ComponentsTexture() TextureData {
	return TextureData{
		Bytes:  c.components.Bytes(),
		Width:  c.components.RowWidth() / scalarsPerElement,
		Height: c.components.Rows(),
		Format: ComponentsFormat,
	}
}
