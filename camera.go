package gouache

// Camera turns pointer and scroll input into the view transform uploaded
// with each draw call. Windowing code feeds it events; the camera itself
// knows nothing about the event source.
//
// Screen input uses window coordinates (y down). The transform maps the
// y-up pixel space that meshes are built in.
type Camera struct {
	offset Vec2
	zoom   float32

	dragging bool
	hasLast  bool
	last     Vec2
}

// NewCamera returns a camera with no pan and unit zoom.
func NewCamera() *Camera {
	return &Camera{zoom: 1}
}

// Offset returns the current pan offset in pixels.
func (c *Camera) Offset() Vec2 {
	return c.offset
}

// ZoomFactor returns the current zoom factor.
func (c *Camera) ZoomFactor() float32 {
	return c.zoom
}

// Scroll pans the view by a scroll delta in window pixels.
func (c *Camera) Scroll(dx, dy float32) {
	c.offset.X += dx
	c.offset.Y -= dy
}

// MouseDown starts a drag.
func (c *Camera) MouseDown() {
	c.dragging = true
}

// MouseUp ends a drag.
func (c *Camera) MouseUp() {
	c.dragging = false
}

// MouseMove records the pointer position and, while dragging, pans the view
// by the distance moved.
func (c *Camera) MouseMove(x, y float32) {
	p := V2(x, y)
	if c.dragging && c.hasLast {
		d := p.Sub(c.last)
		c.offset.X += d.X
		c.offset.Y -= d.Y
	}
	c.last = p
	c.hasLast = true
}

// Zoom scales the view by factor, keeping the point around (y-up pixels)
// fixed on screen. Non-positive factors are ignored.
func (c *Camera) Zoom(factor float32, around Vec2) {
	if !(factor > 0) {
		return
	}
	c.offset = around.Sub(around.Sub(c.offset).Mul(factor))
	c.zoom *= factor
}

// Matrix returns the pixel-to-clip transform for a screen of the given size:
// zoom first, then pan, then the orthographic projection.
func (c *Camera) Matrix(screenW, screenH float32) Mat4 {
	return Ortho(screenW, screenH).
		Mul(Translate(c.offset.X, c.offset.Y, 0)).
		Mul(Scale(c.zoom))
}
