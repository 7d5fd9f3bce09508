package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"roadrush/internal/desktop/batch"
)

// glOffset converts a byte offset to unsafe.Pointer for VBO attribute offsets.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// stream is a VAO + VBO pair re-filled every frame.
type stream struct {
	vao, vbo uint32
	res      int32 // uResolution location
}

// newStream lays out interleaved float attributes of the given component
// counts at locations 0..n-1.
func newStream(prog uint32, components ...int32) stream {
	var s stream
	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	var stride int32
	for _, c := range components {
		stride += c * 4
	}
	off := 0
	for i, c := range components {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), c, gl.FLOAT, false, stride, glOffset(off))
		off += int(c) * 4
	}
	gl.BindVertexArray(0)

	s.res = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	return s
}

func (s stream) draw(prog uint32, verts []float32, count, fbW, fbH int) {
	gl.UseProgram(prog)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.Uniform2f(s.res, float32(fbW), float32(fbH))
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
}

func (s stream) release() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
}

// Renderer draws a batch.Batch: all rects, then all glyphs blended on top.
type Renderer struct {
	rectProg  uint32
	glyphProg uint32
	rects     stream
	glyphs    stream
	atlasTex  uint32
}

func NewRenderer(atlas *batch.Atlas) (*Renderer, error) {
	rectProg, err := buildProgram("rect", rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, err
	}
	glyphProg, err := buildProgram("glyph", glyphVertSrc, glyphFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, err
	}

	r := &Renderer{
		rectProg:  rectProg,
		glyphProg: glyphProg,
		rects:     newStream(rectProg, 2, 4),
		glyphs:    newStream(glyphProg, 2, 2, 4),
	}
	gl.UseProgram(glyphProg)
	gl.Uniform1i(gl.GetUniformLocation(glyphProg, gl.Str("uAtlas\x00")), 0)

	if err := r.uploadAtlas(atlas); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) uploadAtlas(atlas *batch.Atlas) error {
	if atlas == nil || atlas.Image == nil {
		return fmt.Errorf("font atlas: no image")
	}
	size := atlas.Image.Bounds().Size()
	gl.GenTextures(1, &r.atlasTex)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	for _, p := range [][2]int32{
		{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
		{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	return nil
}

// Draw clears to the batch background and flushes its geometry.
func (r *Renderer) Draw(b *batch.Batch, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := b.Bg.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if n := b.QuadVertices(); n > 0 {
		r.rects.draw(r.rectProg, b.Quads, n, fbW, fbH)
	}
	if n := b.TextVertices(); n > 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		r.glyphs.draw(r.glyphProg, b.Glyphs, n, fbW, fbH)
		gl.Disable(gl.BLEND)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	r.rects.release()
	r.glyphs.release()
	gl.DeleteProgram(r.rectProg)
	gl.DeleteProgram(r.glyphProg)
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
}
