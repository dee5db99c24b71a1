package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen render target with one color and one depth
// texture attachment.
type Framebuffer struct {
	ID uint32
}

// NewFramebuffer creates a framebuffer object and attaches the color and
// depth textures. The framebuffer is left unbound.
func NewFramebuffer(color, depth *Texture) (*Framebuffer, error) {
	var id uint32
	gl.GenFramebuffers(1, &id)
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color.ID, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, depth.ID, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &id)
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return &Framebuffer{ID: id}, nil
}

// Bind makes the framebuffer the active draw target.
func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.ID)
}

// Release deletes the framebuffer object. Attachments are owned and
// released by the caller.
func (f *Framebuffer) Release() {
	gl.DeleteFramebuffers(1, &f.ID)
}

// VertexArray is a bare vertex array object with no attached buffers,
// used as the vertex source for fullscreen-triangle draws.
type VertexArray struct {
	ID uint32
}

// NewVertexArray creates an empty vertex array object.
func NewVertexArray() *VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArray{ID: id}
}

// Bind makes the vertex array current.
func (v *VertexArray) Bind() {
	gl.BindVertexArray(v.ID)
}

// Release deletes the vertex array object.
func (v *VertexArray) Release() {
	gl.DeleteVertexArrays(1, &v.ID)
}
