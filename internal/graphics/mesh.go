package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex layout: position (3 floats), color (4), tex coord (2), normal (3),
// interleaved. Attribute locations 0..3 in that order.
const (
	vertexFloats = 12
	vertexStride = vertexFloats * 4
)

// Mesh is indexed triangle geometry uploaded to GL buffers.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// NewMesh uploads interleaved vertices and triangle indices.
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 7*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, vertexStride, 9*4)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Draw issues the mesh's indexed draw call.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
}

// Release deletes the mesh's GL objects.
func (m *Mesh) Release() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
