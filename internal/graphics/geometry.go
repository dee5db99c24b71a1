package graphics

import (
	"github.com/chewxy/math32"
)

// BuildSphere generates an interleaved UV sphere. segments is the number
// of longitudinal slices, rings the number of latitudinal bands. Vertices
// are position, white color, equirectangular tex coords, and outward unit
// normals; triangles wind counter-clockwise seen from outside.
func BuildSphere(segments, rings int, radius float32) ([]float32, []uint32) {
	vertices := make([]float32, 0, (rings+1)*(segments+1)*vertexFloats)
	indices := make([]uint32, 0, rings*segments*6)

	for ring := 0; ring <= rings; ring++ {
		v := float32(ring) / float32(rings)
		phi := v * math32.Pi
		y := math32.Cos(phi)
		r := math32.Sin(phi)
		for seg := 0; seg <= segments; seg++ {
			u := float32(seg) / float32(segments)
			theta := u * 2 * math32.Pi
			x := r * math32.Cos(theta)
			z := r * math32.Sin(theta)
			vertices = append(vertices,
				radius*x, radius*y, radius*z, // position
				1, 1, 1, 1, // color
				u, v, // tex coord
				x, y, z, // normal
			)
		}
	}

	cols := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*cols + uint32(seg)
			b := a + cols
			indices = append(indices, a, a+1, b, a+1, b+1, b)
		}
	}

	return vertices, indices
}

// BuildCube generates an interleaved axis-aligned cube centered at the
// origin with the given edge length. Each face has its own four vertices
// so normals and tex coords stay flat per face; front faces wind
// counter-clockwise.
func BuildCube(size float32) ([]float32, []uint32) {
	h := size / 2

	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, 24*vertexFloats)
	indices := make([]uint32, 0, 36)
	for fi, f := range faces {
		for ci, c := range f.corners {
			vertices = append(vertices,
				c[0], c[1], c[2],
				1, 1, 1, 1,
				uvs[ci][0], uvs[ci][1],
				f.normal[0], f.normal[1], f.normal[2],
			)
		}
		base := uint32(fi * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return vertices, indices
}
