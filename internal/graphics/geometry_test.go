package graphics

import (
	"math"
	"testing"
)

func TestBuildSphereCounts(t *testing.T) {
	segments, rings := 16, 16
	vertices, indices := BuildSphere(segments, rings, 1)

	wantVerts := (segments + 1) * (rings + 1) * vertexFloats
	if len(vertices) != wantVerts {
		t.Errorf("expected %d vertex floats, got %d", wantVerts, len(vertices))
	}
	wantIndices := segments * rings * 6
	if len(indices) != wantIndices {
		t.Errorf("expected %d indices, got %d", wantIndices, len(indices))
	}

	for _, idx := range indices {
		if int(idx) >= len(vertices)/vertexFloats {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildSphereGeometry(t *testing.T) {
	const radius = 2.5
	vertices, _ := BuildSphere(8, 8, radius)

	for i := 0; i < len(vertices); i += vertexFloats {
		x, y, z := vertices[i], vertices[i+1], vertices[i+2]
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(r-radius) > 1e-4 {
			t.Fatalf("vertex %d at distance %v, expected %v", i/vertexFloats, r, radius)
		}

		// Normals are unit length and point outward.
		nx, ny, nz := vertices[i+9], vertices[i+10], vertices[i+11]
		n := math.Sqrt(float64(nx*nx + ny*ny + nz*nz))
		if math.Abs(n-1) > 1e-4 {
			t.Fatalf("normal %d has length %v", i/vertexFloats, n)
		}
		dot := float64(x*nx + y*ny + z*nz)
		if dot < 0 {
			t.Fatalf("normal %d points inward", i/vertexFloats)
		}

		// Tex coords stay in [0,1].
		u, v := vertices[i+7], vertices[i+8]
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Fatalf("tex coord out of range: %v %v", u, v)
		}
	}
}

func TestBuildCube(t *testing.T) {
	const size = 2.0
	vertices, indices := BuildCube(size)

	if len(vertices) != 24*vertexFloats {
		t.Errorf("expected 24 vertices, got %d", len(vertices)/vertexFloats)
	}
	if len(indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(indices))
	}

	for i := 0; i < len(vertices); i += vertexFloats {
		for _, c := range vertices[i : i+3] {
			if c != 1 && c != -1 {
				t.Fatalf("corner coordinate %v not on the cube surface", c)
			}
		}

		// Each vertex normal is a unit axis pointing toward its face.
		nx, ny, nz := vertices[i+9], vertices[i+10], vertices[i+11]
		if math.Abs(float64(nx))+math.Abs(float64(ny))+math.Abs(float64(nz)) != 1 {
			t.Fatalf("normal %v %v %v is not a unit axis", nx, ny, nz)
		}
		dot := vertices[i]*nx + vertices[i+1]*ny + vertices[i+2]*nz
		if dot <= 0 {
			t.Fatalf("normal points away from its face")
		}
	}
}
