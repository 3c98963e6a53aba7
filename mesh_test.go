package marlin

import (
	"testing"
)

// planeMesh builds an n x n grid of quads in the XY plane.
func planeMesh(n int) *Mesh {
	var triangles []*Triangle
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			x0, y0 := float64(x), float64(y)
			x1, y1 := x0+1, y0+1
			triangles = append(triangles,
				NewTriangleForPoints(V(x0, y0, 0), V(x1, y0, 0), V(x1, y1, 0)),
				NewTriangleForPoints(V(x0, y0, 0), V(x1, y1, 0), V(x0, y1, 0)),
			)
		}
	}
	return NewTriangleMesh(triangles)
}

func TestMeshBoundingBox(t *testing.T) {
	m := planeMesh(4)
	box := m.BoundingBox()
	if box.Min != (V(0, 0, 0)) || box.Max != (V(4, 4, 0)) {
		t.Errorf("box = %+v", box)
	}

	m.Transform(Translate(V(1, 2, 3)))
	box = m.BoundingBox()
	if box.Min != (V(1, 2, 3)) || box.Max != (V(5, 6, 3)) {
		t.Errorf("box after transform = %+v", box)
	}
}

func TestMeshCenter(t *testing.T) {
	m := planeMesh(2)
	m.Center()
	c := m.BoundingBox().Center()
	if c != (V(0, 0, 0)) {
		t.Errorf("center = %+v, want origin", c)
	}
}

func TestSmoothNormals(t *testing.T) {
	m := planeMesh(2)
	m.SmoothNormals()
	for _, tri := range m.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if v.Normal != (V(0, 0, 1)) {
				t.Fatalf("normal = %+v, want +Z", v.Normal)
			}
		}
	}
}

func TestSimplify(t *testing.T) {
	m := planeMesh(8)
	before := len(m.Triangles)
	m.Simplify(0.25)
	after := len(m.Triangles)
	if after == 0 {
		t.Fatal("simplify removed everything")
	}
	if after >= before {
		t.Fatalf("simplify did not reduce: %d -> %d", before, after)
	}
	// A coplanar mesh stays in its plane.
	box := m.BoundingBox()
	if box.Min.Z != 0 || box.Max.Z != 0 {
		t.Errorf("simplified mesh left the plane: %+v", box)
	}
}

func TestMeshSetColorAndCopy(t *testing.T) {
	m := planeMesh(1)
	m.SetColor(Blue)
	c := m.Copy()
	c.SetColor(Red)
	if m.Triangles[0].V1.Color != Blue {
		t.Error("copy is not independent of the original")
	}
	if c.Triangles[0].V1.Color != Red {
		t.Error("copied mesh did not take the new color")
	}
}
