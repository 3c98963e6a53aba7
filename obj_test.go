package marlin

import "testing"

const quadOBJ = `# a unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestLoadOBJFromBytes(t *testing.T) {
	mesh, err := LoadOBJFromBytes([]byte(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Triangles) != 2 {
		t.Fatalf("triangles = %d, want 2 (fan-triangulated quad)", len(mesh.Triangles))
	}
	tri := mesh.Triangles[0]
	if tri.V1.Normal != (V(0, 0, 1)) {
		t.Errorf("normal = %+v, want +Z", tri.V1.Normal)
	}
	if tri.V2.Texture != (V(1, 0, 0)) {
		t.Errorf("texture = %+v, want (1,0,0)", tri.V2.Texture)
	}
	box := mesh.BoundingBox()
	if box.Min != (V(0, 0, 0)) || box.Max != (V(1, 1, 0)) {
		t.Errorf("box = %+v", box)
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := LoadOBJFromBytes([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Triangles) != 1 {
		t.Fatalf("triangles = %d, want 1", len(mesh.Triangles))
	}
	if mesh.Triangles[0].V2.Position != (V(1, 0, 0)) {
		t.Errorf("V2 = %+v", mesh.Triangles[0].V2.Position)
	}
}

func TestLoadOBJFaceWithoutNormals(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := LoadOBJFromBytes([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	// FixNormals fills in the face normal.
	if mesh.Triangles[0].V1.Normal != (V(0, 0, 1)) {
		t.Errorf("normal = %+v, want computed +Z", mesh.Triangles[0].V1.Normal)
	}
}
