package marlin

import (
	"bytes"
	"image/png"
	"testing"
)

func TestSceneSupersampling(t *testing.T) {
	scene := NewScene(V(0, 0, 1), V(0, 0, 0), V(0, 1, 0), 60, 64, 2, NewPassThroughShader())
	im := scene.Render(false)
	b := im.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("rendered size = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func TestSceneDrawToWriter(t *testing.T) {
	scene := NewScene(V(0, 0, 1), V(0, 0, 0), V(0, 1, 0), 60, 32, 1, NewPassThroughShader())
	scene.Context.ClearColor = Color{0.1, 0.2, 0.3, 1}

	var buf bytes.Buffer
	if err := scene.DrawToWriter(false, &buf, []*Object{demoTriangleObject()}); err != nil {
		t.Fatal(err)
	}
	im, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if im.Bounds().Dx() != 32 {
		t.Errorf("decoded width = %d, want 32", im.Bounds().Dx())
	}
	// Center of the triangle must not be the clear color.
	r, g, b, _ := im.At(16, 20).RGBA()
	cr, cg, cb, _ := Color{0.1, 0.2, 0.3, 1}.NRGBA().RGBA()
	if r == cr && g == cg && b == cb {
		t.Error("triangle center still shows the clear color")
	}
}

func TestFitObjectsToSceneNoObjects(t *testing.T) {
	shader := NewSolidColorShader(Identity(), White)
	scene := NewScene(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0), 45, 16, 1, shader)
	matrix := scene.FitObjectsToScene(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0), 45, 1, 1, 999)
	want := LookAt(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0)).Perspective(45, 1, 1, 999)
	if matrix != want {
		t.Error("empty scene must fall back to the plain view projection")
	}
}

func TestFitObjectsToSceneContainsMesh(t *testing.T) {
	shader := NewSolidColorShader(Identity(), White)
	scene := NewScene(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0), 45, 16, 1, shader)

	mesh, err := TessellateShape(RectangleShape{}, []Vertex{
		{Position: V(-2, 1, 0)},
		{Position: V(-2, -1, 0)},
		{Position: V(2, -1, 0)},
		{Position: V(2, 1, 0)},
	})
	if err != nil {
		t.Fatal(err)
	}
	scene.AddObject(NewObjectFromMesh(mesh))

	matrix := scene.FitObjectsToScene(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0), 45, 1, 1, 999)
	for _, c := range mesh.BoundingBox().Corners() {
		if matrix.MulPositionW(c).Outside() {
			t.Fatalf("fitted projection clips corner %+v", c)
		}
	}
}
