package marlin

import (
	"image/color"
	"testing"
)

func demoTriangleObject() *Object {
	tri := NewTriangle(
		Vertex{Position: V(0, 0.5, 0), Color: Color{1, 0, 0, 1}},
		Vertex{Position: V(-0.5, -0.5, 0), Color: Color{0, 1, 0, 1}},
		Vertex{Position: V(0.5, -0.5, 0), Color: Color{0, 0, 1, 1}},
	)
	o := NewTriangleObject([]*Triangle{tri})
	o.UseVertexColor = true
	return o
}

func TestRasterizeDemoTriangle(t *testing.T) {
	dc := NewContext(100, 100, NewPassThroughShader())
	dc.ClearColor = Color{0.1, 0.2, 0.3, 1}
	dc.ClearColorBuffer()
	dc.DrawObject(demoTriangleObject())

	background := Color{0.1, 0.2, 0.3, 1}.NRGBA()
	at := func(x, y int) color.NRGBA {
		return dc.ColorBuffer.NRGBAAt(x, y)
	}

	// Outside the triangle the clear color survives.
	for _, p := range [][2]int{{2, 2}, {97, 2}, {2, 97}, {97, 97}, {50, 10}} {
		if got := at(p[0], p[1]); got != background {
			t.Errorf("pixel (%d,%d) = %+v, want background %+v", p[0], p[1], got, background)
		}
	}

	// Near each corner the matching channel dominates and alpha is opaque.
	corners := []struct {
		x, y    int
		channel string
	}{
		{50, 28, "r"}, // top corner, red
		{28, 72, "g"}, // bottom left, green
		{72, 72, "b"}, // bottom right, blue
	}
	for _, c := range corners {
		px := at(c.x, c.y)
		if px == background {
			t.Fatalf("pixel (%d,%d) not covered", c.x, c.y)
		}
		if px.A != 255 {
			t.Errorf("pixel (%d,%d) alpha = %d, want 255", c.x, c.y, px.A)
		}
		var dominant string
		switch {
		case px.R >= px.G && px.R >= px.B:
			dominant = "r"
		case px.G >= px.R && px.G >= px.B:
			dominant = "g"
		default:
			dominant = "b"
		}
		if dominant != c.channel {
			t.Errorf("pixel (%d,%d) = %+v, want %s dominant", c.x, c.y, px, c.channel)
		}
	}
}

func TestBackFaceCulling(t *testing.T) {
	// The demo triangle with reversed winding is back-facing and culled.
	tri := NewTriangle(
		Vertex{Position: V(0, 0.5, 0), Color: White},
		Vertex{Position: V(0.5, -0.5, 0), Color: White},
		Vertex{Position: V(-0.5, -0.5, 0), Color: White},
	)
	o := NewTriangleObject([]*Triangle{tri})
	o.UseVertexColor = true

	dc := NewContext(64, 64, NewPassThroughShader())
	dc.DrawObject(o)
	if got := dc.ColorBuffer.NRGBAAt(32, 40); got.A != 0 {
		t.Fatalf("culled triangle drew pixel %+v", got)
	}

	dc.Cull = CullNone
	dc.DrawObject(o)
	if got := dc.ColorBuffer.NRGBAAt(32, 40); got.A != 255 {
		t.Fatalf("CullNone did not draw, pixel %+v", got)
	}
}

func TestClipTriangleAgainstVolume(t *testing.T) {
	inside := NewTriangle(
		Vertex{Output: VectorW{0, 0.5, 0, 1}},
		Vertex{Output: VectorW{-0.5, -0.5, 0, 1}},
		Vertex{Output: VectorW{0.5, -0.5, 0, 1}},
	)
	if got := ClipTriangle(inside); len(got) != 1 {
		t.Errorf("inside triangle clipped to %d pieces, want 1", len(got))
	}

	outside := NewTriangle(
		Vertex{Output: VectorW{5, 5, 0, 1}},
		Vertex{Output: VectorW{6, 5, 0, 1}},
		Vertex{Output: VectorW{5, 6, 0, 1}},
	)
	if got := ClipTriangle(outside); got != nil {
		t.Errorf("outside triangle produced %d pieces, want none", len(got))
	}

	// One vertex past the right plane gets cut into two triangles.
	straddle := NewTriangle(
		Vertex{Output: VectorW{0, -0.5, 0, 1}},
		Vertex{Output: VectorW{2, 0, 0, 1}},
		Vertex{Output: VectorW{0, 0.5, 0, 1}},
	)
	if got := ClipTriangle(straddle); len(got) != 2 {
		t.Errorf("straddling triangle clipped to %d pieces, want 2", len(got))
	}
}

func TestDepthBuffer(t *testing.T) {
	// Two overlapping triangles at different depths; the nearer one wins
	// regardless of draw order.
	near := NewTriangle(
		Vertex{Position: V(0, 0.9, -0.5), Color: Red},
		Vertex{Position: V(-0.9, -0.9, -0.5), Color: Red},
		Vertex{Position: V(0.9, -0.9, -0.5), Color: Red},
	)
	far := NewTriangle(
		Vertex{Position: V(0, 0.9, 0.5), Color: Blue},
		Vertex{Position: V(-0.9, -0.9, 0.5), Color: Blue},
		Vertex{Position: V(0.9, -0.9, 0.5), Color: Blue},
	)
	no := NewTriangleObject([]*Triangle{near})
	no.UseVertexColor = true
	fo := NewTriangleObject([]*Triangle{far})
	fo.UseVertexColor = true

	dc := NewContext(32, 32, NewPassThroughShader())
	dc.DrawObject(no)
	dc.DrawObject(fo)

	if got, want := dc.ColorBuffer.NRGBAAt(16, 16), Red.NRGBA(); got != want {
		t.Fatalf("center pixel = %+v, want near color %+v", got, want)
	}
}

func TestDrawMeshMatchesDrawTriangle(t *testing.T) {
	// The parallel mesh path and the single-triangle path must produce the
	// same image for non-overlapping geometry.
	var triangles []*Triangle
	for i := 0; i < 8; i++ {
		x := -0.9 + float64(i)*0.22
		triangles = append(triangles, NewTriangle(
			Vertex{Position: V(x, 0.4, 0), Color: White},
			Vertex{Position: V(x, -0.4, 0), Color: White},
			Vertex{Position: V(x+0.18, -0.4, 0), Color: White},
		))
	}
	o := NewTriangleObject(triangles)
	o.UseVertexColor = true

	a := NewContext(64, 64, NewPassThroughShader())
	a.DrawMesh(o.Mesh, o)

	b := NewContext(64, 64, NewPassThroughShader())
	for _, tri := range triangles {
		b.DrawTriangle(tri, o)
	}

	for i := range a.ColorBuffer.Pix {
		if a.ColorBuffer.Pix[i] != b.ColorBuffer.Pix[i] {
			t.Fatalf("pixel byte %d differs: %d != %d", i, a.ColorBuffer.Pix[i], b.ColorBuffer.Pix[i])
		}
	}
}
