package marlin

import (
	"github.com/fogleman/simplify"
)

// Mesh is a bag of triangles and lines.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
	box       *Box
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines, nil}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines, nil}
}

func (m *Mesh) dirty() {
	m.box = nil
}

func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		a := *t
		triangles[i] = &a
	}
	lines := make([]*Line, len(m.Lines))
	for i, l := range m.Lines {
		a := *l
		lines[i] = &a
	}
	return NewMesh(triangles, lines)
}

func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
	m.Lines = append(m.Lines, b.Lines...)
	m.dirty()
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		var boxes []Box
		for _, t := range m.Triangles {
			boxes = append(boxes, t.BoundingBox())
		}
		for _, l := range m.Lines {
			boxes = append(boxes, l.BoundingBox())
		}
		box := BoxForBoxes(boxes)
		m.box = &box
	}
	return *m.box
}

func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
	for _, l := range m.Lines {
		l.Transform(matrix)
	}
	m.dirty()
}

// SetColor sets the color of every vertex in the mesh.
func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
	for _, l := range m.Lines {
		l.V1.Color = c
		l.V2.Color = c
	}
}

// MoveTo translates the mesh so its bounding box lines up with position at
// the given anchor (0..1 in each axis).
func (m *Mesh) MoveTo(position, anchor Vector) {
	matrix := Translate(position.Sub(m.BoundingBox().Anchor(anchor)))
	m.Transform(matrix)
}

// Center translates the mesh so its bounding box is centered on the origin.
func (m *Mesh) Center() {
	m.MoveTo(Vector{}, Vector{0.5, 0.5, 0.5})
}

// SmoothNormals replaces each vertex normal with the area-weighted average
// of the face normals sharing that position.
func (m *Mesh) SmoothNormals() {
	lookup := make(map[Vector]Vector)
	for _, t := range m.Triangles {
		n := t.Normal()
		lookup[t.V1.Position] = lookup[t.V1.Position].Add(n)
		lookup[t.V2.Position] = lookup[t.V2.Position].Add(n)
		lookup[t.V3.Position] = lookup[t.V3.Position].Add(n)
	}
	for k, v := range lookup {
		lookup[k] = v.Normalize()
	}
	for _, t := range m.Triangles {
		t.V1.Normal = lookup[t.V1.Position]
		t.V2.Normal = lookup[t.V2.Position]
		t.V3.Normal = lookup[t.V3.Position]
	}
}

// Simplify decimates the triangle mesh to the given fraction of its
// original face count. Vertex attributes other than position are rebuilt
// from face normals, so colored or textured meshes lose those attributes.
func (m *Mesh) Simplify(factor float64) {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		v1 := simplify.Vector(t.V1.Position)
		v2 := simplify.Vector(t.V2.Position)
		v3 := simplify.Vector(t.V3.Position)
		st[i] = simplify.NewTriangle(v1, v2, v3)
	}
	sm := simplify.NewMesh(st).Simplify(factor)
	triangles := make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		p1 := Vector(t.V1)
		p2 := Vector(t.V2)
		p3 := Vector(t.V3)
		triangles[i] = NewTriangleForPoints(p1, p2, p3)
	}
	m.Triangles = triangles
	m.dirty()
}
