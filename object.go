package marlin

import (
	"fmt"
	"net/http"
)

// Object is a renderable: a mesh plus the per-object state fragment stages
// may consult (base color, texture, model matrix).
type Object struct {
	Mesh           *Mesh
	Texture        Texture
	Color          Color
	Matrix         Matrix
	UseVertexColor bool
}

func NewEmptyObject() *Object {
	return &Object{Matrix: Identity()}
}

func NewObject(triangles []*Triangle, lines []*Line) *Object {
	return &Object{Mesh: NewMesh(triangles, lines), Matrix: Identity()}
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Matrix: Identity()}
}

func NewTriangleObject(triangles []*Triangle) *Object {
	return &Object{Mesh: NewTriangleMesh(triangles), Matrix: Identity()}
}

func NewLineObject(lines []*Line) *Object {
	return &Object{Mesh: NewLineMesh(lines), Matrix: Identity()}
}

// NewShapeObject tessellates a shape, normalizes its pixel coordinates to
// NDC for the given target size, and wraps it in an object that renders
// with its vertex colors.
func NewShapeObject(kind ShapeKind, vertices []Vertex, width, height float64) (*Object, error) {
	mesh, err := TessellateShape(kind, NormalizeCoordinates(vertices, width, height))
	if err != nil {
		return nil, err
	}
	o := NewObjectFromMesh(mesh)
	o.UseVertexColor = true
	return o, nil
}

// NewObjectFromFile loads an OBJ mesh with a neutral gray base color.
func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	o := NewObjectFromMesh(mesh)
	o.SetColor(HexColor("777"))
	return o, nil
}

// SetColor sets the base color and every mesh vertex color.
func (o *Object) SetColor(c Color) {
	o.Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}

// LoadObjectFromURL fetches and parses a remote OBJ mesh.
func LoadObjectFromURL(url string) (*Mesh, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return LoadOBJFromReader(resp.Body)
}
