package marlin

import "math"

// ShapeKind describes a 2D shape that can be tessellated into a triangle
// list from a fixed number of defining vertices.
type ShapeKind interface {
	// RequisitePoints is the exact number of vertices the shape requires.
	RequisitePoints() int
	// tessellate expands the defining vertices into a triangle list,
	// three entries per triangle. len(vertices) == RequisitePoints().
	tessellate(vertices []Vertex) []Vertex

	overError() string
	underError() string
}

// TriangleShape takes its three vertices as-is.
type TriangleShape struct{}

func (TriangleShape) RequisitePoints() int { return 3 }

func (TriangleShape) tessellate(vertices []Vertex) []Vertex {
	return vertices
}

func (TriangleShape) overError() string  { return "a triangle requires only three vertices" }
func (TriangleShape) underError() string { return "a triangle requires at least three vertices" }

// RectangleShape splits four corner vertices into two triangles.
type RectangleShape struct{}

func (RectangleShape) RequisitePoints() int { return 4 }

func (RectangleShape) tessellate(vertices []Vertex) []Vertex {
	return []Vertex{
		vertices[0], vertices[1], vertices[2],
		vertices[2], vertices[3], vertices[0],
	}
}

func (RectangleShape) overError() string  { return "a rectangle requires only four vertices" }
func (RectangleShape) underError() string { return "a rectangle requires at least four vertices" }

// CircleShape fans one-degree wedges around a single center vertex.
type CircleShape struct {
	Radius float64
}

func (CircleShape) RequisitePoints() int { return 1 }

func (c CircleShape) tessellate(vertices []Vertex) []Vertex {
	center := vertices[0]
	rim := func(theta float64) Vertex {
		v := center
		v.Position.X = center.Position.X + c.Radius*math.Cos(theta)
		v.Position.Y = center.Position.Y + c.Radius*math.Sin(theta)
		v.Position.Z = 0
		return v
	}
	points := make([]Vertex, 0, 3*360)
	points = append(points, rim(0), center)
	for i := 1; i < 360; i++ {
		theta := float64(i) * math.Pi / 180
		points = append(points, rim(theta), rim(theta), center)
	}
	points = append(points, rim(0))
	// Reverse so the wedges wind counter-clockwise for the front face.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

func (CircleShape) overError() string  { return "a circle requires only one vertex for its center" }
func (CircleShape) underError() string { return "a circle requires a vertex for its center" }

// ShapeError reports a shape defined with the wrong number of vertices.
type ShapeError struct {
	Kind ShapeKind
	Over bool
}

func (e *ShapeError) Error() string {
	if e.Over {
		return e.Kind.overError()
	}
	return e.Kind.underError()
}

// TessellateShape expands a shape into a triangle mesh. The number of
// vertices must match the shape's requisite count exactly.
func TessellateShape(kind ShapeKind, vertices []Vertex) (*Mesh, error) {
	if len(vertices) < kind.RequisitePoints() {
		return nil, &ShapeError{Kind: kind}
	}
	if len(vertices) > kind.RequisitePoints() {
		return nil, &ShapeError{Kind: kind, Over: true}
	}
	points := kind.tessellate(vertices)
	triangles := make([]*Triangle, 0, len(points)/3)
	for i := 0; i+2 < len(points); i += 3 {
		triangles = append(triangles, &Triangle{points[i], points[i+1], points[i+2]})
	}
	return NewTriangleMesh(triangles), nil
}

// NormalizeCoordinates maps pixel-space vertex positions onto normalized
// device coordinates by dividing through the target dimensions. Z is kept.
func NormalizeCoordinates(vertices []Vertex, width, height float64) []Vertex {
	normalized := make([]Vertex, len(vertices))
	for i, v := range vertices {
		v.Position.X /= width
		v.Position.Y /= height
		normalized[i] = v
	}
	return normalized
}
