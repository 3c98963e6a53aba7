package marlin

import "math"

// Shader is a vertex/fragment stage pair. Vertex is invoked once per input
// vertex and must fill in the clip-space Output; Fragment is invoked once
// per covered sample with perspective-correct interpolated attributes and
// returns the final color for that sample. Both must be pure functions of
// their inputs.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// MatrixShader is implemented by shaders whose vertex stage applies a
// transformation matrix, letting the context compose an object's model
// matrix in for the duration of a draw.
type MatrixShader interface {
	Shader
	TransformMatrix() Matrix
	SetTransformMatrix(Matrix)
}

// PassThroughShader forwards pre-transformed geometry untouched: the vertex
// stage promotes the 3-component position to clip space with w = 1 and
// leaves the color alone, and the fragment stage emits the interpolated
// color with alpha forced to 1. No matrix is ever applied.
type PassThroughShader struct{}

func NewPassThroughShader() *PassThroughShader {
	return &PassThroughShader{}
}

func (s *PassThroughShader) Vertex(v Vertex) Vertex {
	v.Output = VectorW{v.Position.X, v.Position.Y, v.Position.Z, 1}
	return v
}

func (s *PassThroughShader) Fragment(v Vertex, fromObject *Object) Color {
	return v.Color.Opaque()
}

// SolidColorShader renders everything in one color.
type SolidColorShader struct {
	Matrix Matrix
	Color  Color
}

func NewSolidColorShader(matrix Matrix, color Color) *SolidColorShader {
	return &SolidColorShader{matrix, color}
}

func (s *SolidColorShader) TransformMatrix() Matrix {
	return s.Matrix
}

func (s *SolidColorShader) SetTransformMatrix(m Matrix) {
	s.Matrix = m
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}

// PhongShader implements Phong shading with an optional texture.
type PhongShader struct {
	Matrix         Matrix
	LightDirection Vector
	CameraPosition Vector
	AmbientColor   Color
	DiffuseColor   Color
	SpecularColor  Color
	SpecularPower  float64
}

func NewPhongShader(matrix Matrix, lightDirection, cameraPosition Vector, ambient, diffuse Color) *PhongShader {
	return &PhongShader{
		Matrix:         matrix,
		LightDirection: lightDirection,
		CameraPosition: cameraPosition,
		AmbientColor:   ambient,
		DiffuseColor:   diffuse,
		SpecularColor:  White,
		SpecularPower:  0,
	}
}

func (s *PhongShader) TransformMatrix() Matrix {
	return s.Matrix
}

func (s *PhongShader) SetTransformMatrix(m Matrix) {
	s.Matrix = m
}

func (s *PhongShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	normalMatrix := s.Matrix.Inverse().Transpose()
	v.Normal = normalMatrix.MulDirection(v.Normal)
	return v
}

func (s *PhongShader) Fragment(v Vertex, fromObject *Object) Color {
	// Objects flagged to use vertex colors skip lighting and texturing.
	if fromObject.UseVertexColor {
		return v.Color
	}
	light := s.AmbientColor
	color := fromObject.Color
	if fromObject.Texture != nil {
		sample := fromObject.Texture.Sample(v.Texture.X, v.Texture.Y)
		if sample.A > 0 {
			color = color.Lerp(sample.DivScalar(sample.A), sample.A)
		}
	}
	diffuse := math.Max(v.Normal.Dot(s.LightDirection), 0)
	light = light.Add(s.DiffuseColor.MulScalar(diffuse))
	if diffuse > 0 && s.SpecularPower > 0 {
		camera := s.CameraPosition.Sub(v.Position).Normalize()
		reflected := s.LightDirection.Negate().Reflect(v.Normal)
		specular := math.Max(camera.Dot(reflected), 0)
		if specular > 0 {
			specular = math.Pow(specular, s.SpecularPower)
			light = light.Add(s.SpecularColor.MulScalar(specular))
		}
	}
	if color.A < 1 {
		return color.Mul(light).Min(White).DivScalar(color.A).Alpha(color.A)
	}
	return color.Mul(light).Min(White).Alpha(color.A)
}
