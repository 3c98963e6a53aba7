package marlin

import (
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// Scene renders a set of objects offline through a Context. The context is
// allocated at size*scale and the result is downsampled, so scale acts as a
// supersampling factor.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	eye, center, up Vector
	fovy, aspect    float64
	size, scale     int
}

// NewScene returns a scene rendering at size*scale pixels square.
func NewScene(eye, center, up Vector, fovy float64, size, scale int, shader Shader) *Scene {
	aspect := 1.0
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{context, nil, shader, eye, center, up, fovy, aspect, size, scale}
}

func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// FitObjectsToScene computes a view-projection matrix whose field of view
// is widened just enough to contain every object's bounding box.
func (s *Scene) FitObjectsToScene(eye, center, up Vector, fovy, aspect, near, far float64) Matrix {
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.Matrix.MulBox(o.Mesh.BoundingBox()))
		}
	}
	if len(boxes) == 0 {
		return LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	}
	sceneBox := BoxForBoxes(boxes)

	viewMatrix := LookAt(eye, center, up)

	// The camera looks down negative Z in view space; the widest angles of
	// the box corners against that axis set the required field of view.
	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := viewMatrix.MulPosition(corner)
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}
		if a := math.Atan(math.Abs(p.X) / absZ); a > maxAngleX {
			maxAngleX = a
		}
		if a := math.Atan(math.Abs(p.Y) / absZ); a > maxAngleY {
			maxAngleY = a
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/aspect)
	finalFovy := Degrees(math.Max(fovyFromX, fovyFromY)) * 1.05 // 5% padding

	return viewMatrix.Perspective(finalFovy, aspect, near, far)
}

// Render draws all objects and returns the final image, downsampled back
// to the scene size when supersampling.
func (s *Scene) Render(fit bool) image.Image {
	if fit {
		if ms, ok := s.Shader.(MatrixShader); ok {
			ms.SetTransformMatrix(s.FitObjectsToScene(s.eye, s.center, s.up, s.fovy, s.aspect, 1, 999))
		}
	}
	s.Context.ClearColorBuffer()
	s.Context.ClearDepthBuffer()
	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("marlin: skipping object with nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
	im := s.Context.Image()
	if s.scale > 1 {
		im = resize.Resize(uint(s.size), uint(s.size), im, resize.Bilinear)
	}
	return im
}

// Draw renders the scene and writes it to a PNG file.
func (s *Scene) Draw(fit bool, path string, objects []*Object) error {
	s.AddObjects(objects)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, s.Render(fit))
}

// DrawToWriter renders the scene and encodes it as PNG to the writer.
func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	return png.Encode(writer, s.Render(fit))
}

// GenerateScene renders objects under a Phong shader to a PNG file.
func GenerateScene(fit bool, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector, ambient, diffuse string, near, far float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return GenerateSceneToWriter(file, objects, eye, center, up, fovy, size, scale, light, ambient, diffuse, near, far, fit)
}

// GenerateSceneWithShader renders objects with the given shader to a PNG.
func GenerateSceneWithShader(fit bool, shader Shader, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int) error {
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	return scene.Draw(fit, path, objects)
}

func GenerateSceneToWriter(writer io.Writer, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector, ambient, diffuse string, near, far float64, fit bool) error {
	aspect := 1.0
	matrix := LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := NewPhongShader(matrix, light, eye, HexColor(ambient), HexColor(diffuse))
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	return scene.DrawToWriter(fit, writer, objects)
}
