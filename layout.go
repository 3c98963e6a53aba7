package marlin

import (
	"encoding/binary"
	"math"
)

// AttributeFormat is the wire format of one vertex attribute.
type AttributeFormat int

const (
	Float32x2 AttributeFormat = iota
	Float32x3
	Float32x4
)

// Size returns the attribute size in bytes.
func (f AttributeFormat) Size() int {
	switch f {
	case Float32x2:
		return 8
	case Float32x3:
		return 12
	case Float32x4:
		return 16
	}
	return 0
}

func (f AttributeFormat) components() int {
	return f.Size() / 4
}

// VertexAttribute describes one slot of the vertex input binding.
type VertexAttribute struct {
	ShaderLocation int
	Offset         int
	Format         AttributeFormat
}

// VertexLayout describes an interleaved vertex buffer binding.
type VertexLayout struct {
	ArrayStride int
	Attributes  []VertexAttribute
}

// PositionColorLayout is the binding contract of the pass-through pipeline:
// slot 0 position, slot 1 color, both three 32-bit floats, interleaved.
func PositionColorLayout() VertexLayout {
	return VertexLayout{
		ArrayStride: Float32x3.Size() * 2,
		Attributes: []VertexAttribute{
			{ShaderLocation: 0, Offset: 0, Format: Float32x3},
			{ShaderLocation: 1, Offset: Float32x3.Size(), Format: Float32x3},
		},
	}
}

// Pack serializes vertices into the interleaved little-endian buffer this
// layout describes. Only position and color attributes are understood;
// locations are 0 and 1 respectively.
func (l VertexLayout) Pack(vertices []Vertex) []byte {
	buf := make([]byte, l.ArrayStride*len(vertices))
	for i, v := range vertices {
		base := i * l.ArrayStride
		for _, a := range l.Attributes {
			var values [4]float64
			switch a.ShaderLocation {
			case 0:
				values = [4]float64{v.Position.X, v.Position.Y, v.Position.Z, 1}
			case 1:
				values = [4]float64{v.Color.R, v.Color.G, v.Color.B, v.Color.A}
			}
			for c := 0; c < a.Format.components(); c++ {
				bits := math.Float32bits(float32(values[c]))
				binary.LittleEndian.PutUint32(buf[base+a.Offset+c*4:], bits)
			}
		}
	}
	return buf
}
