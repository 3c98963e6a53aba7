package marlin

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestPositionColorLayout(t *testing.T) {
	l := PositionColorLayout()
	if l.ArrayStride != 24 {
		t.Errorf("stride = %d, want 24", l.ArrayStride)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("attributes = %d, want 2", len(l.Attributes))
	}
	pos, col := l.Attributes[0], l.Attributes[1]
	if pos.ShaderLocation != 0 || pos.Offset != 0 || pos.Format != Float32x3 {
		t.Errorf("position attribute = %+v", pos)
	}
	if col.ShaderLocation != 1 || col.Offset != 12 || col.Format != Float32x3 {
		t.Errorf("color attribute = %+v", col)
	}
}

func TestPackVertices(t *testing.T) {
	l := PositionColorLayout()
	vs := []Vertex{
		{Position: V(0, 0.5, 0), Color: Color{1, 0, 0, 1}},
		{Position: V(-0.5, -0.5, 0), Color: Color{0, 1, 0, 1}},
	}
	buf := l.Pack(vs)
	if len(buf) != 48 {
		t.Fatalf("len = %d, want 48", len(buf))
	}
	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	// First vertex: position then color.
	for i, want := range []float32{0, 0.5, 0, 1, 0, 0} {
		if got := f32(i * 4); got != want {
			t.Errorf("word %d = %v, want %v", i, got, want)
		}
	}
	// Second vertex starts one stride in.
	for i, want := range []float32{-0.5, -0.5, 0, 0, 1, 0} {
		if got := f32(24 + i*4); got != want {
			t.Errorf("word %d = %v, want %v", 6+i, got, want)
		}
	}
}
