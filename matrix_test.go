package marlin

import (
	"testing"

	floats "gonum.org/v1/gonum/floats/scalar"
)

func vectorsClose(a, b Vector, tol float64) bool {
	return floats.EqualWithinAbs(a.X, b.X, tol) &&
		floats.EqualWithinAbs(a.Y, b.Y, tol) &&
		floats.EqualWithinAbs(a.Z, b.Z, tol)
}

func TestIdentityKeepsW(t *testing.T) {
	out := Identity().MulPositionW(V(1, 2, 3))
	if out != (VectorW{1, 2, 3, 1}) {
		t.Errorf("MulPositionW = %+v", out)
	}
}

func TestScreenMapping(t *testing.T) {
	m := Screen(100, 100)
	tests := []struct {
		ndc  Vector
		want Vector
	}{
		{V(0, 0, 0), V(50, 50, 0.5)},
		{V(-1, 1, -1), V(0, 0, 0)},
		{V(1, -1, 1), V(100, 100, 1)},
	}
	for _, tt := range tests {
		if got := m.MulPosition(tt.ndc); !vectorsClose(got, tt.want, 1e-9) {
			t.Errorf("Screen(%+v) = %+v, want %+v", tt.ndc, got, tt.want)
		}
	}
}

func TestInverse(t *testing.T) {
	m := Translate(V(1, 2, 3)).Mul(Rotate(V(0, 1, 0), Radians(30))).Mul(Scale(V(2, 2, 2)))
	p := V(0.3, -0.7, 1.1)
	back := m.Inverse().MulPosition(m.MulPosition(p))
	if !vectorsClose(back, p, 1e-9) {
		t.Errorf("inverse round trip = %+v, want %+v", back, p)
	}
}

func TestLookAtPerspectiveDepthOrder(t *testing.T) {
	matrix := LookAt(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0)).Perspective(60, 1, 1, 100)
	nearer := matrix.MulPositionW(V(0, 0, 1))
	farther := matrix.MulPositionW(V(0, 0, -1))
	zn := nearer.Z / nearer.W
	zf := farther.Z / farther.W
	if zn >= zf {
		t.Errorf("depth order wrong: near %v, far %v", zn, zf)
	}
	if nearer.Outside() || farther.Outside() {
		t.Error("points in front of the camera must be inside the clip volume")
	}
}

func TestMulBoxContainsTransformedCorners(t *testing.T) {
	box := Box{V(-1, -1, -1), V(1, 1, 1)}
	m := Rotate(V(1, 1, 0), Radians(45)).Mul(Translate(V(3, 0, 0)))
	got := m.MulBox(box)
	eps := V(1e-9, 1e-9, 1e-9)
	got = Box{got.Min.Sub(eps), got.Max.Add(eps)}
	for _, c := range box.Corners() {
		p := m.MulPosition(c)
		if !got.Contains(p) {
			t.Fatalf("transformed corner %+v outside %+v", p, got)
		}
	}
}
