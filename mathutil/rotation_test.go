package mathutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDeg2RadExact(t *testing.T) {
	cases := []struct {
		deg, rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{270, 3 * math.Pi / 2},
		{-90, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := Deg2Rad(c.deg); got != c.rad {
			t.Errorf("Deg2Rad(%g) = %v, want %v", c.deg, got, c.rad)
		}
	}
}

func vecNear(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestSingleAxisRotations(t *testing.T) {
	const tol = 1e-12
	x := r3.Vec{X: 1}
	y := r3.Vec{Y: 1}
	z := r3.Vec{Z: 1}

	// 90° about Z sends x to y.
	if got := RotZ(Deg2Rad(90)).MulVec(x); !vecNear(got, y, tol) {
		t.Errorf("RotZ(90°)·x = %+v, want y", got)
	}
	// 90° about X sends y to z.
	if got := RotX(Deg2Rad(90)).MulVec(y); !vecNear(got, z, tol) {
		t.Errorf("RotX(90°)·y = %+v, want z", got)
	}
	// 90° about Y sends z to x.
	if got := RotY(Deg2Rad(90)).MulVec(z); !vecNear(got, x, tol) {
		t.Errorf("RotY(90°)·z = %+v, want x", got)
	}
}

func TestEulerZYXOrder(t *testing.T) {
	const tol = 1e-12
	// Z is applied first: with rz=90° then ry=90°, the x axis goes to y
	// (via Z) and stays y (Y rotation fixes its own axis).
	m := EulerZYX(0, Deg2Rad(90), Deg2Rad(90))
	got := m.MulVec(r3.Vec{X: 1})
	if !vecNear(got, r3.Vec{Y: 1}, tol) {
		t.Errorf("EulerZYX(0,90°,90°)·x = %+v, want y", got)
	}

	// Opposite order would differ: ry=90° sends x to -z, then rz fixes z.
	m = EulerZYX(0, Deg2Rad(90), 0)
	got = m.MulVec(r3.Vec{X: 1})
	if !vecNear(got, r3.Vec{Z: -1}, tol) {
		t.Errorf("EulerZYX(0,90°,0)·x = %+v, want -z", got)
	}
}

func TestEulerZYXMatchesComposition(t *testing.T) {
	rx, ry, rz := Deg2Rad(30), Deg2Rad(-45), Deg2Rad(120)
	want := Mat3Mul(RotX(rx), Mat3Mul(RotY(ry), RotZ(rz)))
	got := EulerZYX(rx, ry, rz)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("EulerZYX differs from Rx·Ry·Rz at %d: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestPlacement(t *testing.T) {
	const tol = 1e-12
	pos := r3.Vec{X: 100, Y: -50, Z: 55}
	m := Placement(r3.Vec{}, pos)
	if got := m.Translation(); got != pos {
		t.Errorf("Translation() = %+v, want %+v", got, pos)
	}
	// Identity rotation: a point is just translated.
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	if got := m.MulPoint(p); !vecNear(got, r3.Add(p, pos), tol) {
		t.Errorf("MulPoint(%+v) = %+v, want %+v", p, got, r3.Add(p, pos))
	}

	// 90° about Z then translate: x axis point lands at pos + y.
	m = Placement(r3.Vec{Z: Deg2Rad(90)}, pos)
	want := r3.Add(pos, r3.Vec{Y: 1})
	if got := m.MulPoint(r3.Vec{X: 1}); !vecNear(got, want, tol) {
		t.Errorf("rotated MulPoint = %+v, want %+v", got, want)
	}
}
