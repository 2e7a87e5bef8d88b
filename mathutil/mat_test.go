package mathutil

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestMat3Identity(t *testing.T) {
	id := Mat3Identity()
	v := r3.Vec{X: 1, Y: -2, Z: 3}
	if got := id.MulVec(v); got != v {
		t.Errorf("identity·v = %+v, want %+v", got, v)
	}
	if got := Mat3Mul(id, id); got != id {
		t.Errorf("id·id = %+v", got)
	}
}

func TestMat3MulAssociatesWithMulVec(t *testing.T) {
	a := RotZ(Deg2Rad(37))
	b := RotX(Deg2Rad(-112))
	v := r3.Vec{X: 0.5, Y: 2, Z: -1.25}

	left := Mat3Mul(a, b).MulVec(v)
	right := a.MulVec(b.MulVec(v))
	if !vecNear(left, right, 1e-12) {
		t.Errorf("(a·b)·v = %+v, a·(b·v) = %+v", left, right)
	}
}

func TestMat4Identity(t *testing.T) {
	id := Mat4Identity()
	if !id.IsIdentity() {
		t.Error("Mat4Identity().IsIdentity() = false")
	}
	p := r3.Vec{X: 4, Y: 5, Z: 6}
	if got := id.MulPoint(p); got != p {
		t.Errorf("identity·p = %+v, want %+v", got, p)
	}
	if got := Mat4Mul(id, id); !got.IsIdentity() {
		t.Errorf("id·id = %+v", got)
	}
}

func TestFromMat3Translation(t *testing.T) {
	rot := RotZ(Deg2Rad(90))
	tr := r3.Vec{X: 10, Y: 20, Z: 30}
	m := FromMat3Translation(rot, tr)

	if got := m.Translation(); got != tr {
		t.Errorf("Translation() = %+v, want %+v", got, tr)
	}
	// Rotation applies before the translation.
	got := m.MulPoint(r3.Vec{X: 1})
	want := r3.Add(tr, r3.Vec{Y: 1})
	if !vecNear(got, want, 1e-12) {
		t.Errorf("MulPoint = %+v, want %+v", got, want)
	}
	if m.IsIdentity() {
		t.Error("rotated matrix reported as identity")
	}
}

func TestSetTranslation(t *testing.T) {
	m := Mat4Identity()
	tr := r3.Vec{X: -1, Y: 2, Z: -3}
	m.SetTranslation(tr)
	if got := m.Translation(); got != tr {
		t.Errorf("Translation() = %+v, want %+v", got, tr)
	}
	if m.IsIdentity() {
		t.Error("translated matrix reported as identity")
	}
}
