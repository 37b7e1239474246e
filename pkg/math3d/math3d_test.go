package math3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, 7, 9)},
		{"sub", b.Sub(a), V3(3, 3, 3)},
		{"mul", a.Mul(b), V3(4, 10, 18)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"div", b.Div(2), V3(2, 2.5, 3)},
		{"cross", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"min", a.Min(V3(0, 5, 1)), V3(0, 2, 1)},
		{"max", a.Max(V3(0, 5, 1)), V3(1, 5, 3)},
		{"splat", Splat(3), V3(3, 3, 3)},
		{"radians", V3(180, 90, 0).Radians(), V3(math.Pi, math.Pi/2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot() = %v, want 32", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if math.Abs(n.Len()-1) > epsilon {
		t.Errorf("Normalize().Len() = %v, want 1", n.Len())
	}
	if z := (Vec3{}).Normalize(); !z.IsZero() {
		t.Errorf("zero vector normalized to %v, want zero", z)
	}
}

func TestVec3Slerp(t *testing.T) {
	half := math.Sqrt(0.5)
	tests := []struct {
		name string
		a, b Vec3
		t    float64
		want Vec3
	}{
		{"quarter arc midpoint", V3(1, 0, 0), V3(0, 1, 0), 0.5, V3(half, half, 0)},
		{"inputs are normalized", V3(2, 0, 0), V3(0, 3, 0), 0.5, V3(half, half, 0)},
		{"start", V3(0, 0, 5), V3(0, 1, 0), 0, V3(0, 0, 1)},
		{"end", V3(0, 0, 5), V3(0, 1, 0), 1, V3(0, 1, 0)},
		{"parallel", V3(1, 0, 0), V3(4, 0, 0), 0.5, V3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Slerp(tt.b, tt.t)
			if !vecNear(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlerpStaysOnUnitSphere(t *testing.T) {
	a := V3(-1.618, 0, 1)
	b := V3(0, 1, 1.618)
	for i := 0; i <= 10; i++ {
		p := a.Slerp(b, float64(i)/10)
		if math.Abs(p.Len()-1) > 1e-6 {
			t.Errorf("Slerp(%v) has length %v, want 1", float64(i)/10, p.Len())
		}
	}
}

func TestRotations(t *testing.T) {
	quarter := math.Pi / 2
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"x turns y into z", RotateX(quarter), V3(0, 1, 0), V3(0, 0, 1)},
		{"y turns z into x", RotateY(quarter), V3(0, 0, 1), V3(1, 0, 0)},
		{"z turns x into y", RotateZ(quarter), V3(1, 0, 0), V3(0, 1, 0)},
		{"identity", Identity(), V3(1, 2, 3), V3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.MulVec3(tt.in)
			if !vecNear(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEulerZYXAppliesXFirst(t *testing.T) {
	quarter := math.Pi / 2
	m := EulerZYX(V3(quarter, 0, quarter))

	// X first sends +Y to +Z, which Z then leaves alone.
	got := m.MulVec3(V3(0, 1, 0))
	if !vecNear(got, V3(0, 0, 1)) {
		t.Errorf("got %v, want (0, 0, 1)", got)
	}

	// The opposite order would have produced -X.
	other := RotateX(quarter).Mul(RotateZ(quarter)).MulVec3(V3(0, 1, 0))
	if vecNear(got, other) {
		t.Errorf("rotation order is not distinguishable: %v", other)
	}
}

func TestRotationIsOrthonormal(t *testing.T) {
	m := EulerZYX(V3(0.3, 1.1, -0.7))
	p := m.Mul(m.Transpose())
	id := Identity()
	for i := range p {
		if !vecNear(p[i], id[i]) {
			t.Fatalf("R·Rᵀ row %d = %v, want %v", i, p[i], id[i])
		}
	}
}

func TestDiagThenRotate(t *testing.T) {
	m := RotateZ(math.Pi / 2).Mul(Diag(V3(2, 3, 4)))
	got := m.MulVec3(V3(1, 1, 1))
	if !vecNear(got, V3(-3, 2, 4)) {
		t.Errorf("got %v, want (-3, 2, 4)", got)
	}
}
