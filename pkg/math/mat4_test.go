package math

import (
	gomath "math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformVec3(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"rotate y 90", RotateY(float32(gomath.Pi / 2)), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"rotate x 90", RotateX(float32(gomath.Pi / 2)), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"rotate z 90", RotateZ(float32(gomath.Pi / 2)), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformVec3(tt.in)
			if !got.ApproxEqual(tt.want, 0.001) {
				t.Errorf("TransformVec3(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPartTransform(t *testing.T) {
	// Pivot only: a pure translation.
	m := PartTransform(Vec3{0, 12, -2}, Vec3{})
	got := m.TransformVec3(Vec3{1, 1, 1})
	if want := (Vec3{1, 13, -1}); got != want {
		t.Errorf("PartTransform translate = %v, want %v", got, want)
	}

	// Rotation is applied before the translation.
	m = PartTransform(Vec3{0, 10, 0}, Vec3{X: Pi / 2})
	got = m.TransformVec3(Vec3{0, 1, 0})
	if want := (Vec3{0, 10, 1}); !got.ApproxEqual(want, 0.001) {
		t.Errorf("PartTransform rotate = %v, want %v", got, want)
	}
}

func TestAngles(t *testing.T) {
	if got := Degrees(Pi); abs(got-180) > 0.0001 {
		t.Errorf("Degrees(Pi) = %v, want 180", got)
	}
	if got := Radians(90); abs(got-Pi/2) > 0.0001 {
		t.Errorf("Radians(90) = %v, want Pi/2", got)
	}
	if got := Degrees(Radians(37.5)); abs(got-37.5) > 0.0001 {
		t.Errorf("Degrees(Radians(37.5)) = %v, want 37.5", got)
	}
	if got := Cos(0); got != 1 {
		t.Errorf("Cos(0) = %v, want 1", got)
	}
	if got := Sin(Pi / 2); abs(got-1) > 0.0001 {
		t.Errorf("Sin(Pi/2) = %v, want 1", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
