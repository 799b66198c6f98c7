package mesh

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/blockmodels/pkg/math"
)

func square(z float32, winding [4]uint8) Face {
	return Face{
		Positions: [4]math.Vec3{{X: 0, Y: 0, Z: z}, {X: 1, Y: 0, Z: z}, {X: 1, Y: 1, Z: z}, {X: 0, Y: 1, Z: z}},
		TexCoords: [4]math.Vec2{{X: 0.25, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0.25}, {X: 0.25, Y: 0.25}},
		Colors:    [4]Color{White, White, White, White},
		Indices:   winding,
	}
}

func testModel() *Model {
	return &Model{
		Name: "Square",
		Meshes: []Mesh{
			{Name: "a", Faces: []Face{square(0, WindingCW), square(0, WindingCCW)}},
			{Name: "b", Translate: math.Vec3{X: 10}, Faces: []Face{square(1, WindingCW)}},
		},
	}
}

func TestPartFlagString(t *testing.T) {
	tests := []struct {
		flag PartFlag
		want string
	}{
		{PartNone, "none"},
		{PartHead, "head"},
		{PartRightLeg, "right_leg"},
		{PartLeftArm | PartRightArm, "left_arm|right_arm"},
	}
	for _, tt := range tests {
		if got := tt.flag.String(); got != tt.want {
			t.Errorf("PartFlag(%d).String() = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

func TestModelLookup(t *testing.T) {
	m := testModel()
	if got := m.FaceCount(); got != 3 {
		t.Errorf("FaceCount() = %d, want 3", got)
	}
	if ms := m.Mesh("b"); ms == nil || ms.Translate.X != 10 {
		t.Errorf("Mesh(\"b\") = %v", ms)
	}
	if ms := m.Mesh("missing"); ms != nil {
		t.Errorf("Mesh(\"missing\") = %v, want nil", ms)
	}
	if !m.Meshes[0].Faces[1].Reversed() || m.Meshes[0].Faces[0].Reversed() {
		t.Error("Reversed() does not follow the index order")
	}
}

func TestInvertBottomFaces(t *testing.T) {
	m := testModel()
	m.Meshes[0].Faces[0].Downface = true
	before := m.Meshes[0].Faces[0].TexCoords

	m.InvertBottomFaces()
	after := m.Meshes[0].Faces[0].TexCoords
	for i := range before {
		if after[i].X != before[i].X {
			t.Errorf("vertex %d: U changed from %v to %v", i, before[i].X, after[i].X)
		}
		if after[i].Y != 0.25-before[i].Y {
			t.Errorf("vertex %d: V = %v, want %v", i, after[i].Y, 0.25-before[i].Y)
		}
	}
	if m.Meshes[1].Faces[0].TexCoords != before {
		t.Error("InvertBottomFaces touched a face that is not a Downface")
	}

	m.InvertBottomFaces()
	if m.Meshes[0].Faces[0].TexCoords != before {
		t.Error("InvertBottomFaces twice should restore the texture coordinates")
	}
}

func TestValidate(t *testing.T) {
	nan := float32(gomath.NaN())
	tests := []struct {
		name    string
		modify  func(*Model)
		wantErr error
	}{
		{"valid", func(*Model) {}, nil},
		{"no name", func(m *Model) { m.Name = "" }, ErrEmptyModelName},
		{"no meshes", func(m *Model) { m.Meshes = nil }, ErrNoMeshes},
		{"bad indices", func(m *Model) { m.Meshes[0].Faces[0].Indices = [4]uint8{0, 1, 2, 2} }, ErrBadIndices},
		{"nan position", func(m *Model) { m.Meshes[1].Faces[0].Positions[2].Y = nan }, ErrNonFinite},
		{"nan pivot", func(m *Model) { m.Meshes[1].Pivot.Z = nan }, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel()
			tt.modify(m)
			err := m.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	flat := testModel().Flatten()

	if len(flat.Vertices) != 12 {
		t.Fatalf("len(Vertices) = %d, want 12", len(flat.Vertices))
	}
	if len(flat.Indices) != 18 {
		t.Fatalf("len(Indices) = %d, want 18", len(flat.Indices))
	}

	// Mesh b is translated by 10 on X.
	want := Bounds{Min: math.Vec3{}, Max: math.Vec3{X: 11, Y: 1, Z: 1}}
	if flat.Bounds != want {
		t.Errorf("Bounds = %v, want %v", flat.Bounds, want)
	}

	// The reversed face of mesh a has the opposite normal.
	if flat.Vertices[0].Normal[2] != -flat.Vertices[4].Normal[2] || flat.Vertices[0].Normal[2] == 0 {
		t.Errorf("normals %v and %v should be opposite", flat.Vertices[0].Normal, flat.Vertices[4].Normal)
	}
}

func TestFlattenEmpty(t *testing.T) {
	flat := (&Model{Name: "empty"}).Flatten()
	if flat.Bounds != (Bounds{}) {
		t.Errorf("Bounds = %v, want zero", flat.Bounds)
	}
}

func TestMeshTransform(t *testing.T) {
	ms := Mesh{Translate: math.Vec3{Y: 12}, Rotate: math.Vec3{Z: 90}}
	got := ms.Transform().TransformVec3(math.Vec3{X: 1})
	want := math.Vec3{X: 0, Y: 13, Z: 0}
	if !got.ApproxEqual(want, 0.0001) {
		t.Errorf("Transform() moved (1,0,0) to %v, want %v", got, want)
	}
}
