package formats

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Faultbox/blockmodels/internal/models"
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

func testModel() *mesh.Model {
	face := mesh.Face{
		Positions: [4]math.Vec3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0.1}},
		TexCoords: [4]math.Vec2{{X: 0.25, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0.5}, {X: 0.25, Y: 0.5}},
		Colors:    [4]mesh.Color{mesh.White, mesh.White, mesh.White, mesh.White},
		Indices:   mesh.WindingCW,
	}
	down := face
	down.Indices = mesh.WindingCCW
	down.Downface = true

	return &mesh.Model{
		Name: "Test Model",
		Meshes: []mesh.Mesh{
			{
				Name:              "head",
				Translate:         math.Vec3{X: 0, Y: 12, Z: -6},
				Rotate:            math.Vec3{X: 90},
				Pivot:             math.Vec3{X: 0, Y: 12, Z: -6},
				Part:              mesh.PartHead,
				Helmet:            true,
				AllowTransparency: true,
				FollowCursor:      true,
				Faces:             []mesh.Face{face, down},
			},
			{
				Name:         "leg",
				Part:         mesh.PartLeftLeg | mesh.PartRightLeg,
				RotateFactor: -25,
				Faces:        []mesh.Face{face},
			},
			{
				Name: "empty",
			},
		},
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	pony, err := models.NewPony(true, true)
	if err != nil {
		t.Fatalf("building pony: %v", err)
	}
	compiled, err := rig.Compile(pony, "PonyTest", 1.5)
	if err != nil {
		t.Fatalf("compiling pony: %v", err)
	}

	for _, c := range Codecs() {
		for _, m := range []*mesh.Model{testModel(), compiled} {
			t.Run(c.Name()+"/"+m.Name, func(t *testing.T) {
				data, err := c.Encode(m)
				if err != nil {
					t.Fatalf("Encode: %v", err)
				}
				got, err := c.Decode(data)
				if err != nil {
					t.Fatalf("Decode: %v", err)
				}
				if !reflect.DeepEqual(normalize(m), normalize(got)) {
					t.Errorf("round trip through %s changed the model", c.Name())
				}
			})
		}
	}
}

// normalize makes nil and empty face slices compare equal.
func normalize(m *mesh.Model) *mesh.Model {
	out := *m
	out.Meshes = append([]mesh.Mesh(nil), m.Meshes...)
	for i := range out.Meshes {
		if len(out.Meshes[i].Faces) == 0 {
			out.Meshes[i].Faces = nil
		}
	}
	return &out
}

func TestCodecByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"binary", "binary", false},
		{"YAML", "yaml", false},
		{"toml", "toml", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CodecByName(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Name() != tt.want {
				t.Errorf("got codec %s, want %s", c.Name(), tt.want)
			}
		})
	}
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".bmdl", "binary"},
		{"bmdl", "binary"},
		{".yaml", "yaml"},
		{".YML", "yaml"},
		{".toml", "toml"},
	}

	for _, tt := range tests {
		c, err := CodecFor(tt.ext)
		if err != nil {
			t.Errorf("CodecFor(%q): %v", tt.ext, err)
			continue
		}
		if c.Name() != tt.want {
			t.Errorf("CodecFor(%q) = %s, want %s", tt.ext, c.Name(), tt.want)
		}
	}

	if _, err := CodecFor(".xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestTextCodecs_RejectInvalidModel(t *testing.T) {
	docs := map[string]string{
		"yaml": "name: \"\"\nmeshes: []\n",
		"toml": "name = \"x\"\nmeshes = []\n",
	}
	for name, doc := range docs {
		c, _ := CodecByName(name)
		_, err := c.Decode([]byte(doc))
		if err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestTextCodecs_BadPart(t *testing.T) {
	doc := "name: X\nmeshes:\n  - name: head\n    part: tail\n"
	_, err := YAML{}.Decode([]byte(doc))
	if !errors.Is(err, mesh.ErrUnknownPart) {
		t.Errorf("expected ErrUnknownPart, got %v", err)
	}
}

func TestYAML_ReadableLayout(t *testing.T) {
	data, err := YAML{}.Encode(testModel())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"translate: [0, 12, -6]", "part: left_leg|right_leg", "downface: true"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in:\n%s", want, data)
		}
	}
}
