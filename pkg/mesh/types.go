// Package mesh holds compiled models: named collections of quad meshes
// with per-part transform and animation metadata, ready to be saved,
// loaded and drawn.
package mesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/blockmodels/pkg/math"
)

// PartFlag tags a mesh with the body part it belongs to, so editors can
// toggle parts independently.
type PartFlag uint8

// Part categories.
const (
	PartHead PartFlag = 1 << iota
	PartHelmet
	PartChest
	PartLeftArm
	PartRightArm
	PartLeftLeg
	PartRightLeg

	PartNone PartFlag = 0
)

var partFlagNames = []struct {
	flag PartFlag
	name string
}{
	{PartHead, "head"},
	{PartHelmet, "helmet"},
	{PartChest, "chest"},
	{PartLeftArm, "left_arm"},
	{PartRightArm, "right_arm"},
	{PartLeftLeg, "left_leg"},
	{PartRightLeg, "right_leg"},
}

func (f PartFlag) String() string {
	if f == PartNone {
		return "none"
	}
	var names []string
	for _, p := range partFlagNames {
		if f&p.flag != 0 {
			names = append(names, p.name)
		}
	}
	return strings.Join(names, "|")
}

// ErrUnknownPart is returned by ParsePartFlag for an unknown name.
var ErrUnknownPart = errors.New("unknown part name")

// ParsePartFlag is the inverse of PartFlag.String.
func ParsePartFlag(s string) (PartFlag, error) {
	if s == "" || s == "none" {
		return PartNone, nil
	}
	var f PartFlag
next:
	for _, name := range strings.Split(s, "|") {
		for _, p := range partFlagNames {
			if p.name == name {
				f |= p.flag
				continue next
			}
		}
		return PartNone, fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}
	return f, nil
}

// DrawMode is the primitive type of a mesh. Models only use quads.
type DrawMode uint8

// Draw modes.
const (
	ModeQuads DrawMode = iota
)

// Color is an RGBA vertex color.
type Color struct {
	R, G, B, A float32
}

// White is the only vertex color models use.
var White = Color{1, 1, 1, 1}

// Index orders for the two windings.
var (
	WindingCW  = [4]uint8{0, 1, 2, 3}
	WindingCCW = [4]uint8{3, 2, 1, 0}
)

// Face is one quad.
type Face struct {
	Positions [4]math.Vec3
	TexCoords [4]math.Vec2
	Colors    [4]Color
	Indices   [4]uint8

	// Downface marks the bottom side of a box, whose texture is stored
	// upside down in the atlas.
	Downface bool
}

// Reversed reports whether the face is drawn with the back winding.
func (f *Face) Reversed() bool {
	return f.Indices == WindingCCW
}

// Mesh is one model part.
type Mesh struct {
	Name      string
	Translate math.Vec3
	Rotate    math.Vec3 // degrees
	Pivot     math.Vec3
	Part      PartFlag

	Helmet            bool
	AllowTransparency bool
	RotateFactor      float32 // idle swing amplitude, signed; 0 when static
	FollowCursor      bool
	Mode              DrawMode

	Faces []Face
}

// Model is a compiled model: the parts of one creature or object.
type Model struct {
	Name   string
	Meshes []Mesh
}

// FaceCount returns the number of faces across all meshes.
func (m *Model) FaceCount() int {
	n := 0
	for i := range m.Meshes {
		n += len(m.Meshes[i].Faces)
	}
	return n
}

// Mesh returns the first mesh with the given name, or nil.
func (m *Model) Mesh(name string) *Mesh {
	for i := range m.Meshes {
		if m.Meshes[i].Name == name {
			return &m.Meshes[i]
		}
	}
	return nil
}

// InvertBottomFaces swaps the minimum and maximum V of every Downface,
// for renderers that sample the atlas with V pointing up.
func (m *Model) InvertBottomFaces() {
	for i := range m.Meshes {
		faces := m.Meshes[i].Faces
		for j := range faces {
			if faces[j].Downface {
				faces[j].invertV()
			}
		}
	}
}

func (f *Face) invertV() {
	minV, maxV := float32(1), float32(0)
	for _, uv := range f.TexCoords {
		if uv.Y < minV {
			minV = uv.Y
		}
		if uv.Y > maxV {
			maxV = uv.Y
		}
	}
	for i := range f.TexCoords {
		if f.TexCoords[i].Y == minV {
			f.TexCoords[i].Y = maxV
		} else {
			f.TexCoords[i].Y = minV
		}
	}
}
