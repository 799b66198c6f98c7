package models

import (
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Slime is a cube. Outer slimes also carry an inner body, eyes and a
// mouth, added before the shell.
type Slime struct {
	*rig.Assembler
	Inner, RightEye, LeftEye, Mouth *rig.Part
	Shell                           *rig.Part
}

// NewSlime builds a slime. Any positive kind adds the face parts.
func NewSlime(kind int) (*Slime, error) {
	m := &Slime{Assembler: rig.NewAssembler()}
	if kind > 0 {
		m.Inner = m.NewBox("inner", mesh.PartChest).
			SetTextureOffset(0, 0).
			AddBox(-3, 17, -3, 6, 6, 6, 0)
		m.RightEye = m.NewBox("rightEye", mesh.PartLeftArm).
			SetTextureOffset(32, 0).
			AddBox(-3.25, 18, -3.5, 2, 2, 2, 0)
		m.LeftEye = m.NewBox("leftEye", mesh.PartRightArm).
			SetTextureOffset(32, 4).
			AddBox(1.25, 18, -3.5, 2, 2, 2, 0)
		m.Mouth = m.NewBox("mouth", mesh.PartRightArm).
			SetTextureOffset(32, 8).
			AddBox(0, 21, -3.5, 1, 1, 1, 0)
	}
	m.Shell = m.NewBox("shell", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, 16, -4, 8, 8, 8, 0)
	return m, m.Err()
}

// MagmaCube is eight stacked slices around a core.
type MagmaCube struct {
	*rig.Assembler
	Slices [8]*rig.Part
	Core   *rig.Part
}

// NewMagmaCube builds the magma cube.
func NewMagmaCube() (*MagmaCube, error) {
	m := &MagmaCube{Assembler: rig.NewAssembler()}
	for i := range m.Slices {
		u, v := 0, i
		switch i {
		case 2:
			u, v = 24, 10
		case 3:
			u, v = 24, 19
		}
		m.Slices[i] = m.NewBox(indexed("slice", i), mesh.PartHead).
			SetTextureOffset(u, v).
			AddBox(-4, float32(16+i), -4, 8, 1, 8, 0)
	}
	m.Core = m.NewBox("core", mesh.PartChest).
		SetTextureOffset(0, 16).
		AddBox(-2, 18, -2, 4, 4, 4, 0)
	return m, m.Err()
}

// Blaze is a head inside three rings of four rods.
type Blaze struct {
	*rig.Assembler
	Rods [12]*rig.Part
	Head *rig.Part
}

// NewBlaze builds the blaze at age zero.
func NewBlaze() (*Blaze, error) {
	m := &Blaze{Assembler: rig.NewAssembler()}
	for i := range m.Rods {
		m.Rods[i] = m.NewBox(indexed("rod", i), mesh.PartLeftArm).
			SetTextureOffset(0, 16).
			AddBox(0, 0, 0, 2, 8, 2, 0)
	}
	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -4, -4, 8, 8, 8, 0)

	m.SetPose(Pose{})
	return m, m.Err()
}

// SetPose spins the rod rings with age and turns the head.
func (m *Blaze) SetPose(p Pose) {
	rings := [3]struct {
		start, spin    float32
		y, bob, radius float32
		rate           float32
	}{
		{0, -0.1, -2, 2, 9, 0.25},
		{0.7853982, 0.03, 2, 2, 7, 0.25},
		{0.4712389, -0.05, 11, 1.5, 5, 0.5},
	}

	for r, ring := range rings {
		angle := ring.start + p.Age*3.141593*ring.spin
		for j := 0; j < 4; j++ {
			i := r*4 + j
			rod := m.Rods[i]
			rod.Pivot.Y = ring.y + math.Cos((float32(i)*ring.bob+p.Age)*ring.rate)
			rod.Pivot.X = math.Cos(angle) * ring.radius
			rod.Pivot.Z = math.Sin(angle) * ring.radius
			angle += halfPi
		}
	}

	m.Head.Rotation.Y = p.Yaw / degPerRad
	m.Head.Rotation.X = p.Pitch / degPerRad
}

// Ghast is a large cube with nine dangling tentacles of random length.
type Ghast struct {
	*rig.Assembler
	Body      *rig.Part
	Tentacles [9]*rig.Part
}

const (
	ghastSeed = 1660
	// ghastAge is the age the catalog model is posed at.
	ghastAge = 123456
)

// NewGhast builds the ghast. Tentacle lengths come from a generator
// seeded with a fixed value, so every build is identical.
func NewGhast() (*Ghast, error) {
	m := &Ghast{Assembler: rig.NewAssembler()}
	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(0, 0).
		AddBox(-8, -8, -8, 16, 16, 16, 0)
	m.Body.Pivot.Y = 8

	rnd := newSubtractiveRand(ghastSeed)
	for i := range m.Tentacles {
		col := float32(i%3) - float32((i/3)%2)*0.5
		x := ((col+0.25)/2*2 - 1) * 5
		z := (float32(i/3)/2*2 - 1) * 5
		length := rnd.Intn(7) + 8

		m.Tentacles[i] = m.NewBox(indexed("tentacle", i), mesh.PartLeftLeg).
			SetTextureOffset(0, 0).
			AddBox(-1, 0, -1, 2, length, 2, 0).
			SetPivot(x, 15, z)
	}

	m.SetPose(Pose{Age: ghastAge})
	return m, m.Err()
}

// SetPose waves the tentacles out of phase with each other.
func (m *Ghast) SetPose(p Pose) {
	for i, t := range m.Tentacles {
		t.Rotation.X = 0.2*math.Sin(p.Age*0.3+float32(i)) + 0.4
	}
}
