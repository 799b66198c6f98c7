package models

import (
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

const halfPi = 1.570796

// Quadruped holds the six parts shared by four-legged mobs.
type Quadruped struct {
	Head, Body             *rig.Part
	Leg1, Leg2, Leg3, Leg4 *rig.Part
}

func buildQuadruped(a *rig.Assembler, legHeight int, inflate float32) Quadruped {
	top := float32(legHeight)
	var q Quadruped

	q.Head = a.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -4, -8, 8, 8, 8, inflate).
		SetPivot(0, 18-top, -6)

	q.Body = a.NewBox("body", mesh.PartChest).
		SetTextureOffset(28, 8).
		AddBox(-5, -10, -7, 10, 16, 8, inflate).
		SetPivot(0, 17-top, 2)
	q.Body.Rotation.X = halfPi

	q.Leg1 = a.NewBox("leg1", mesh.PartLeftLeg, rig.Animated).
		SetTextureOffset(0, 16).
		AddBox(-2, 0, -2, 4, legHeight, 4, inflate).
		SetPivot(-3, 24-top, 7)

	q.Leg2 = a.NewBox("leg2", mesh.PartRightLeg, rig.Animated).
		SetTextureOffset(0, 16).
		SetMirror(true).
		AddBox(-2, 0, -2, 4, legHeight, 4, inflate).
		SetPivot(3, 24-top, 7)

	q.Leg3 = a.NewBox("leg3", mesh.PartLeftArm, rig.Animated).
		SetTextureOffset(0, 16).
		AddBox(-2, 0, -2, 4, legHeight, 4, inflate).
		SetPivot(-3, 24-top, -5)

	// Mirrored after the box: only the swing direction flips.
	q.Leg4 = a.NewBox("leg4", mesh.PartRightArm, rig.Animated).
		SetTextureOffset(0, 16).
		AddBox(-2, 0, -2, 4, legHeight, 4, inflate).
		SetPivot(3, 24-top, -5).
		SetMirror(true)

	return q
}

// SetPose turns the head and walks the legs in diagonal pairs.
func (q *Quadruped) SetPose(p Pose) {
	q.Head.Rotation.X = p.Pitch / degPerRad
	q.Head.Rotation.Y = p.Yaw / degPerRad
	q.Body.Rotation.X = halfPi

	front := math.Cos(p.Swing*0.6662) * 1.4 * p.SwingAmount
	back := math.Cos(p.Swing*0.6662+math.Pi) * 1.4 * p.SwingAmount
	q.Leg1.Rotation.X = front
	q.Leg2.Rotation.X = back
	q.Leg3.Rotation.X = back
	q.Leg4.Rotation.X = front
}

// Pig is a short-legged quadruped with a snout.
type Pig struct {
	*rig.Assembler
	Quadruped
}

// NewPig builds the pig.
func NewPig() (*Pig, error) {
	m := &Pig{Assembler: rig.NewAssembler()}
	m.Quadruped = buildQuadruped(m.Assembler, 6, 0)
	m.Head.SetTextureOffset(16, 16).AddBox(-2, 0, -9, 4, 3, 1, 0)
	return m, m.Err()
}

// Cow replaces the quadruped head and body with a horned head and an
// udder, and spreads the legs.
type Cow struct {
	*rig.Assembler
	Quadruped
}

// NewCow builds the cow.
func NewCow() (*Cow, error) {
	m := &Cow{Assembler: rig.NewAssembler()}
	m.Quadruped = buildQuadruped(m.Assembler, 12, 0)

	m.Remove(m.Head)
	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -4, -6, 8, 8, 6, 0).
		SetPivot(0, 4, -8).
		SetTextureOffset(22, 0).
		AddBox(-5, -5, -4, 1, 3, 1, 0).
		AddBox(4, -5, -4, 1, 3, 1, 0)

	m.Remove(m.Body)
	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(18, 4).
		AddBox(-6, -10, -7, 12, 18, 10, 0).
		SetPivot(0, 5, 2).
		SetTextureOffset(52, 0).
		AddBox(-2, 2, -8, 4, 6, 1, 0)
	m.Body.Rotation.X = halfPi

	m.Leg1.Pivot.X--
	m.Leg2.Pivot.X++
	m.Leg3.Pivot.X--
	m.Leg4.Pivot.X++
	m.Leg3.Pivot.Z--
	m.Leg4.Pivot.Z--
	return m, m.Err()
}

// SheepFur is the wool layer drawn over a sheep.
type SheepFur struct {
	*rig.Assembler
	Quadruped
}

// NewSheepFur builds the inflated wool shell.
func NewSheepFur() (*SheepFur, error) {
	m := &SheepFur{Assembler: rig.NewAssembler()}
	m.Quadruped = buildQuadruped(m.Assembler, 12, 0)

	m.Remove(m.Head)
	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-3, -4, -4, 6, 6, 6, 0.6).
		SetPivot(0, 6, -8)

	m.Remove(m.Body)
	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(28, 8).
		AddBox(-4, -10, -7, 8, 16, 6, 1.75).
		SetPivot(0, 5, 2)
	m.Body.Rotation.X = halfPi

	legs := []struct {
		leg      **rig.Part
		name     string
		category mesh.PartFlag
		x, z     float32
	}{
		{&m.Leg1, "leg1", mesh.PartLeftLeg, -3, 7},
		{&m.Leg2, "leg2", mesh.PartRightLeg, 3, 7},
		{&m.Leg3, "leg3", mesh.PartLeftArm, -3, -5},
		{&m.Leg4, "leg4", mesh.PartRightArm, 3, -5},
	}
	for _, l := range legs {
		m.Remove(*l.leg)
		*l.leg = m.NewBox(l.name, l.category, rig.Animated).
			SetTextureOffset(0, 16).
			AddBox(-2, 0, -2, 4, 6, 4, 0.5).
			SetPivot(l.x, 12, l.z)
	}
	return m, m.Err()
}

// Sheep is the shorn body under the fur.
type Sheep struct {
	*rig.Assembler
	Quadruped
}

// NewSheep builds the sheep.
func NewSheep() (*Sheep, error) {
	m := &Sheep{Assembler: rig.NewAssembler()}
	m.Quadruped = buildQuadruped(m.Assembler, 12, 0)

	m.Remove(m.Head)
	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-3, -4, -6, 6, 6, 8, 0).
		SetPivot(0, 6, -8)

	m.Remove(m.Body)
	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(28, 8).
		AddBox(-4, -10, -7, 8, 16, 6, 0).
		SetPivot(0, 5, 2)
	m.Body.Rotation.X = halfPi
	return m, m.Err()
}
