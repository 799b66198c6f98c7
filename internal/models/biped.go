package models

import (
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Biped holds the seven parts of a humanoid.
type Biped struct {
	Head, Headwear, Body *rig.Part
	RightArm, LeftArm    *rig.Part
	RightLeg, LeftLeg    *rig.Part
}

func buildBiped(a *rig.Assembler, inflate, yOffset float32) Biped {
	var b Biped

	b.Head = a.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -8, -4, 8, 8, 8, inflate).
		SetPivot(0, yOffset, 0)

	b.Headwear = a.NewBox("headwear", mesh.PartHelmet, rig.Overlay).
		SetTextureOffset(32, 0).
		AddBox(-4, -8, -4, 8, 8, 8, inflate+0.5).
		SetPivot(0, yOffset, 0)

	b.Body = a.NewBox("body", mesh.PartChest).
		SetTextureOffset(16, 16).
		AddBox(-4, 0, -2, 8, 12, 4, inflate).
		SetPivot(0, yOffset, 0)

	b.RightArm = a.NewBox("rightArm", mesh.PartRightArm, rig.Animated).
		SetTextureOffset(40, 16).
		AddBox(-3, -2, -2, 4, 12, 4, inflate).
		SetPivot(-5, 2+yOffset, 0)

	b.LeftArm = a.NewBox("leftArm", mesh.PartLeftArm, rig.Animated).
		SetTextureOffset(40, 16).
		SetMirror(true).
		AddBox(-1, -2, -2, 4, 12, 4, inflate).
		SetPivot(5, 2+yOffset, 0)

	b.RightLeg = a.NewBox("rightLeg", mesh.PartRightLeg, rig.Animated).
		SetTextureOffset(0, 16).
		AddBox(-2, 0, -2, 4, 12, 4, inflate).
		SetPivot(-2, 12+yOffset, 0)

	b.LeftLeg = a.NewBox("leftLeg", mesh.PartLeftLeg, rig.Animated).
		SetTextureOffset(0, 16).
		SetMirror(true).
		AddBox(-2, 0, -2, 4, 12, 4, inflate).
		SetPivot(2, 12+yOffset, 0)

	return b
}

// Human is the plain player biped.
type Human struct {
	*rig.Assembler
	Biped
}

// NewHuman builds the player model.
func NewHuman() (*Human, error) {
	m := &Human{Assembler: rig.NewAssembler()}
	m.Biped = buildBiped(m.Assembler, 0, 0)
	return m, m.Err()
}

// Zombie is a biped holding both arms forward.
type Zombie struct {
	*rig.Assembler
	Biped
}

// NewZombie builds the zombie in its resting pose.
func NewZombie() (*Zombie, error) {
	m := &Zombie{Assembler: rig.NewAssembler()}
	m.Biped = buildBiped(m.Assembler, 0, 0)
	m.SetPose(Pose{})
	return m, m.Err()
}

// SetPose raises the arms and sways them with age.
func (m *Zombie) SetPose(p Pose) {
	armsForward(&m.Biped, p)
}

func armsForward(b *Biped, p Pose) {
	swing := math.Sin(p.SwingProgress * math.Pi)
	lift := math.Sin((1 - (1-p.SwingProgress)*(1-p.SwingProgress)) * math.Pi)

	b.RightArm.Rotation.Z = 0
	b.LeftArm.Rotation.Z = 0
	b.RightArm.Rotation.Y = -(0.1 - swing*0.6)
	b.LeftArm.Rotation.Y = 0.1 - swing*0.6
	b.RightArm.Rotation.X = -halfPi
	b.LeftArm.Rotation.X = -halfPi
	b.RightArm.Rotation.X -= swing*1.2 - lift*0.4
	b.LeftArm.Rotation.X -= swing*1.2 - lift*0.4

	sway := math.Cos(p.Age*0.09)*0.05 + 0.05
	bob := math.Sin(p.Age*0.067) * 0.05
	b.RightArm.Rotation.Z += sway
	b.LeftArm.Rotation.Z -= sway
	b.RightArm.Rotation.X += bob
	b.LeftArm.Rotation.X -= bob
}

// Skeleton is a zombie with thin static limbs.
type Skeleton struct {
	*rig.Assembler
	Biped
}

// NewSkeleton builds the skeleton. All four thin limbs keep the right
// arm category the catalog has always used for them.
func NewSkeleton() (*Skeleton, error) {
	m := &Skeleton{Assembler: rig.NewAssembler()}
	m.Biped = buildBiped(m.Assembler, 0, 0)
	armsForward(&m.Biped, Pose{})

	m.Remove(m.RightArm)
	m.RightArm = m.NewBox("rightArm", mesh.PartRightArm).
		SetTextureOffset(40, 16).
		AddBox(-1, -2, -1, 2, 12, 2, 0).
		SetPivot(-5, 2, 0)

	m.Remove(m.LeftArm)
	m.LeftArm = m.NewBox("leftArm", mesh.PartRightArm).
		SetTextureOffset(40, 16).
		SetMirror(true).
		AddBox(-1, -2, -1, 2, 12, 2, 0).
		SetPivot(5, 2, 0)

	m.Remove(m.RightLeg)
	m.RightLeg = m.NewBox("rightLeg", mesh.PartRightArm).
		SetTextureOffset(0, 16).
		AddBox(-1, 0, -1, 2, 12, 2, 0).
		SetPivot(-2, 12, 0)

	m.Remove(m.LeftLeg)
	m.LeftLeg = m.NewBox("leftLeg", mesh.PartRightArm).
		SetTextureOffset(0, 16).
		SetMirror(true).
		AddBox(-1, 0, -1, 2, 12, 2, 0).
		SetPivot(2, 12, 0)

	m.SetPose(Pose{})
	return m, m.Err()
}

// SetPose applies the zombie arm pose to the thin arms.
func (m *Skeleton) SetPose(p Pose) {
	armsForward(&m.Biped, p)
}

// Enderman is a tall biped with long limbs and a double-sided head.
type Enderman struct {
	*rig.Assembler
	Biped
}

// NewEnderman builds the enderman.
func NewEnderman() (*Enderman, error) {
	const yOffset = -14

	m := &Enderman{Assembler: rig.NewAssembler()}
	m.Biped = buildBiped(m.Assembler, 0, yOffset)
	m.Head.Overlay = true

	m.Remove(m.Headwear)
	m.Headwear = m.NewBox("headwear", mesh.PartHelmet, rig.Overlay).
		SetTextureOffset(0, 16).
		AddBox(-4, -8, -4, 8, 8, 8, -0.5).
		SetPivot(0, yOffset, 0)

	// Head moves behind the jaw layer.
	m.Remove(m.Head)
	m.Append(m.Head)

	m.Remove(m.Body)
	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(32, 16).
		AddBox(-4, 0, -2, 8, 12, 4, 0).
		SetPivot(0, yOffset, 0)

	limbs := []struct {
		part     **rig.Part
		name     string
		category mesh.PartFlag
		mirror   bool
		top      float32
		x, y     float32
	}{
		{&m.RightArm, "rightArm", mesh.PartRightArm, false, -2, -5, 2 + yOffset},
		{&m.LeftArm, "leftArm", mesh.PartLeftArm, true, -2, 5, 2 + yOffset},
		{&m.RightLeg, "rightLeg", mesh.PartRightLeg, false, 0, -2, 12 + yOffset},
		{&m.LeftLeg, "leftLeg", mesh.PartLeftLeg, true, 0, 2, 12 + yOffset},
	}
	for _, l := range limbs {
		m.Remove(*l.part)
		*l.part = m.NewBox(l.name, l.category, rig.Animated).
			SetTextureOffset(56, 0).
			SetMirror(l.mirror).
			AddBox(-1, l.top, -1, 2, 30, 2, 0).
			SetPivot(l.x, l.y, 0)
	}
	return m, m.Err()
}
