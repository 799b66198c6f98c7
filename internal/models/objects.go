package models

import (
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Chest is a lidded box with a latch.
type Chest struct {
	*rig.Assembler
	Lid, Knob, Below *rig.Part
}

// NewChest builds the single chest on a 64x64 atlas.
func NewChest() (*Chest, error) {
	return buildChest(14, 8, 64)
}

// NewLargeChest builds the double chest on a 128x64 atlas.
func NewLargeChest() (*Chest, error) {
	return buildChest(30, 16, 128)
}

func buildChest(width int, knobX float32, atlasW int) (*Chest, error) {
	m := &Chest{Assembler: rig.NewAssembler()}
	m.TextureWidth, m.TextureHeight = atlasW, 64

	m.Lid = m.NewBox("lid", mesh.PartHead, rig.Animated).
		SetTextureOffset(0, 0).
		AddBox(0, -5, -14, width, 5, 14, 0).
		SetPivot(1, 7, 15)

	m.Knob = m.NewBox("knob", mesh.PartHelmet, rig.Animated).
		SetTextureOffset(0, 0).
		AddBox(-1, -2, -15, 2, 4, 1, 0).
		SetPivot(knobX, 7, 15)

	m.Below = m.NewBox("below", mesh.PartChest).
		SetTextureOffset(0, 19).
		AddBox(0, 0, 0, width, 10, 14, 0).
		SetPivot(1, 6, 1)

	return m, m.Err()
}

// Boat is a floor and four walls.
type Boat struct {
	*rig.Assembler
	Sides [5]*rig.Part
}

// NewBoat builds the boat.
func NewBoat() (*Boat, error) {
	m := &Boat{Assembler: rig.NewAssembler()}
	m.Sides = [5]*rig.Part{
		m.NewBox("floor", mesh.PartHead).SetTextureOffset(0, 8),
		m.NewBox("left", mesh.PartHelmet),
		m.NewBox("right", mesh.PartChest),
		m.NewBox("back", mesh.PartLeftArm),
		m.NewBox("front", mesh.PartRightArm),
	}

	m.Sides[0].AddBox(-12, -8, -3, 24, 16, 4, 0).SetPivot(0, 4, 0)
	m.Sides[0].Rotation.X = halfPi
	walls := [4]struct {
		x, z, yaw float32
	}{
		{-11, 0, 4.712389},
		{11, 0, halfPi},
		{0, -9, 3.141593},
		{0, 9, 0},
	}
	for i, w := range walls {
		side := m.Sides[i+1].
			AddBox(-10, -7, -1, 20, 6, 2, 0).
			SetPivot(w.x, 4, w.z)
		side.Rotation.Y = w.yaw
	}
	return m, m.Err()
}

// Minecart is a floor, an inner lining and four walls.
type Minecart struct {
	*rig.Assembler
	Sides [6]*rig.Part
}

// NewMinecart builds the minecart. The lining is created last but its
// box is added right after the floor's.
func NewMinecart() (*Minecart, error) {
	m := &Minecart{Assembler: rig.NewAssembler()}
	m.Sides = [6]*rig.Part{
		m.NewBox("floor", mesh.PartHead).SetTextureOffset(0, 10),
		m.NewBox("left", mesh.PartLeftArm),
		m.NewBox("right", mesh.PartLeftLeg),
		m.NewBox("back", mesh.PartRightArm),
		m.NewBox("front", mesh.PartRightLeg),
		m.NewBox("lining", mesh.PartChest).SetTextureOffset(44, 10),
	}

	m.Sides[0].AddBox(-10, -8, -1, 20, 16, 2, 0).SetPivot(0, 4, 0)
	m.Sides[0].Rotation.X = halfPi
	m.Sides[5].AddBox(-9, -7, -1, 18, 14, 1, 0).SetPivot(0, 4, 0)
	m.Sides[5].Rotation.X = -halfPi

	walls := [4]struct {
		x, z, yaw float32
	}{
		{-9, 0, 4.712389},
		{9, 0, halfPi},
		{0, -7, 3.141593},
		{0, 7, 0},
	}
	for i, w := range walls {
		side := m.Sides[i+1].
			AddBox(-8, -9, -1, 16, 8, 2, 0).
			SetPivot(w.x, 4, w.z)
		side.Rotation.Y = w.yaw
	}
	return m, m.Err()
}

// Sign is a board on a stick.
type Sign struct {
	*rig.Assembler
	Board, Stick *rig.Part
}

// NewSign builds the standing sign.
func NewSign() (*Sign, error) {
	m := &Sign{Assembler: rig.NewAssembler()}
	m.Board = m.NewBox("board", mesh.PartHelmet).
		SetTextureOffset(0, 0).
		AddBox(-12, -14, -1, 24, 12, 2, 0)
	m.Stick = m.NewBox("stick", mesh.PartChest).
		SetTextureOffset(0, 14).
		AddBox(-1, -2, -1, 2, 14, 2, 0)
	return m, m.Err()
}

// Book is two covers, a spine and four pages.
type Book struct {
	*rig.Assembler
	CoverRight, CoverLeft, Spine *rig.Part
	PagesRight, PagesLeft        *rig.Part
	FlipRight, FlipLeft          *rig.Part
}

// NewBook builds the closed book.
func NewBook() (*Book, error) {
	m := &Book{Assembler: rig.NewAssembler()}
	m.CoverRight = m.NewBox("coverRight", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-6, -5, 0, 6, 10, 0, 0).
		SetPivot(0, 0, -1)
	m.CoverLeft = m.NewBox("coverLeft", mesh.PartChest).
		SetTextureOffset(16, 0).
		AddBox(0, -5, 0, 6, 10, 0, 0).
		SetPivot(0, 0, 1)
	m.Spine = m.NewBox("spine", mesh.PartHelmet).
		SetTextureOffset(12, 0).
		AddBox(-1, -5, 0, 2, 10, 0, 0)
	m.Spine.Rotation.Y = halfPi
	m.PagesRight = m.NewBox("pagesRight", mesh.PartLeftArm).
		SetTextureOffset(0, 10).
		AddBox(0, -4, -0.99, 5, 8, 1, 0)
	m.PagesLeft = m.NewBox("pagesLeft", mesh.PartLeftLeg).
		SetTextureOffset(12, 10).
		AddBox(0, -4, -0.01, 5, 8, 1, 0)
	m.FlipRight = m.NewBox("flipRight", mesh.PartRightArm).
		SetTextureOffset(24, 10).
		AddBox(0, -4, 0, 5, 8, 0, 0)
	m.FlipLeft = m.NewBox("flipLeft", mesh.PartRightLeg).
		SetTextureOffset(24, 10).
		AddBox(0, -4, 0, 5, 8, 0, 0)
	return m, m.Err()
}

// SetPose opens the book. The inputs are read positionally: Swing is the
// tick count, SwingAmount and Age are the two flipping pages (0..1) and
// Yaw is how far the covers are spread.
func (m *Book) SetPose(p Pose) {
	spread := (math.Sin(p.Swing*0.02)*0.1 + 1.25) * p.Yaw

	m.CoverRight.Rotation.Y = 3.141593 + spread
	m.CoverLeft.Rotation.Y = -spread
	m.PagesRight.Rotation.Y = spread
	m.PagesLeft.Rotation.Y = -spread
	m.FlipRight.Rotation.Y = spread - spread*2*p.SwingAmount
	m.FlipLeft.Rotation.Y = spread - spread*2*p.Age

	x := math.Sin(spread)
	m.PagesRight.Pivot.X = x
	m.PagesLeft.Pivot.X = x
	m.FlipRight.Pivot.X = x
	m.FlipLeft.Pivot.X = x
}

// EnderCrystal is a glass cube around a solid cube over a base slab.
type EnderCrystal struct {
	*rig.Assembler
	Glass, Cube, Base *rig.Part
}

// NewEnderCrystal builds the ender crystal.
func NewEnderCrystal() (*EnderCrystal, error) {
	m := &EnderCrystal{Assembler: rig.NewAssembler()}
	m.Glass = m.NewBox("glass", mesh.PartHead, rig.Overlay).
		SetTextureOffset(0, 0).
		AddBox(-4, -4, -4, 8, 8, 8, 0)
	m.Cube = m.NewBox("cube", mesh.PartHelmet).
		SetTextureOffset(32, 0).
		AddBox(-4, -4, -4, 8, 8, 8, 0)
	m.Base = m.NewBox("base", mesh.PartChest).
		SetTextureOffset(0, 16).
		AddBox(-6, 0, -6, 12, 4, 12, 0)
	return m, m.Err()
}
