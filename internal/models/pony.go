package models

import (
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Pony is a four-legged player model built from boxes and flat planes:
// plane pieces shape the barrel and the tail, and pegasi carry folded
// wings plus extended wing feathers.
type Pony struct {
	*rig.Assembler

	Unicorn bool
	Pegasus bool
	Flying  bool

	Head      *rig.Part
	Headpiece [3]*rig.Part
	Helmet    *rig.Part
	Body      *rig.Part
	Bodypiece [13]*rig.Part

	RightArm, LeftArm, RightLeg, LeftLeg *rig.Part

	// Held-item arms. They are posed but never compiled.
	SteveArm, UnicornArm *rig.Part

	Tail         [10]*rig.Part
	LeftWing     [3]*rig.Part
	RightWing    [3]*rig.Part
	LeftWingExt  [7]*rig.Part
	RightWingExt [7]*rig.Part
}

// NewPony builds a standing pony.
func NewPony(unicorn, pegasus bool) (*Pony, error) {
	return newPony(unicorn, pegasus, 0, 0)
}

type planeSpec struct {
	u, v     int
	category mesh.PartFlag
	mirror   bool
	add      func(p *rig.Part, x, y, z float32, w, h, d int, inflate float32) *rig.Part
	x, y, z  float32
	w, h, d  int
}

var (
	sidePlane = (*rig.Part).AddSidePlane
	topPlane  = (*rig.Part).AddTopPlane
	backPlane = (*rig.Part).AddBackPlane
)

var ponyBodyPlanes = [13]planeSpec{
	{24, 0, mesh.PartRightLeg, false, sidePlane, -4, 4, 2, 0, 8, 8},
	{24, 0, mesh.PartRightLeg, false, sidePlane, 4, 4, 2, 0, 8, 8},
	{24, 0, mesh.PartChest, false, topPlane, -4, 4, 2, 8, 0, 8},
	{24, 0, mesh.PartChest, false, topPlane, -4, 12, 2, 8, 0, 8},
	{0, 20, mesh.PartHead, false, sidePlane, -4, 4, 10, 0, 8, 4},
	{0, 20, mesh.PartHead, false, sidePlane, 4, 4, 10, 0, 8, 4},
	{24, 0, mesh.PartChest, false, topPlane, -4, 4, 10, 8, 0, 4},
	{24, 0, mesh.PartChest, false, topPlane, -4, 12, 10, 8, 0, 4},
	{24, 0, mesh.PartChest, false, backPlane, -4, 4, 14, 8, 8, 0},
	{32, 0, mesh.PartChest, false, topPlane, -1, 10, 8, 2, 0, 6},
	{32, 0, mesh.PartChest, false, topPlane, -1, 12, 8, 2, 0, 6},
	{32, 0, mesh.PartHead, true, sidePlane, -1, 10, 8, 0, 2, 6},
	{32, 0, mesh.PartHead, false, sidePlane, 1, 10, 8, 0, 2, 6},
}

var ponyTailPlanes = [10]planeSpec{
	{32, 0, mesh.PartChest, false, topPlane, -2, 1, 2, 4, 0, 4},
	{32, 0, mesh.PartChest, false, topPlane, -2, 17, 2, 4, 0, 4},
	{32, 0, mesh.PartChest, false, backPlane, -2, 1, 2, 4, 8, 0},
	{32, 0, mesh.PartChest, false, backPlane, -2, 1, 6, 4, 8, 0},
	{32, 0, mesh.PartChest, false, backPlane, -2, 9, 2, 4, 8, 0},
	{32, 0, mesh.PartChest, false, backPlane, -2, 9, 6, 4, 8, 0},
	{36, 0, mesh.PartChest, true, sidePlane, 2, 1, 2, 0, 8, 4},
	{36, 0, mesh.PartChest, false, sidePlane, -2, 1, 2, 0, 8, 4},
	{36, 0, mesh.PartChest, true, sidePlane, 2, 9, 2, 0, 8, 4},
	{36, 0, mesh.PartChest, false, sidePlane, -2, 9, 2, 0, 8, 4},
}

// Extended wing feathers share one offset and differ in box and growth.
var ponyWingExt = [7]struct {
	x, y, z float32
	h       int
	grow    float32
}{
	{0, 0, 0, 8, 0.1},
	{0, 8, 0, 6, 0.1},
	{0, -1.2, -0.2, 8, -0.2},
	{0, 1.8, 1.3, 8, -0.1},
	{0, 5, 2, 8, 0},
	{0, 0, -0.2, 6, 0.3},
	{0, 0, 0.2, 3, 0.2},
}

func (s planeSpec) build(a *rig.Assembler, name string, stretch float32) *rig.Part {
	p := a.NewPlane(name, s.category).
		SetTextureOffset(s.u, s.v).
		SetMirror(s.mirror)
	return s.add(p, s.x, s.y, s.z, s.w, s.h, s.d, stretch)
}

func newPony(unicorn, pegasus bool, yOffset, stretch float32) (*Pony, error) {
	m := &Pony{Assembler: rig.NewAssembler(), Unicorn: unicorn, Pegasus: pegasus}

	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -4, -6, 8, 8, 8, stretch).
		SetPivot(0, yOffset, 0)

	m.Headpiece[0] = m.NewBox("ear0", mesh.PartHelmet, rig.Overlay).
		SetTextureOffset(12, 16).
		AddBox(-4, -6, -1, 2, 2, 2, stretch).
		SetPivot(0, yOffset, 0)
	m.Headpiece[1] = m.NewBox("ear1", mesh.PartHelmet, rig.Overlay).
		SetTextureOffset(12, 16).
		AddBox(2, -6, -1, 2, 2, 2, stretch).
		SetPivot(0, yOffset, 0)
	m.Headpiece[2] = m.NewBox("horn", mesh.PartHelmet, rig.Overlay).
		SetTextureOffset(56, 0).
		AddBox(-0.5, -10, -4, 1, 4, 1, stretch).
		SetPivot(0, yOffset, 0)

	m.Helmet = m.NewBox("helmet", mesh.PartHelmet, rig.Overlay).
		SetTextureOffset(32, 0).
		AddBox(-4, -4, -6, 8, 8, 8, stretch+0.5).
		SetPivot(0, yOffset, 0)

	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(16, 16).
		AddBox(-4, 4, -2, 8, 8, 4, stretch).
		SetPivot(0, yOffset, 0)

	for i, s := range ponyBodyPlanes {
		m.Bodypiece[i] = s.build(m.Assembler, indexed("bodypiece", i), stretch).
			SetPivot(0, yOffset, 0)
	}

	m.RightArm = m.NewBox("rightArm", mesh.PartRightArm).
		SetTextureOffset(40, 16).
		AddBox(-2, 4, -2, 4, 12, 4, stretch).
		SetPivot(-3, 8+yOffset, 0)
	m.LeftArm = m.NewBox("leftArm", mesh.PartLeftArm).
		SetTextureOffset(40, 16).
		SetMirror(true).
		AddBox(-2, 4, -2, 4, 12, 4, stretch).
		SetPivot(3, 8+yOffset, 0)
	// Both hind legs are tagged as the left leg.
	m.RightLeg = m.NewBox("rightLeg", mesh.PartLeftLeg).
		SetTextureOffset(40, 16).
		AddBox(-2, 4, -2, 4, 12, 4, stretch).
		SetPivot(-3, yOffset, 0)
	m.LeftLeg = m.NewBox("leftLeg", mesh.PartLeftLeg).
		SetTextureOffset(40, 16).
		SetMirror(true).
		AddBox(-2, 4, -2, 4, 12, 4, stretch).
		SetPivot(3, yOffset, 0)

	m.SteveArm = m.NewBox("steveArm", mesh.PartHead).
		SetTextureOffset(40, 16).
		AddBox(-3, -2, -2, 4, 12, 4, stretch).
		SetPivot(-5, 2+yOffset, 0)
	m.Remove(m.SteveArm)
	m.UnicornArm = m.NewBox("unicornArm", mesh.PartHead).
		SetTextureOffset(40, 16).
		AddBox(-3, -2, -2, 4, 12, 4, stretch).
		SetPivot(-5, 2+yOffset, 0)
	m.Remove(m.UnicornArm)

	for i, s := range ponyTailPlanes {
		m.Tail[i] = s.build(m.Assembler, indexed("tail", i), stretch).
			SetPivot(0, 2+yOffset, 0)
	}

	for i := range m.LeftWing {
		m.LeftWing[i] = m.NewBox(indexed("leftWing", i), mesh.PartRightLeg, rig.Overlay, rig.Animated).
			SetTextureOffset(56, 16).
			SetMirror(true).
			AddBox(4, 5, float32(2+2*i), 2, wingLength(i), 2, stretch).
			SetPivot(0, yOffset, 0)
	}
	for i := range m.RightWing {
		m.RightWing[i] = m.NewBox(indexed("rightWing", i), mesh.PartRightLeg, rig.Overlay, rig.Animated).
			SetTextureOffset(56, 16).
			AddBox(-6, 5, float32(2+2*i), 2, wingLength(i), 2, stretch).
			SetPivot(0, yOffset, 0)
	}

	for i, f := range ponyWingExt {
		m.LeftWingExt[i] = m.NewBox(indexed("leftWingExt", i), mesh.PartRightLeg, rig.Overlay, rig.Animated).
			SetTextureOffset(56, 19).
			SetMirror(true).
			AddBox(f.x, f.y, f.z, 1, f.h, 2, stretch+f.grow).
			SetPivot(4.5, 5+yOffset, 6)
	}
	for i, f := range ponyWingExt {
		m.RightWingExt[i] = m.NewBox(indexed("rightWingExt", i), mesh.PartRightLeg, rig.Overlay, rig.Animated).
			SetTextureOffset(56, 19).
			SetMirror(true).
			AddBox(f.x, f.y, f.z, 1, f.h, 2, stretch+f.grow).
			SetPivot(-5.5, 5+yOffset, 6)
	}

	m.SetPose(Pose{})
	return m, m.Err()
}

// The middle folded feather is longer.
func wingLength(i int) int {
	if i == 1 {
		return 8
	}
	return 6
}

func (m *Pony) headParts() []*rig.Part {
	return []*rig.Part{m.Head, m.Headpiece[0], m.Headpiece[1], m.Headpiece[2], m.Helmet}
}

// SetPose walks the legs, swishes the tail and, for a pegasus, folds or
// spreads the wings. A flying pegasus at full swing goes into a dive
// with its legs stretched out.
func (m *Pony) SetPose(p Pose) {
	dive := false

	yaw := p.Yaw / degPerRad
	pitch := p.Pitch / degPerRad
	for _, h := range m.headParts() {
		h.Rotation.Y = yaw
		h.Rotation.X = pitch
	}
	m.Headpiece[2].Rotation.X = pitch + 0.5

	var rightArmX, leftArmX, rightLegX, leftLegX float32
	if !m.Flying || !m.Pegasus {
		rightArmX = (p.Swing*0.6662 + 3.141593) * 0.6 * p.SwingAmount
		leftArmX = p.Swing * 0.6662 * 0.6 * p.SwingAmount
		rightLegX = p.Swing * 0.6662 * 0.3 * p.SwingAmount
		leftLegX = (p.Swing*0.6662 + 3.141593) * 0.3 * p.SwingAmount
		for _, q := range []*rig.Part{m.RightArm, m.SteveArm, m.UnicornArm, m.LeftArm, m.RightLeg, m.LeftLeg} {
			q.Rotation.Y = 0
		}
	} else {
		if p.SwingAmount < 0.9999 {
			rightArmX = -p.SwingAmount * 0.5
			leftArmX = -p.SwingAmount * 0.5
			rightLegX = p.SwingAmount * 0.5
			leftLegX = p.SwingAmount * 0.5
		} else {
			dive = true
			rightArmX, leftArmX = 4.712, 4.712
			rightLegX, leftLegX = 1.571, 1.571
		}
		m.RightArm.Rotation.Y = 0.2
		m.SteveArm.Rotation.Y = 0.2
		m.LeftArm.Rotation.Y = -0.2
		m.RightLeg.Rotation.Y = -0.2
		m.LeftLeg.Rotation.Y = 0.2
	}

	m.RightArm.Rotation.X = rightArmX
	m.SteveArm.Rotation.X = rightArmX
	m.UnicornArm.Rotation.X = 0
	m.LeftArm.Rotation.X = leftArmX
	m.RightLeg.Rotation.X = rightLegX
	m.LeftLeg.Rotation.X = leftLegX
	m.RightArm.Rotation.Z = 0
	m.SteveArm.Rotation.Z = 0
	m.UnicornArm.Rotation.Z = 0
	m.LeftArm.Rotation.Z = 0

	for _, t := range m.Tail {
		if dive {
			t.Rotation.Z = 0
		} else {
			t.Rotation.Z = p.Swing * 0.8 * 0.2 * p.SwingAmount
		}
	}

	var bodyYaw float32
	if !m.Unicorn {
		bodyYaw = p.SwingProgress * 3.141593 * 2 * 0.2
	}
	m.Body.Rotation.Y = bodyYaw * 0.2
	for _, q := range m.Bodypiece {
		q.Rotation.Y = bodyYaw * 0.2
	}
	for _, q := range m.LeftWing {
		q.Rotation.Y = bodyYaw * 0.2
	}
	for _, q := range m.RightWing {
		q.Rotation.Y = bodyYaw * 0.2
	}
	for _, t := range m.Tail {
		t.Rotation.Y = bodyYaw
	}

	const legSplay = 4
	armZ := m.Body.Pivot.Z * 5
	armX := m.Body.Pivot.X * 5
	m.RightArm.Pivot.Z = armZ + 1
	m.SteveArm.Pivot.Z = armZ + 1
	m.LeftArm.Pivot.Z = -armZ + 1
	m.RightArm.Pivot.X = -armX - 1 + legSplay
	m.SteveArm.Pivot.X = -armX
	m.LeftArm.Pivot.X = armX + 1 - legSplay
	m.RightLeg.Pivot.X = -armX - 1 + legSplay
	m.LeftLeg.Pivot.X = armX + 1 - legSplay

	m.RightArm.Rotation.Y += m.Body.Rotation.Y
	m.LeftArm.Rotation.Y += m.Body.Rotation.Y
	m.LeftArm.Rotation.X += m.Body.Rotation.X

	m.RightArm.Pivot.Y = 8
	m.LeftArm.Pivot.Y = 8
	m.RightLeg.Pivot.Y = 4
	m.LeftLeg.Pivot.Y = 4

	m.Body.Rotation.X = 0
	m.Body.Pivot.Y = 0
	m.Body.Pivot.Z = 0
	for _, q := range m.Bodypiece {
		q.Rotation.X = 0
		q.Pivot.Y = 0
		q.Pivot.Z = 0
	}

	if m.Pegasus {
		if !m.Flying {
			for _, q := range append(m.LeftWing[:], m.RightWing[:]...) {
				q.Rotation.X = halfPi
				q.Pivot.Y = 13
				q.Pivot.Z = -3
			}
		} else {
			for _, q := range m.LeftWingExt {
				q.Rotation.X = halfPi
				q.Pivot.Y = 5.5
				q.Pivot.Z = 3
			}
			for _, q := range m.RightWingExt {
				q.Rotation.X = halfPi
				q.Pivot.Y = 6.5
				q.Pivot.Z = 3
			}
		}
	}

	m.RightLeg.Pivot.Z = 10
	m.LeftLeg.Pivot.Z = 10
	m.RightLeg.Pivot.Y = 8
	m.LeftLeg.Pivot.Y = 8

	armRoll := p.Age*0.09*0.05 + 0.05
	armLift := p.Age * 0.067 * 0.05
	m.SteveArm.Rotation.Z += armRoll
	m.UnicornArm.Rotation.Z += armRoll
	m.SteveArm.Rotation.X += armLift
	m.UnicornArm.Rotation.X += armLift

	if m.Pegasus && m.Flying {
		flap := p.Age * 0.067 * 8
		for _, q := range m.LeftWingExt {
			q.Rotation.X = 2.5
			q.Rotation.Z = -flap - 4.712 - 0.4
		}
		for _, q := range m.RightWingExt {
			q.Rotation.X = 2.5
			q.Rotation.Z = flap + 4.712 + 0.4
		}
	} else {
		for i := range m.LeftWingExt {
			m.LeftWingExt[i].Rotation.X = 0
			m.RightWingExt[i].Rotation.X = 0
		}
	}

	for _, h := range m.headParts() {
		h.Pivot = math.Vec3{}
	}

	for _, t := range m.Tail {
		t.SetPivot(0, 1, 14)
		if dive {
			t.Rotation.X = 1.571 + 0.1*p.Swing
		} else {
			t.Rotation.X = 0.5*p.SwingAmount + armLift
		}
	}

	// Outer feathers fan back from the wing root.
	for _, ext := range [][7]*rig.Part{m.LeftWingExt, m.RightWingExt} {
		ext[2].Rotation.X -= 0.85
		ext[3].Rotation.X -= 0.75
		ext[4].Rotation.X -= 0.5
		ext[6].Rotation.X -= 0.85
	}

	for _, q := range m.Bodypiece[9:] {
		q.Rotation.X += 0.5
	}

	if dive {
		for _, t := range m.Tail {
			t.Pivot.Y += 6
			t.Pivot.Z += 1
		}
	}
}
