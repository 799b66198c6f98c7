package models

import (
	gomath "math"

	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Villager has a long head with a nose, folded arms and a robe.
type Villager struct {
	*rig.Assembler
	Head, Arms, RightLeg, LeftLeg, Body *rig.Part
}

// NewVillager builds the villager on a 64x64 atlas.
func NewVillager() (*Villager, error) {
	m := &Villager{Assembler: rig.NewAssembler()}
	m.TextureWidth, m.TextureHeight = 64, 64

	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -10, -4, 8, 10, 8, 0).
		SetTextureOffset(24, 0).
		AddBox(-1, -3, -6, 2, 4, 2, 0)

	m.Arms = m.NewBox("arms", mesh.PartLeftArm).
		SetPivot(0, 3, -1).
		SetTextureOffset(44, 22).
		AddBox(-8, -2, -2, 4, 8, 4, 0).
		AddBox(4, -2, -2, 4, 8, 4, 0).
		SetTextureOffset(40, 38).
		AddBox(-4, 2, -2, 8, 4, 4, 0)
	m.Arms.Rotation.X = -0.75

	m.RightLeg = m.NewBox("rightLeg", mesh.PartLeftLeg, rig.Animated).
		SetTextureOffset(0, 22).
		SetPivot(-2, 12, 0).
		AddBox(-2, 0, -2, 4, 12, 4, 0)

	m.LeftLeg = m.NewBox("leftLeg", mesh.PartRightLeg, rig.Animated).
		SetTextureOffset(0, 22).
		SetMirror(true).
		SetPivot(2, 12, 0).
		AddBox(-2, 0, -2, 4, 12, 4, 0)

	m.Body = m.NewBox("body", mesh.PartChest, rig.Overlay).
		SetTextureOffset(16, 20).
		AddBox(-4, 0, -3, 8, 12, 6, 0).
		SetTextureOffset(0, 38).
		AddBox(-4, 0, -3, 8, 18, 6, 0.5)

	return m, m.Err()
}

// Creeper is a four-footed biped body.
type Creeper struct {
	*rig.Assembler
	Head, Body             *rig.Part
	Leg1, Leg2, Leg3, Leg4 *rig.Part
}

// NewCreeper builds the creeper.
func NewCreeper() (*Creeper, error) {
	const y = 4

	m := &Creeper{Assembler: rig.NewAssembler()}
	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -8, -4, 8, 8, 8, 0).
		SetPivot(0, y, 0)

	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(16, 16).
		AddBox(-4, 0, -2, 8, 12, 4, 0).
		SetPivot(0, y, 0)

	leg := func(name string, category mesh.PartFlag, x, z float32) *rig.Part {
		return m.NewBox(name, category, rig.Animated).
			SetTextureOffset(0, 16).
			AddBox(-2, 0, -2, 4, 6, 4, 0).
			SetPivot(x, 12+y, z)
	}
	m.Leg1 = leg("leg1", mesh.PartLeftLeg, -2, 4)
	m.Leg2 = leg("leg2", mesh.PartRightLeg, 2, 4).SetMirror(true)
	m.Leg3 = leg("leg3", mesh.PartLeftArm, -2, -4)
	m.Leg4 = leg("leg4", mesh.PartRightArm, 2, -4).SetMirror(true)

	return m, m.Err()
}

// Chicken has a bill, a wattle and flapping wings.
type Chicken struct {
	*rig.Assembler
	Head, Bill, Chin, Body *rig.Part
	RightLeg, LeftLeg      *rig.Part
	RightWing, LeftWing    *rig.Part
}

// NewChicken builds the chicken.
func NewChicken() (*Chicken, error) {
	const y = 16

	m := &Chicken{Assembler: rig.NewAssembler()}
	m.Head = m.NewBox("head", mesh.PartHead, rig.Overlay).
		SetTextureOffset(0, 0).
		AddBox(-2, -6, -2, 4, 6, 3, 0).
		SetPivot(0, y-1, -4)

	m.Bill = m.NewBox("bill", mesh.PartHead).
		SetTextureOffset(14, 0).
		AddBox(-2, -4, -4, 4, 2, 2, 0).
		SetPivot(0, y-1, -4)

	m.Chin = m.NewBox("chin", mesh.PartHead).
		SetTextureOffset(14, 4).
		AddBox(-1, -2, -3, 2, 2, 2, 0).
		SetPivot(0, y-1, -4)

	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(0, 9).
		AddBox(-3, -4, -3, 6, 8, 6, 0).
		SetPivot(0, y, 0)

	m.RightLeg = m.NewBox("rightLeg", mesh.PartRightLeg, rig.Overlay, rig.Animated).
		SetTextureOffset(26, 0).
		AddBox(-1, 0, -3, 3, 5, 3, 0).
		SetPivot(-2, y+3, 1)

	m.LeftLeg = m.NewBox("leftLeg", mesh.PartLeftLeg, rig.Overlay, rig.Animated).
		SetTextureOffset(26, 0).
		AddBox(-1, 0, -3, 3, 5, 3, 0).
		SetPivot(1, y+3, 1).
		SetMirror(true)

	m.RightWing = m.NewBox("rightWing", mesh.PartRightArm, rig.Animated).
		SetTextureOffset(24, 13).
		AddBox(0, 0, -3, 1, 4, 6, 0).
		SetPivot(-4, y-3, 0)

	m.LeftWing = m.NewBox("leftWing", mesh.PartLeftArm, rig.Animated).
		SetTextureOffset(24, 13).
		AddBox(-1, 0, -3, 1, 4, 6, 0).
		SetPivot(4, y-3, 0)

	return m, m.Err()
}

// Squid is a body with eight hanging tentacles.
type Squid struct {
	*rig.Assembler
	Body      *rig.Part
	Tentacles [8]*rig.Part
}

// NewSquid builds the squid. Tentacles ring the body at radius 5, each
// turned to face outward.
func NewSquid() (*Squid, error) {
	m := &Squid{Assembler: rig.NewAssembler()}
	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(0, 0).
		AddBox(-6, -8, -6, 12, 16, 12, 0)
	m.Body.Pivot.Y = 8

	n := float64(len(m.Tentacles))
	for i := range m.Tentacles {
		around := float64(i) * gomath.Pi * 2 / n
		t := m.NewBox(indexed("tentacle", i), mesh.PartLeftArm, rig.Animated).
			SetTextureOffset(48, 0).
			AddBox(-1, 0, -1, 2, 18, 2, 0).
			SetPivot(float32(gomath.Cos(around))*5, 15, float32(gomath.Sin(around))*5)
		t.Rotation.Y = float32(float64(i)*gomath.Pi*-2/n + gomath.Pi/2)
		m.Tentacles[i] = t
	}
	return m, m.Err()
}

// Silverfish is seven tapering segments with three overlay ridges.
type Silverfish struct {
	*rig.Assembler
	Segments [7]*rig.Part
	Wings    [3]*rig.Part
}

var (
	silverfishSegments = [7][3]int{
		{3, 2, 2}, {4, 3, 2}, {6, 4, 3}, {3, 3, 3}, {2, 2, 3}, {2, 1, 2}, {1, 1, 2},
	}
	silverfishTexture = [7][2]int{
		{0, 0}, {0, 4}, {0, 9}, {0, 16}, {0, 22}, {11, 0}, {13, 4},
	}
)

// NewSilverfish builds the silverfish.
func NewSilverfish() (*Silverfish, error) {
	m := &Silverfish{Assembler: rig.NewAssembler()}

	var z [7]float32
	at := float32(-3.5)
	for i, size := range silverfishSegments {
		w, h, d := size[0], size[1], size[2]
		m.Segments[i] = m.NewBox(indexed("segment", i), mesh.PartChest).
			SetTextureOffset(silverfishTexture[i][0], silverfishTexture[i][1]).
			AddBox(float32(w)*-0.5, 0, float32(d)*-0.5, w, h, d, 0).
			SetPivot(0, float32(24-h), at)
		z[i] = at
		if i < len(silverfishSegments)-1 {
			at += float32(d+silverfishSegments[i+1][2]) * 0.5
		}
	}

	depth := func(i int) int { return silverfishSegments[i][2] }
	m.Wings[0] = m.NewBox("wing0", mesh.PartHead, rig.Overlay).
		SetTextureOffset(20, 0).
		AddBox(-5, 0, float32(depth(2))*-0.5, 10, 8, depth(2), 0).
		SetPivot(0, 16, z[2])
	m.Wings[1] = m.NewBox("wing1", mesh.PartHead, rig.Overlay).
		SetTextureOffset(20, 11).
		AddBox(-3, 0, float32(depth(4))*-0.5, 6, 4, depth(4), 0).
		SetPivot(0, 20, z[4])
	m.Wings[2] = m.NewBox("wing2", mesh.PartHead, rig.Overlay).
		SetTextureOffset(20, 18).
		AddBox(-3, 0, float32(depth(4))*-0.5, 6, 5, depth(1), 0).
		SetPivot(0, 19, z[1])

	return m, m.Err()
}

// Wolf has a snout, ears, a mane and a tail.
type Wolf struct {
	*rig.Assembler
	Head, Body, Mane       *rig.Part
	Leg1, Leg2, Leg3, Leg4 *rig.Part
	Tail                   *rig.Part
}

// NewWolf builds the wolf standing.
func NewWolf() (*Wolf, error) {
	m := &Wolf{Assembler: rig.NewAssembler()}
	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-3, -3, -2, 6, 6, 4, 0).
		SetPivot(-1, 13.5, -7)

	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(18, 14).
		AddBox(-4, -2, -3, 6, 9, 6, 0).
		SetPivot(0, 14, 2)

	m.Mane = m.NewBox("mane", mesh.PartHelmet).
		SetTextureOffset(21, 0).
		AddBox(-4, -3, -3, 8, 6, 7, 0).
		SetPivot(-1, 14, 2)

	leg := func(name string, category mesh.PartFlag) *rig.Part {
		return m.NewBox(name, category, rig.Animated).
			SetTextureOffset(0, 18).
			AddBox(-1, 0, -1, 2, 8, 2, 0)
	}
	m.Leg1 = leg("leg1", mesh.PartLeftLeg)
	m.Leg2 = leg("leg2", mesh.PartRightLeg)
	m.Leg3 = leg("leg3", mesh.PartLeftArm)
	m.Leg4 = leg("leg4", mesh.PartRightArm)

	m.Tail = m.NewBox("tail", mesh.PartChest).
		SetTextureOffset(9, 18).
		AddBox(-1, 0, -1, 2, 8, 2, 0).
		SetPivot(-1, 12, 8)

	m.Head.
		SetTextureOffset(16, 14).
		AddBox(-3, -5, 0, 2, 2, 1, 0).
		AddBox(1, -5, 0, 2, 2, 1, 0).
		SetTextureOffset(0, 10).
		AddBox(-1.5, 0, -5, 3, 3, 4, 0)

	m.SetPose(Pose{})
	return m, m.Err()
}

// SetPose lays the body level and walks the legs in diagonal pairs.
func (m *Wolf) SetPose(p Pose) {
	m.Body.SetPivot(0, 14, 2)
	m.Body.Rotation.X = halfPi
	m.Mane.SetPivot(-1, 14, -3)
	m.Mane.Rotation.X = m.Body.Rotation.X
	m.Tail.SetPivot(-1, 12, 8)
	m.Tail.Rotation.X = m.Body.Rotation.X

	m.Leg1.SetPivot(-2.5, 16, 7)
	m.Leg2.SetPivot(0.5, 16, 7)
	m.Leg3.SetPivot(-2.5, 16, -4)
	m.Leg4.SetPivot(0.5, 16, -4)

	front := math.Cos(p.Swing*0.6662) * 1.4 * p.SwingAmount
	back := math.Cos(p.Swing*0.6662+math.Pi) * 1.4 * p.SwingAmount
	m.Leg1.Rotation.X = front
	m.Leg2.Rotation.X = back
	m.Leg3.Rotation.X = back
	m.Leg4.Rotation.X = front
}

// Spider has eight legs splayed around a two-part body.
type Spider struct {
	*rig.Assembler
	Head, Neck, Body *rig.Part
	Legs             [8]*rig.Part
}

// NewSpider builds the spider at rest.
func NewSpider() (*Spider, error) {
	const y = 15

	m := &Spider{Assembler: rig.NewAssembler()}
	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(32, 4).
		AddBox(-4, -4, -8, 8, 8, 8, 0).
		SetPivot(0, y, -3)

	m.Neck = m.NewBox("neck", mesh.PartHelmet).
		SetTextureOffset(0, 0).
		AddBox(-3, -3, -3, 6, 6, 6, 0).
		SetPivot(0, y, 0)

	m.Body = m.NewBox("body", mesh.PartChest).
		SetTextureOffset(0, 12).
		AddBox(-5, -4, -6, 10, 8, 12, 0).
		SetPivot(0, y, 9)

	// Pairs run front to back; even indices reach to the right.
	for i := range m.Legs {
		var traits []rig.Trait
		if i > 0 {
			traits = append(traits, rig.Animated)
		}
		leg := m.NewBox(indexed("leg", i+1), mesh.PartLeftArm, traits...).
			SetTextureOffset(18, 0)
		z := float32(2 - i/2)
		if i%2 == 0 {
			leg.AddBox(-15, -1, -1, 16, 2, 2, 0).SetPivot(-4, y, z)
		} else {
			leg.AddBox(-1, -1, -1, 16, 2, 2, 0).SetPivot(4, y, z)
		}
		m.Legs[i] = leg
	}

	m.SetPose(Pose{})
	return m, m.Err()
}

// SetPose turns the head and scuttles the legs.
func (m *Spider) SetPose(p Pose) {
	m.Head.Rotation.Y = p.Yaw / degPerRad
	m.Head.Rotation.X = p.Pitch / degPerRad

	const (
		splay = 0.7853982
		reach = 0.3926991
	)
	roll := [4]float32{splay, splay * 0.74, splay * 0.74, splay}
	yaw := [4]float32{reach * 2, reach, -reach, -reach * 2}
	phase := [4]float32{0, math.Pi, halfPi, 4.712389}

	for pair := 0; pair < 4; pair++ {
		lift := -(math.Cos(p.Swing*0.6662*2+phase[pair]) * 0.4) * p.SwingAmount
		step := math.Abs(math.Sin(p.Swing*0.6662+phase[pair])*0.4) * p.SwingAmount

		right, left := m.Legs[pair*2], m.Legs[pair*2+1]
		right.Rotation.Z = -roll[pair] + step
		left.Rotation.Z = roll[pair] - step
		right.Rotation.Y = yaw[pair] + lift
		left.Rotation.Y = -yaw[pair] - lift
	}
}

// SnowMan is three stacked spheres with stick arms.
type SnowMan struct {
	*rig.Assembler
	Head, RightArm, LeftArm, Body, Base *rig.Part
}

// NewSnowMan builds the snow golem with a head yaw of pi/2 degrees.
func NewSnowMan() (*SnowMan, error) {
	const y = 4

	m := &SnowMan{Assembler: rig.NewAssembler()}
	m.TextureWidth, m.TextureHeight = 64, 64

	m.Head = m.NewBox("head", mesh.PartHead).
		SetTextureOffset(0, 0).
		AddBox(-4, -8, -4, 8, 8, 8, -0.5).
		SetPivot(0, y, 0)

	m.RightArm = m.NewBox("rightArm", mesh.PartHelmet).
		SetTextureOffset(32, 0).
		AddBox(-1, 0, -1, 12, 2, 2, -0.5).
		SetPivot(0, y+9-7, 0)

	m.LeftArm = m.NewBox("leftArm", mesh.PartChest).
		SetTextureOffset(32, 0).
		AddBox(-1, 0, -1, 12, 2, 2, -0.5).
		SetPivot(0, y+9-7, 0)

	m.Body = m.NewBox("body", mesh.PartLeftArm).
		SetTextureOffset(0, 16).
		AddBox(-5, -10, -5, 10, 10, 10, -0.5).
		SetPivot(0, y+9, 0)

	m.Base = m.NewBox("base", mesh.PartRightArm).
		SetTextureOffset(0, 36).
		AddBox(-6, -12, -6, 12, 12, 12, -0.5).
		SetPivot(0, y+20, 0)

	m.SetPose(Pose{Yaw: math.Pi / 2})
	return m, m.Err()
}

// SetPose turns the head and lets the body follow at a quarter of the
// head's yaw, carrying the arms around it.
func (m *SnowMan) SetPose(p Pose) {
	m.Head.Rotation.Y = p.Yaw / degPerRad
	m.Head.Rotation.X = p.Pitch / degPerRad
	m.Body.Rotation.Y = p.Yaw / degPerRad * 0.25

	sin := math.Sin(m.Body.Rotation.Y)
	cos := math.Cos(m.Body.Rotation.Y)
	m.RightArm.Rotation.Z = 1
	m.LeftArm.Rotation.Z = -1
	m.RightArm.Rotation.Y = m.Body.Rotation.Y
	m.LeftArm.Rotation.Y = math.Pi + m.Body.Rotation.Y
	m.RightArm.Pivot.X = cos * 5
	m.RightArm.Pivot.Z = -sin * 5
	m.LeftArm.Pivot.X = -cos * 5
	m.LeftArm.Pivot.Z = sin * 5
}
