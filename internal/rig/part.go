package rig

import (
	"fmt"

	"github.com/Faultbox/blockmodels/pkg/geom"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Trait is an optional behavior of a part.
type Trait uint8

// Part traits.
const (
	// Overlay parts (hair, hats, armor layers) are drawn from both sides
	// and may be transparent.
	Overlay Trait = 1 << iota
	// Animated parts take part in the idle limb swing.
	Animated
)

// Default atlas size of planes and of new assemblers.
const (
	DefaultTextureWidth  = 64
	DefaultTextureHeight = 32
)

// Part is one rigid piece of a model: boxes and planes that rotate
// together around a pivot.
type Part struct {
	Name     string
	Category mesh.PartFlag
	Overlay  bool
	Animated bool

	// AlsoReverse draws planes from both sides even when the part is not
	// an overlay. New plane parts start with it set.
	AlsoReverse bool

	Pivot    math.Vec3
	Rotation math.Vec3 // radians
	Mirror   bool

	Boxes  []geom.Box
	Planes []geom.Plane

	texU, texV int
	texW, texH int

	owner *Assembler
}

func newPart(owner *Assembler, name string, category mesh.PartFlag, traits []Trait) *Part {
	p := &Part{
		Name:     name,
		Category: category,
		texW:     owner.TextureWidth,
		texH:     owner.TextureHeight,
		owner:    owner,
	}
	for _, t := range traits {
		p.Overlay = p.Overlay || t&Overlay != 0
		p.Animated = p.Animated || t&Animated != 0
	}
	return p
}

// SetTextureOffset sets the atlas anchor used by the next boxes.
func (p *Part) SetTextureOffset(u, v int) *Part {
	p.texU, p.texV = u, v
	return p
}

// TextureOffset returns the current atlas anchor.
func (p *Part) TextureOffset() (u, v int) {
	return p.texU, p.texV
}

// SetTextureSize sets the atlas size used by the next boxes.
func (p *Part) SetTextureSize(w, h int) *Part {
	p.texW, p.texH = w, h
	return p
}

// TextureSize returns the atlas size.
func (p *Part) TextureSize() (w, h int) {
	return p.texW, p.texH
}

// SetPivot sets the rotation point.
func (p *Part) SetPivot(x, y, z float32) *Part {
	p.Pivot = math.Vec3{X: x, Y: y, Z: z}
	return p
}

// SetMirror sets the mirror state for the next boxes. Setting it after
// the boxes are added only flips the swing direction.
func (p *Part) SetMirror(mirror bool) *Part {
	p.Mirror = mirror
	return p
}

func (p *Part) params(x, y, z float32, w, h, d int, inflate float32) geom.BoxParams {
	return geom.BoxParams{
		Origin:  math.Vec3{X: x, Y: y, Z: z},
		W:       w,
		H:       h,
		D:       d,
		Inflate: inflate,
		U:       p.texU,
		V:       p.texV,
		TexW:    float32(p.texW),
		TexH:    float32(p.texH),
		Mirror:  p.Mirror,
	}
}

// AddBox appends a w x h x d box with its minimum corner at (x, y, z),
// grown by inflate on every side.
func (p *Part) AddBox(x, y, z float32, w, h, d int, inflate float32) *Part {
	b, err := geom.ConstructBox(p.params(x, y, z, w, h, d, inflate))
	if err != nil {
		p.fail(err)
		return p
	}
	p.Boxes = append(p.Boxes, b)
	return p
}

// AddNamedBox appends a box textured at the offset the assembler
// registered as "<part>.<name>". The offset stays current afterwards.
func (p *Part) AddNamedBox(name string, x, y, z float32, w, h, d int) *Part {
	key := p.Name + "." + name
	off, ok := p.owner.offsets[key]
	if !ok {
		p.fail(fmt.Errorf("%w: %q", ErrUnknownTextureOffset, key))
		return p
	}
	p.SetTextureOffset(off.U, off.V)

	b, err := geom.ConstructBox(p.params(x, y, z, w, h, d, 0))
	if err != nil {
		p.fail(err)
		return p
	}
	b.Name = key
	p.Boxes = append(p.Boxes, b)
	return p
}

// AddBackPlane appends the front/back face of the given cuboid.
func (p *Part) AddBackPlane(x, y, z float32, w, h, d int, inflate float32) *Part {
	return p.addPlane(geom.PlaneBack, x, y, z, w, h, d, inflate)
}

// AddSidePlane appends the side face of the given cuboid.
func (p *Part) AddSidePlane(x, y, z float32, w, h, d int, inflate float32) *Part {
	return p.addPlane(geom.PlaneSide, x, y, z, w, h, d, inflate)
}

// AddTopPlane appends the top face of the given cuboid.
func (p *Part) AddTopPlane(x, y, z float32, w, h, d int, inflate float32) *Part {
	return p.addPlane(geom.PlaneTop, x, y, z, w, h, d, inflate)
}

func (p *Part) addPlane(o geom.PlaneOrientation, x, y, z float32, w, h, d int, inflate float32) *Part {
	pl, err := geom.ConstructPlane(o, p.params(x, y, z, w, h, d, inflate))
	if err != nil {
		p.fail(err)
		return p
	}
	p.Planes = append(p.Planes, pl)
	return p
}

func (p *Part) fail(err error) {
	p.owner.fail(fmt.Errorf("part %q: %w", p.Name, err))
}

// FollowsCursor reports whether the part turns toward the viewer. Only
// parts tagged exactly head or exactly helmet do.
func (p *Part) FollowsCursor() bool {
	return p.Category == mesh.PartHead || p.Category == mesh.PartHelmet
}

// SwingFactor returns the idle swing amplitude: 0 for static parts,
// negative for mirrored limbs.
func (p *Part) SwingFactor() float32 {
	if !p.Animated {
		return 0
	}
	if p.Mirror {
		return -swingAmplitude
	}
	return swingAmplitude
}

// FaceCount returns the number of faces the part compiles to.
func (p *Part) FaceCount() int {
	boxes := 6 * len(p.Boxes)
	if p.Overlay {
		boxes *= 2
	}
	planes := len(p.Planes)
	if p.Overlay || p.AlsoReverse {
		planes *= 2
	}
	return boxes + planes
}
