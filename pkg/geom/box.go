package geom

import (
	"errors"
	"fmt"

	"github.com/Faultbox/blockmodels/pkg/math"
)

// Precondition errors. A model recipe that triggers one is broken.
var (
	ErrNegativeExtent   = errors.New("negative extent")
	ErrTextureSizeUnset = errors.New("texture size not set")
)

// Box quad indices, relative to the unmirrored box.
const (
	QuadRight = iota
	QuadLeft
	QuadTop
	QuadBottom
	QuadFront
	QuadBack
)

// boxQuadCorners indexes cuboid corners per box quad.
var boxQuadCorners = [6][4]int{
	QuadRight:  {5, 1, 2, 6},
	QuadLeft:   {0, 4, 7, 3},
	QuadTop:    {5, 4, 0, 1},
	QuadBottom: {2, 3, 7, 6},
	QuadFront:  {1, 0, 3, 2},
	QuadBack:   {4, 5, 6, 7},
}

// BoxParams describes one cuboid in part space.
type BoxParams struct {
	Origin  math.Vec3 // minimum corner before inflation
	W, H, D int       // extents in pixels
	Inflate float32   // grows every side, UVs unaffected

	U, V       int // texture offset in the atlas
	TexW, TexH float32

	Mirror bool
}

func (p BoxParams) check() error {
	if p.W < 0 || p.H < 0 || p.D < 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrNegativeExtent, p.W, p.H, p.D)
	}
	if p.TexW <= 0 || p.TexH <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrTextureSizeUnset, p.TexW, p.TexH)
	}
	return nil
}

// corners returns the eight inflated corners. The first four lie on the
// near Z plane: (x,y) (x2,y) (x2,y2) (x,y2); the last four repeat that on
// the far plane. Mirroring swaps x and x2 first.
func (p BoxParams) corners() [8]Vertex {
	x, y, z := p.Origin.X, p.Origin.Y, p.Origin.Z
	x2 := x + float32(p.W)
	y2 := y + float32(p.H)
	z2 := z + float32(p.D)

	x, y, z = x-p.Inflate, y-p.Inflate, z-p.Inflate
	x2, y2, z2 = x2+p.Inflate, y2+p.Inflate, z2+p.Inflate

	if p.Mirror {
		x, x2 = x2, x
	}

	return [8]Vertex{
		NewVertex(x, y, z, 0, 0),
		NewVertex(x2, y, z, 0, 8),
		NewVertex(x2, y2, z, 8, 8),
		NewVertex(x, y2, z, 8, 0),
		NewVertex(x, y, z2, 0, 0),
		NewVertex(x2, y, z2, 0, 8),
		NewVertex(x2, y2, z2, 8, 8),
		NewVertex(x, y2, z2, 8, 0),
	}
}

func pick(c [8]Vertex, idx [4]int) [4]Vertex {
	return [4]Vertex{c[idx[0]], c[idx[1]], c[idx[2]], c[idx[3]]}
}

// Box is a six-sided textured cuboid.
type Box struct {
	Name     string
	Min, Max math.Vec3 // nominal bounds, before inflation and mirroring
	Corners  [8]Vertex
	Quads    [6]Quad
}

// ConstructBox unwraps a cuboid onto the atlas in the cross layout:
// top and bottom on the first row, then left, front, right, back.
func ConstructBox(p BoxParams) (Box, error) {
	if err := p.check(); err != nil {
		return Box{}, err
	}

	u, v := p.U, p.V
	w, h, d := p.W, p.H, p.D

	b := Box{
		Min:     p.Origin,
		Max:     p.Origin.Add(math.Vec3{X: float32(w), Y: float32(h), Z: float32(d)}),
		Corners: p.corners(),
	}

	rects := [6][4]int{
		QuadRight:  {u + d + w, v + d, u + d + w + d, v + d + h},
		QuadLeft:   {u, v + d, u + d, v + d + h},
		QuadTop:    {u + d, v, u + d + w, v + d},
		QuadBottom: {u + d + w, v + d, u + d + w + w, v},
		QuadFront:  {u + d, v + d, u + d + w, v + d + h},
		QuadBack:   {u + d + w + d, v + d, u + d + w + d + w, v + d + h},
	}
	for i, r := range rects {
		b.Quads[i] = NewTexturedQuad(pick(b.Corners, boxQuadCorners[i]), r[0], r[1], r[2], r[3], p.TexW, p.TexH)
	}

	if p.Mirror {
		for i := range b.Quads {
			b.Quads[i].Flip()
		}
	}
	return b, nil
}
