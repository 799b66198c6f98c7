package geom

import "github.com/Faultbox/blockmodels/pkg/math"

// PlaneOrientation selects which cuboid face a plane keeps.
type PlaneOrientation uint8

// Plane orientations.
const (
	PlaneBack PlaneOrientation = iota
	PlaneSide
	PlaneTop
)

func (o PlaneOrientation) String() string {
	switch o {
	case PlaneBack:
		return "back"
	case PlaneSide:
		return "side"
	case PlaneTop:
		return "top"
	}
	return "unknown"
}

// Plane is a single textured face cut from a cuboid.
type Plane struct {
	Orientation PlaneOrientation
	Min, Max    math.Vec3
	Corners     [8]Vertex
	Quad        Quad
}

// ConstructPlane builds one face of the cuboid described by p. Unlike a
// box, the whole texture rectangle starts at the offset itself.
func ConstructPlane(o PlaneOrientation, p BoxParams) (Plane, error) {
	if err := p.check(); err != nil {
		return Plane{}, err
	}

	u, v := p.U, p.V
	pl := Plane{
		Orientation: o,
		Min:         p.Origin,
		Max:         p.Origin.Add(math.Vec3{X: float32(p.W), Y: float32(p.H), Z: float32(p.D)}),
		Corners:     p.corners(),
	}

	var idx [4]int
	var u2, v2 int
	switch o {
	case PlaneSide:
		idx, u2, v2 = boxQuadCorners[QuadRight], u+p.D, v+p.H
	case PlaneTop:
		idx, u2, v2 = boxQuadCorners[QuadTop], u+p.W, v+p.D
	default:
		idx, u2, v2 = boxQuadCorners[QuadFront], u+p.W, v+p.H
	}
	pl.Quad = NewTexturedQuad(pick(pl.Corners, idx), u, v, u2, v2, p.TexW, p.TexH)

	if p.Mirror {
		pl.Quad.Flip()
	}
	return pl, nil
}
