// Package geom builds the textured cuboids and planes that model parts
// are made of.
//
// Coordinates follow the game's model space: X to the left, Y down, Z
// toward the back. Texture coordinates are normalized against the atlas
// size of the owning part.
package geom

import "github.com/Faultbox/blockmodels/pkg/math"

// Vertex is a position with a texture coordinate.
type Vertex struct {
	Pos math.Vec3
	UV  math.Vec2
}

// NewVertex creates a vertex from its components.
func NewVertex(x, y, z, u, v float32) Vertex {
	return Vertex{Pos: math.Vec3{X: x, Y: y, Z: z}, UV: math.Vec2{X: u, Y: v}}
}

// WithUV returns a copy of v mapped to a different texture coordinate.
func (v Vertex) WithUV(u, w float32) Vertex {
	v.UV = math.Vec2{X: u, Y: w}
	return v
}

// Quad is one four-sided face.
type Quad struct {
	Vertices [4]Vertex
}

// NewTexturedQuad maps the pixel rectangle (u1,v1)-(u2,v2) of a texW x texH
// atlas onto four vertices. Vertex 0 takes the (u2,v1) corner and the rest
// follow counter-clockwise in texture space.
func NewTexturedQuad(verts [4]Vertex, u1, v1, u2, v2 int, texW, texH float32) Quad {
	fu1, fv1 := float32(u1)/texW, float32(v1)/texH
	fu2, fv2 := float32(u2)/texW, float32(v2)/texH
	return Quad{Vertices: [4]Vertex{
		verts[0].WithUV(fu2, fv1),
		verts[1].WithUV(fu1, fv1),
		verts[2].WithUV(fu1, fv2),
		verts[3].WithUV(fu2, fv2),
	}}
}

// Flip reverses the winding in place.
func (q *Quad) Flip() {
	v := &q.Vertices
	v[0], v[1], v[2], v[3] = v[3], v[2], v[1], v[0]
}

// Normal returns the unit normal implied by the winding.
func (q Quad) Normal() math.Vec3 {
	a := q.Vertices[1].Pos.Sub(q.Vertices[0].Pos)
	b := q.Vertices[2].Pos.Sub(q.Vertices[0].Pos)
	return a.Cross(b).Normalize()
}

// Positions returns the four vertex positions.
func (q Quad) Positions() [4]math.Vec3 {
	var p [4]math.Vec3
	for i, v := range q.Vertices {
		p[i] = v.Pos
	}
	return p
}

// TexCoords returns the four texture coordinates.
func (q Quad) TexCoords() [4]math.Vec2 {
	var uv [4]math.Vec2
	for i, v := range q.Vertices {
		uv[i] = v.UV
	}
	return uv
}
