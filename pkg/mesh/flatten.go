package mesh

import "github.com/Faultbox/blockmodels/pkg/math"

// Vertex is a posed vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Flat is a model flattened into one indexed triangle list.
type Flat struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Transform returns the local-to-model matrix of the mesh.
func (ms *Mesh) Transform() math.Mat4 {
	rot := math.Vec3{
		X: math.Radians(ms.Rotate.X),
		Y: math.Radians(ms.Rotate.Y),
		Z: math.Radians(ms.Rotate.Z),
	}
	return math.PartTransform(ms.Translate, rot)
}

// Flatten poses every mesh and splits each face into two triangles,
// following the face's index order.
func (m *Model) Flatten() *Flat {
	flat := &Flat{
		Bounds: Bounds{
			Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
			Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
		},
	}

	for i := range m.Meshes {
		ms := &m.Meshes[i]
		xf := ms.Transform()

		for j := range ms.Faces {
			f := &ms.Faces[j]
			var pos [4]math.Vec3
			for k, idx := range f.Indices {
				pos[k] = xf.TransformVec3(f.Positions[idx])
			}
			n := pos[1].Sub(pos[0]).Cross(pos[2].Sub(pos[0])).Normalize()

			base := uint32(len(flat.Vertices))
			for k, idx := range f.Indices {
				p := pos[k]
				uv := f.TexCoords[idx]
				flat.Vertices = append(flat.Vertices, Vertex{
					Position: [3]float32{p.X, p.Y, p.Z},
					Normal:   [3]float32{n.X, n.Y, n.Z},
					TexCoord: [2]float32{uv.X, uv.Y},
				})
				flat.Bounds.Min = flat.Bounds.Min.Min(p)
				flat.Bounds.Max = flat.Bounds.Max.Max(p)
			}
			flat.Indices = append(flat.Indices,
				base, base+1, base+2,
				base, base+2, base+3,
			)
		}
	}

	if len(flat.Vertices) == 0 {
		flat.Bounds = Bounds{}
	}
	return flat
}
