package rig

import (
	"fmt"

	"github.com/Faultbox/blockmodels/pkg/geom"
	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

const swingAmplitude = 25

// Source is anything with an assembled part list.
type Source interface {
	Parts() []*Part
	Err() error
}

// Options control compilation.
type Options struct {
	// Scale multiplies vertex positions. Pivots are left in model units.
	Scale float32
	// PivotMarkers adds a small cube mesh at every part's pivot.
	PivotMarkers bool
}

// Compile converts the parts of src into a mesh model.
func Compile(src Source, name string, scale float32) (*mesh.Model, error) {
	return CompileWith(src, name, Options{Scale: scale})
}

// CompileWith is Compile with explicit options.
func CompileWith(src Source, name string, opts Options) (*mesh.Model, error) {
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}

	parts := src.Parts()
	m := &mesh.Model{Name: name, Meshes: make([]mesh.Mesh, 0, len(parts))}
	for _, p := range parts {
		m.Meshes = append(m.Meshes, compilePart(p, opts.Scale))
	}
	if opts.PivotMarkers {
		for _, p := range parts {
			m.Meshes = append(m.Meshes, pivotMarker(p))
		}
	}
	return m, nil
}

func compilePart(p *Part, scale float32) mesh.Mesh {
	ms := mesh.Mesh{
		Name:      p.Name,
		Translate: p.Pivot,
		Pivot:     p.Pivot,
		Rotate: math.Vec3{
			X: math.Degrees(p.Rotation.X),
			Y: math.Degrees(p.Rotation.Y),
			Z: math.Degrees(p.Rotation.Z),
		},
		Part:              p.Category,
		Helmet:            p.Overlay,
		AllowTransparency: p.Overlay,
		RotateFactor:      p.SwingFactor(),
		FollowCursor:      p.FollowsCursor(),
		Mode:              mesh.ModeQuads,
		Faces:             make([]mesh.Face, 0, p.FaceCount()),
	}

	for i := range p.Boxes {
		b := &p.Boxes[i]
		if p.Overlay {
			for q := range b.Quads {
				ms.Faces = append(ms.Faces, face(b.Quads[q], scale, mesh.WindingCCW, q == geom.QuadBottom))
			}
		}
		for q := range b.Quads {
			ms.Faces = append(ms.Faces, face(b.Quads[q], scale, mesh.WindingCW, q == geom.QuadBottom))
		}
	}

	for i := range p.Planes {
		if p.Overlay || p.AlsoReverse {
			ms.Faces = append(ms.Faces, face(p.Planes[i].Quad, scale, mesh.WindingCCW, false))
		}
		ms.Faces = append(ms.Faces, face(p.Planes[i].Quad, scale, mesh.WindingCW, false))
	}
	return ms
}

func face(q geom.Quad, scale float32, winding [4]uint8, down bool) mesh.Face {
	f := mesh.Face{
		Colors:   [4]mesh.Color{mesh.White, mesh.White, mesh.White, mesh.White},
		Indices:  winding,
		Downface: down,
	}
	for i, v := range q.Vertices {
		f.Positions[i] = v.Pos.Scale(scale)
		f.TexCoords[i] = v.UV
	}
	return f
}

const markerSize = 1

func pivotMarker(p *Part) mesh.Mesh {
	ms := mesh.Mesh{
		Name:      p.Name + "#pivot",
		Translate: p.Pivot,
		Pivot:     p.Pivot,
		Mode:      mesh.ModeQuads,
	}
	for _, q := range geom.MakeCube(math.Vec3{}, markerSize, 0, 0, 1, 1, DefaultTextureWidth, DefaultTextureHeight) {
		ms.Faces = append(ms.Faces, face(q, 1, mesh.WindingCW, false))
	}
	return ms
}
