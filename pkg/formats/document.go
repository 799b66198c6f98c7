package formats

import (
	"fmt"

	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// modelDoc is the text form of a model shared by the YAML and TOML
// codecs. Vectors are written as plain number lists.
type modelDoc struct {
	Name   string    `yaml:"name" toml:"name"`
	Meshes []meshDoc `yaml:"meshes" toml:"meshes"`
}

type meshDoc struct {
	Name              string     `yaml:"name" toml:"name"`
	Translate         [3]float32 `yaml:"translate,flow" toml:"translate"`
	Rotate            [3]float32 `yaml:"rotate,flow" toml:"rotate"`
	Pivot             [3]float32 `yaml:"pivot,flow" toml:"pivot"`
	Part              string     `yaml:"part" toml:"part"`
	Helmet            bool       `yaml:"helmet" toml:"helmet"`
	AllowTransparency bool       `yaml:"allow_transparency" toml:"allow_transparency"`
	RotateFactor      float32    `yaml:"rotate_factor" toml:"rotate_factor"`
	FollowCursor      bool       `yaml:"follow_cursor" toml:"follow_cursor"`
	Faces             []faceDoc  `yaml:"faces" toml:"faces"`
}

type faceDoc struct {
	Positions [4][3]float32 `yaml:"positions,flow" toml:"positions"`
	TexCoords [4][2]float32 `yaml:"uvs,flow" toml:"uvs"`
	Colors    [4][4]float32 `yaml:"colors,flow" toml:"colors"`
	Indices   [4]int        `yaml:"indices,flow" toml:"indices"`
	Downface  bool          `yaml:"downface,omitempty" toml:"downface,omitempty"`
}

func vec3(v math.Vec3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func fromVec3(a [3]float32) math.Vec3 { return math.Vec3{X: a[0], Y: a[1], Z: a[2]} }

func newModelDoc(m *mesh.Model) *modelDoc {
	doc := &modelDoc{Name: m.Name, Meshes: make([]meshDoc, len(m.Meshes))}
	for i := range m.Meshes {
		ms := &m.Meshes[i]
		md := meshDoc{
			Name:              ms.Name,
			Translate:         vec3(ms.Translate),
			Rotate:            vec3(ms.Rotate),
			Pivot:             vec3(ms.Pivot),
			Part:              ms.Part.String(),
			Helmet:            ms.Helmet,
			AllowTransparency: ms.AllowTransparency,
			RotateFactor:      ms.RotateFactor,
			FollowCursor:      ms.FollowCursor,
			Faces:             make([]faceDoc, len(ms.Faces)),
		}
		for j := range ms.Faces {
			f := &ms.Faces[j]
			fd := faceDoc{Downface: f.Downface}
			for k := 0; k < 4; k++ {
				fd.Indices[k] = int(f.Indices[k])
				fd.Positions[k] = vec3(f.Positions[k])
				fd.TexCoords[k] = [2]float32{f.TexCoords[k].X, f.TexCoords[k].Y}
				c := f.Colors[k]
				fd.Colors[k] = [4]float32{c.R, c.G, c.B, c.A}
			}
			md.Faces[j] = fd
		}
		doc.Meshes[i] = md
	}
	return doc
}

func (doc *modelDoc) model() (*mesh.Model, error) {
	m := &mesh.Model{Name: doc.Name, Meshes: make([]mesh.Mesh, len(doc.Meshes))}
	for i := range doc.Meshes {
		md := &doc.Meshes[i]
		part, err := mesh.ParsePartFlag(md.Part)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", md.Name, err)
		}
		ms := mesh.Mesh{
			Name:              md.Name,
			Translate:         fromVec3(md.Translate),
			Rotate:            fromVec3(md.Rotate),
			Pivot:             fromVec3(md.Pivot),
			Part:              part,
			Helmet:            md.Helmet,
			AllowTransparency: md.AllowTransparency,
			RotateFactor:      md.RotateFactor,
			FollowCursor:      md.FollowCursor,
			Mode:              mesh.ModeQuads,
			Faces:             make([]mesh.Face, len(md.Faces)),
		}
		for j := range md.Faces {
			fd := &md.Faces[j]
			f := mesh.Face{Downface: fd.Downface}
			for k := 0; k < 4; k++ {
				if fd.Indices[k] < 0 || fd.Indices[k] > 3 {
					return nil, fmt.Errorf("%w: mesh %q face %d", mesh.ErrBadIndices, md.Name, j)
				}
				f.Indices[k] = uint8(fd.Indices[k])
				f.Positions[k] = fromVec3(fd.Positions[k])
				f.TexCoords[k] = math.Vec2{X: fd.TexCoords[k][0], Y: fd.TexCoords[k][1]}
				c := fd.Colors[k]
				f.Colors[k] = mesh.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
			}
			ms.Faces[j] = f
		}
		m.Meshes[i] = ms
	}
	return m, nil
}
